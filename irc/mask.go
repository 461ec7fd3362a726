package irc

import (
	"regexp"
	"strings"
)

var (
	// rgxMask validates and splits masks.
	rgxMask = regexp.MustCompile(
		`(?i)^` +
			`([\w\x5B-\x60][\w\d\x5B-\x60-]*)` + // nickname
			`!([^\0@\s]+)` + // username
			`@([^\0\s]+)` + // host
			`$`,
	)
)

// Mask is a type that represents an irc hostmask. nickname!username@hostname
type Mask string

// WildMask is an irc hostmask that contains wildcard characters ? and *, as
// found in ban, exception and invite lists.
type WildMask string

// Match checks if the WildMask satisfies the given normal mask. Matching is
// case insensitive.
func (w WildMask) Match(m Mask) bool {
	return isMatch(strings.ToLower(string(m)), strings.ToLower(string(w)))
}

// Match checks if a given wildmask is satisfied by the mask.
func (m Mask) Match(w WildMask) bool {
	return w.Match(m)
}

// isMatch is a matching function for a string, and a string with the wildcards
// * and ? in it. A * may consume zero or more characters, ? exactly one.
func isMatch(ms, ws string) bool {
	i, j := 0, 0
	star, mark := -1, 0

	for j < len(ms) {
		switch {
		case i < len(ws) && (ws[i] == '?' || ws[i] == ms[j]):
			i++
			j++
		case i < len(ws) && ws[i] == '*':
			star = i
			mark = j
			i++
		case star >= 0:
			i = star + 1
			mark++
			j = mark
		default:
			return false
		}
	}

	for i < len(ws) && ws[i] == '*' {
		i++
	}

	return i == len(ws)
}

// GetNick returns the nick of this mask.
func (m Mask) GetNick() string {
	nick := string(m)
	index := strings.IndexAny(nick, "!@")
	if index >= 0 {
		return nick[:index]
	}
	return nick
}

// IsValid checks to ensure the mask is in valid format.
func (m Mask) IsValid() bool {
	return rgxMask.MatchString(string(m))
}

// Split splits a mask into it's fragments: nick, user, and host. If the
// format is not acceptable empty string is returned for everything.
func (m Mask) Split() (nick, user, host string) {
	fragments := rgxMask.FindStringSubmatch(string(m))
	if len(fragments) == 0 {
		return
	}
	return fragments[1], fragments[2], fragments[3]
}
