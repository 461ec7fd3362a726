package data

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// These constants control how secret parameters are displayed.
const (
	// KEY_MODE is the standard channel key mode.
	KEY_MODE = 'k'
	// MASK_TOKEN replaces the parameter of secret modes when rendering for
	// display. Its length never depends on the real parameter.
	MASK_TOKEN = "••••"
)

// DefaultSecretModes are the modes whose parameters are masked by String.
var DefaultSecretModes = []rune{KEY_MODE}

// Render turns the set into a modestring like "+bikl *!*@host •••• 50", with
// modes in sorted order. The parameters of any modes given in secrets are
// masked. The set itself keeps the real values.
func (s ModeSet) Render(secrets ...rune) string {
	entries := s.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Mode < entries[j].Mode
	})
	return renderEntries(entries, secrets)
}

// RenderUnmasked renders the set including secret parameters. Its output is
// only fit for sending to the server, never for display or logs.
func (s ModeSet) RenderUnmasked() string {
	return s.Render()
}

// String renders the set with the channel key masked.
func (s ModeSet) String() string {
	return s.Render(DefaultSecretModes...)
}

// RenderEntries renders pending mode changes for display, unsets first, with
// the parameters of any modes given in secrets masked.
func RenderEntries(entries []ModeEntry, secrets ...rune) string {
	return renderEntries(entries, secrets)
}

// renderEntries writes all the unsets prefixed with - then all the sets
// prefixed with +, followed by the parameters in the same order as their
// modes.
func renderEntries(entries []ModeEntry, secrets []rune) string {
	if len(entries) == 0 {
		return ""
	}

	var unset, set, unsetArgs, setArgs []string
	for _, e := range entries {
		arg := e.Arg
		if len(arg) > 0 && isSecret(e.Mode, secrets) {
			arg = MASK_TOKEN
		}

		if e.Set {
			set = append(set, string(e.Mode))
			if len(arg) > 0 {
				setArgs = append(setArgs, arg)
			}
		} else {
			unset = append(unset, string(e.Mode))
			if len(arg) > 0 {
				unsetArgs = append(unsetArgs, arg)
			}
		}
	}

	b := &strings.Builder{}
	if len(unset) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(unset, ""))
	}
	if len(set) > 0 {
		b.WriteByte('+')
		b.WriteString(strings.Join(set, ""))
	}
	for _, arg := range unsetArgs {
		b.WriteByte(' ')
		b.WriteString(arg)
	}
	for _, arg := range setArgs {
		b.WriteByte(' ')
		b.WriteString(arg)
	}

	return b.String()
}

func isSecret(mode rune, secrets []rune) bool {
	for _, s := range secrets {
		if s == mode {
			return true
		}
	}
	return false
}

// renderedLen is the length in bytes renderEntries would produce for a batch
// with the given totals.
func renderedLen(unsetModes, setModes, args int) int {
	n := args
	if unsetModes > 0 {
		n += 1 + unsetModes
	}
	if setModes > 0 {
		n += 1 + setModes
	}
	return n
}

// modeLen is the number of bytes a mode letter takes on the wire.
func modeLen(mode rune) int {
	if n := utf8.RuneLen(mode); n > 0 {
		return n
	}
	return 1
}
