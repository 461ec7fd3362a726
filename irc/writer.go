package irc

import (
	"fmt"
	"io"
)

const (
	// IRC_MAX_LENGTH is the maximum length for an irc message when the server
	// has not advertised one. Normally it is 510 bytes + crlf but the server
	// has to truncate extra to allow for our fullhost on rebroadcast to
	// clients, so we should send less than this by the maximum allowed
	// fullhost length.
	IRC_MAX_LENGTH = 510 - 62
	// FULLHOST_ALLOWANCE is the room left for the server to prepend our
	// fullhost when it rebroadcasts a line we send.
	FULLHOST_ALLOWANCE = 62
	// fmtModeHeader creates the beginning of a mode line.
	fmtModeHeader = MODE + " %s "
)

// Writer provides common write operations in IRC protocol fashion to an
// underlying io.Writer. Every call results in exactly one Write per line.
type Writer interface {
	io.Writer
	// Send sends a string with spaces between non-strings.
	Send(...interface{}) error
	// Sendf sends a formatted string.
	Sendf(string, ...interface{}) error
	// Mode sends one MODE line per modestring given, in order.
	Mode(string, ...string) error
}

// Helper fullfills the Writer's interface requirements.
type Helper struct {
	io.Writer
}

// Send sends a string with spaces between non-strings.
func (h Helper) Send(args ...interface{}) error {
	_, err := fmt.Fprint(h, args...)
	return err
}

// Sendf sends a formatted string.
func (h Helper) Sendf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(h, format, args...)
	return err
}

// Mode sends one MODE line per modestring. It stops at the first write
// error, lines already written are not retracted.
func (h Helper) Mode(channel string, modestrings ...string) error {
	for _, modestring := range modestrings {
		if len(modestring) == 0 {
			continue
		}
		if err := h.Sendf(fmtModeHeader+"%s", channel, modestring); err != nil {
			return err
		}
	}
	return nil
}

// ModeHeaderLen returns the number of bytes a MODE line for channel spends
// before its modestring.
func ModeHeaderLen(channel string) int {
	return len(fmt.Sprintf(fmtModeHeader, channel))
}

// ModestringBudget calculates how many bytes are left for a modestring on a
// MODE line to channel given the server's advertised line length (which
// includes the crlf). A linelen of 0 or less uses IRC_MAX_LENGTH.
func ModestringBudget(channel string, linelen int) int {
	max := IRC_MAX_LENGTH
	if linelen > 0 {
		max = linelen - 2 - FULLHOST_ALLOWANCE
	}
	return max - ModeHeaderLen(channel)
}
