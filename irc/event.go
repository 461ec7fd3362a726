/*
Package irc defines the protocol level types the channel mode engine is fed
by. It records server capabilities, tokenizes raw lines into events and writes
MODE lines back out. It is small and comprised mostly of helper like types and
constants.
*/
package irc

import (
	"bytes"
	"strings"
	"time"
)

// Event contains all the information about an irc event.
type Event struct {
	// Name of the event. Uppercase constant name or numeric.
	Name string
	// Sender is the server or user that sent the event, normally a fullhost.
	Sender string
	// Args split by space delimiting.
	Args []string
	// Times is the time this event was received.
	Time time.Time
	// NetworkID is the ID of the network that sent this event.
	NetworkID string
	// NetworkInfo is the networks information.
	NetworkInfo *NetworkInfo
}

// NewEvent constructs a event object that has a timestamp.
func NewEvent(netID string, ni *NetworkInfo, name, sender string,
	args ...string) *Event {

	var setArgs []string
	if len(args) > 0 {
		setArgs = make([]string, len(args))
		copy(setArgs, args)
	}
	return &Event{name, sender, setArgs, time.Now().UTC(), netID, ni}
}

// Nick returns the nick of the sender.
func (e *Event) Nick() string {
	return Mask(e.Sender).GetNick()
}

// Target retrieves the channel or user this event was sent to. Before using
// this method it would be prudent to check that the Event.Name is a message
// that supports a Target argument.
func (e *Event) Target() string {
	return e.Args[0]
}

// IsTargetChan uses the underlying NetworkInfo to decide if this is a channel
// or not. If there is no NetworkInfo the default channel types are used.
func (e *Event) IsTargetChan() bool {
	if len(e.Args) == 0 {
		return false
	}
	if e.NetworkInfo == nil {
		return len(e.Args[0]) > 0 &&
			strings.ContainsRune(INFO_DEFAULT_CHANTYPES, rune(e.Args[0][0]))
	}
	return e.NetworkInfo.IsChannel(e.Args[0])
}

// ModeArgs splits a MODE or RPL_CHANNELMODEIS event into the channel it
// targets, the symbol runs and the parameters that follow them. ok is false
// if the event does not carry a modestring.
func (e *Event) ModeArgs() (channel, modes string, args []string, ok bool) {
	start := 0
	switch e.Name {
	case MODE:
	case RPL_CHANNELMODEIS:
		// The first argument is our own nick.
		start = 1
	default:
		return "", "", nil, false
	}

	if len(e.Args) < start+2 {
		return "", "", nil, false
	}

	channel = e.Args[start]
	modes = e.Args[start+1]
	if rest := e.Args[start+2:]; len(rest) > 0 {
		args = make([]string, len(rest))
		copy(args, rest)
	}
	return channel, modes, args, true
}

// String turns this back into an IRC style message.
func (e *Event) String() string {
	b := &bytes.Buffer{}
	if len(e.Sender) > 0 {
		b.WriteByte(':')
		b.WriteString(e.Sender)
		b.WriteByte(' ')
	}
	b.WriteString(e.Name)

	lastArg := len(e.Args) - 1
	for i, arg := range e.Args {
		b.WriteByte(' ')
		if lastArg == i && strings.ContainsRune(arg, ' ') {
			b.WriteByte(':')
		}
		b.WriteString(arg)
	}

	return b.String()
}
