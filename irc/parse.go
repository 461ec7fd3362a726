package irc

import (
	"github.com/lrstanley/girc"
	"github.com/pkg/errors"
)

// ErrUnparseableLine is returned when a raw line cannot be tokenized.
var ErrUnparseableLine = errors.New("irc: could not parse line")

// ParseEvent tokenizes a raw irc line into an Event. The line may or may not
// carry its trailing crlf.
func ParseEvent(netID string, ni *NetworkInfo, raw string) (*Event, error) {
	ev := girc.ParseEvent(raw)
	if ev == nil || len(ev.Command) == 0 {
		return nil, errors.Wrapf(ErrUnparseableLine, "%q", raw)
	}

	var sender string
	if ev.Source != nil {
		sender = ev.Source.String()
	}

	return NewEvent(netID, ni, ev.Command, sender, ev.Params...), nil
}
