package data

import (
	"github.com/pkg/errors"
)

// ModeEntry is a single mode change, or an active mode when held in a
// ModeSet. It is a value type, copies never share state. An empty Arg means
// no parameter, irc has no way to express an empty one.
type ModeEntry struct {
	Mode rune
	Set  bool
	Arg  string
}

// NewModeEntry creates a ModeEntry, validating the parameter presence against
// the kind of mode.
func NewModeEntry(kinds *ModeKinds, mode rune, set bool,
	arg string) (ModeEntry, error) {

	e := ModeEntry{Mode: mode, Set: set, Arg: arg}
	if err := e.Validate(kinds); err != nil {
		return ModeEntry{}, err
	}
	return e, nil
}

// Validate checks that the parameter is present exactly when the kind of mode
// requires it. Unknown modes are treated as taking no parameter.
func (e ModeEntry) Validate(kinds *ModeKinds) error {
	switch e.Mode {
	case '+', '-', ' ', ',', 0:
		return errors.Wrapf(ErrModeParameterMismatch,
			"invalid mode character %q", e.Mode)
	}

	kind := kinds.Kind(e.Mode)
	need := kinds.NeedsArg(e.Mode, e.Set)
	switch {
	case need && !e.HasArg():
		return errors.Wrapf(ErrModeParameterMismatch,
			"%c%c requires a parameter (%v)", e.sign(), e.Mode, kind)
	case !need && e.HasArg():
		return errors.Wrapf(ErrModeParameterMismatch,
			"%c%c takes no parameter (%v)", e.sign(), e.Mode, kind)
	}

	return nil
}

// HasArg checks if this entry carries a parameter.
func (e ModeEntry) HasArg() bool {
	return len(e.Arg) > 0
}

// IsMemberStatusChange checks if this entry changes a member's privilege and
// should be routed to member tracking instead of being stored in a ModeSet.
func (e ModeEntry) IsMemberStatusChange(kinds *ModeKinds) bool {
	return kinds.IsMemberStatus(e.Mode)
}

// Inverse returns the entry that undoes this one. The parameter is dropped
// when the kind of mode does not take one in the new direction.
func (e ModeEntry) Inverse(kinds *ModeKinds) ModeEntry {
	inv := ModeEntry{Mode: e.Mode, Set: !e.Set, Arg: e.Arg}
	if !kinds.NeedsArg(inv.Mode, inv.Set) {
		inv.Arg = ""
	}
	return inv
}

// String turns the entry into a modestring like +b *!*@host. The parameter is
// not masked, use RenderEntries for anything displayed or logged.
func (e ModeEntry) String() string {
	str := string([]rune{e.sign(), e.Mode})
	if e.HasArg() {
		str += " " + e.Arg
	}
	return str
}

func (e ModeEntry) sign() rune {
	if e.Set {
		return '+'
	}
	return '-'
}
