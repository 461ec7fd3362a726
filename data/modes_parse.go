package data

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseModestring parses a complex modestring such as "+bl-k *!*@host 50 key"
// into mode changes in the order they appear. See ParseModes.
func ParseModestring(kinds *ModeKinds, modestring string) ([]ModeEntry, error) {
	splits := strings.Fields(modestring)
	if len(splits) == 0 {
		return nil, nil
	}
	return ParseModes(kinds, splits[0], splits[1:])
}

// ParseModes parses the symbol runs of a modestring with its already split
// parameters. A missing leading + or - means +. Modes that need a parameter
// but have none left are reported as ErrModeParameterMismatch and skipped,
// parsing carries on with the rest. Unknown modes never consume a parameter.
func ParseModes(kinds *ModeKinds, modes string,
	args []string) ([]ModeEntry, error) {

	var ers ModeErrors
	entries := make([]ModeEntry, 0, len(modes))

	adding := true
	used := 0

	for _, mode := range modes {
		switch mode {
		case '+':
			adding = true
			continue
		case '-':
			adding = false
			continue
		}

		e := ModeEntry{Mode: mode, Set: adding}
		if kinds.NeedsArg(mode, adding) {
			if used >= len(args) {
				ers = append(ers, errors.Wrapf(ErrModeParameterMismatch,
					"%c%c requires a parameter, none left", e.sign(), mode))
				continue
			}
			e.Arg = args[used]
			used++
		}

		entries = append(entries, e)
	}

	if used < len(args) {
		ers = append(ers, errors.Wrapf(ErrModeParameterMismatch,
			"%d unused parameters", len(args)-used))
	}

	return entries, ers.errOrNil()
}

// ParseModeSet parses a simple or complex modestring and applies it to an
// empty ModeSet. It is the inverse of RenderUnmasked.
func ParseModeSet(kinds *ModeKinds, modestring string) (ModeSet, error) {
	entries, err := ParseModestring(kinds, modestring)
	set, applyErr := NewModeSet(kinds).ApplyAll(entries...)

	var ers ModeErrors
	ers = appendErrors(ers, err)
	ers = appendErrors(ers, applyErr)
	return set, ers.errOrNil()
}

// appendErrors flattens err onto ers.
func appendErrors(ers ModeErrors, err error) ModeErrors {
	if err == nil {
		return ers
	}
	if list, ok := err.(ModeErrors); ok {
		return append(ers, list...)
	}
	return append(ers, err)
}
