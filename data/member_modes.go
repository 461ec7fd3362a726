package data

import "github.com/pkg/errors"

// MemberModes maps modes applied to a member of a channel to a mode
// character and display symbol. The order is that of the server's PREFIX,
// most privileged first.
type MemberModes struct {
	prefix string
	modes  [][2]rune
}

// NewMemberModes creates an object that can be used to look up member modes.
// Prefix should be in IRC PREFIX style string. Of the form (ov)@+ where the
// letters map to symbols.
func NewMemberModes(prefix string) (*MemberModes, error) {
	modes, err := parsePrefixString(prefix)
	if err != nil {
		return nil, err
	}

	return &MemberModes{
		prefix: prefix,
		modes:  modes,
	}, nil
}

// parsePrefixString parses a prefix string into an slice of arrays depicting
// the mapping from mode to symbol.
func parsePrefixString(prefix string) ([][2]rune, error) {
	runes := []rune(prefix)
	if len(runes) == 0 {
		return nil, nil
	}
	if runes[0] != '(' {
		return nil, errors.Wrapf(ErrMalformedCapability, "prefix %q", prefix)
	}

	split := -1
	for i, r := range runes {
		if r == ')' {
			split = i
			break
		}
	}
	if split < 0 {
		return nil, errors.Wrapf(ErrMalformedCapability, "prefix %q", prefix)
	}

	n := split - 1
	if len(runes)-split-1 != n {
		return nil, errors.Wrapf(ErrMalformedCapability,
			"prefix %q: modes and symbols differ in length", prefix)
	}

	modes := make([][2]rune, n)
	for i := 0; i < n; i++ {
		modes[i][0], modes[i][1] = runes[i+1], runes[split+1+i]
	}

	return modes, nil
}

// Prefix returns the PREFIX string this was built from.
func (m *MemberModes) Prefix() string {
	if m == nil {
		return ""
	}
	return m.prefix
}

// Modes returns the member mode characters, most privileged first.
func (m *MemberModes) Modes() string {
	if m == nil {
		return ""
	}
	modes := make([]rune, len(m.modes))
	for i := range m.modes {
		modes[i] = m.modes[i][0]
	}
	return string(modes)
}

// Symbol returns the symbol character of the mode given, 0 if not found.
func (m *MemberModes) Symbol(mode rune) rune {
	if m == nil {
		return 0
	}
	for i := 0; i < len(m.modes); i++ {
		if m.modes[i][0] == mode {
			return m.modes[i][1]
		}
	}
	return 0
}

// Mode returns the mode character of the symbol given, 0 if not found.
func (m *MemberModes) Mode(symbol rune) rune {
	if m == nil {
		return 0
	}
	for i := 0; i < len(m.modes); i++ {
		if m.modes[i][1] == symbol {
			return m.modes[i][0]
		}
	}
	return 0
}

// Rank returns the privilege rank of mode, 0 being the most privileged. -1 is
// returned for modes that are not member modes.
func (m *MemberModes) Rank(mode rune) int {
	if m == nil {
		return -1
	}
	for i := 0; i < len(m.modes); i++ {
		if m.modes[i][0] == mode {
			return i
		}
	}
	return -1
}
