package data

import (
	"strings"

	"github.com/aarondl/modeq/irc"
	"github.com/pkg/errors"
)

// ArgKind is the parameter-taking behavior of a mode letter.
type ArgKind int

// The various kinds of mode-argument behavior during parsing. These map onto
// the four CHANMODES groups, in reverse.
const (
	// ARGS_NONE modes never take a parameter.
	ARGS_NONE ArgKind = iota
	// ARGS_ALWAYS modes take a parameter when set and unset, the channel key.
	ARGS_ALWAYS
	// ARGS_ONSET modes take a parameter only when set, the user limit.
	ARGS_ONSET
	// ARGS_ADDRESS modes are lists, each entry an address. Bans, exceptions.
	ARGS_ADDRESS
)

// These are the built-in fallbacks used when a server's capability tokens
// cannot be parsed. They cover only the letters reserved by RFC2811.
const (
	DEFAULT_CHANMODES = "beI,k,l,imnpst"
	DEFAULT_PREFIX    = "(ov)@+"
)

// String returns the name of the kind.
func (k ArgKind) String() string {
	switch k {
	case ARGS_NONE:
		return "none"
	case ARGS_ALWAYS:
		return "always"
	case ARGS_ONSET:
		return "onset"
	case ARGS_ADDRESS:
		return "address"
	}
	return "invalid"
}

// ModeSpec describes a single mode letter.
type ModeSpec struct {
	Mode rune
	Kind ArgKind
	// MemberStatus is true for modes that change a member's privilege on the
	// channel rather than the channel itself. Their parameter is a nick.
	MemberStatus bool
}

// ModeKinds contains mode type information, ModeSet and the parsers require
// this information to know which modes consume parameters. It is read-only
// after creation, a change in capabilities requires a new ModeKinds.
type ModeKinds struct {
	kinds   map[rune]ModeSpec
	members *MemberModes
	groups  [4]string
}

// NewModeKinds creates a mode kinds structure taking in a string for each
// CHANMODES group as well as the member modes. members may be nil.
func NewModeKinds(address, always, onset, none string,
	members *MemberModes) *ModeKinds {

	m := &ModeKinds{
		kinds:   make(map[rune]ModeSpec),
		members: members,
	}

	groups := []struct {
		modes string
		kind  ArgKind
	}{
		{address, ARGS_ADDRESS},
		{always, ARGS_ALWAYS},
		{onset, ARGS_ONSET},
		{none, ARGS_NONE},
	}

	for i, group := range groups {
		kept := make([]rune, 0, len(group.modes))
		for _, mode := range group.modes {
			if _, ok := m.kinds[mode]; ok {
				continue
			}
			m.kinds[mode] = ModeSpec{Mode: mode, Kind: group.kind}
			kept = append(kept, mode)
		}
		m.groups[i] = string(kept)
	}

	for _, mode := range members.Modes() {
		if _, ok := m.kinds[mode]; ok {
			continue
		}
		m.kinds[mode] = ModeSpec{Mode: mode, Kind: ARGS_ALWAYS, MemberStatus: true}
	}

	return m
}

// NewModeKindsCSV creates ModeKinds from an IRC CHANMODES csv string and a
// PREFIX string. The CHANMODES format is ARGS_ADDRESS,ARGS_ALWAYS,ARGS_ONSET,
// ARGS_NONE. Should either token be malformed a usable ModeKinds built from the
// defaults is still returned alongside an error with ErrMalformedCapability as
// its cause.
func NewModeKindsCSV(chanmodes, prefix string) (*ModeKinds, error) {
	var ers ModeErrors

	members, err := NewMemberModes(prefix)
	if err != nil {
		ers = append(ers, err)
		members, _ = NewMemberModes(DEFAULT_PREFIX)
	}

	groups, err := splitChanmodes(chanmodes)
	if err != nil {
		ers = append(ers, err)
		groups, _ = splitChanmodes(DEFAULT_CHANMODES)
	}

	kinds := NewModeKinds(groups[0], groups[1], groups[2], groups[3], members)
	if len(ers) == 1 {
		return kinds, ers[0]
	}
	return kinds, ers.errOrNil()
}

// NewModeKindsFromNetworkInfo creates ModeKinds from the CHANMODES and PREFIX
// capabilities the server advertised.
func NewModeKindsFromNetworkInfo(ni *irc.NetworkInfo) (*ModeKinds, error) {
	return NewModeKindsCSV(ni.Chanmodes(), ni.Prefix())
}

// DefaultModeKinds returns the conservative built-in ModeKinds.
func DefaultModeKinds() *ModeKinds {
	kinds, _ := NewModeKindsCSV(DEFAULT_CHANMODES, DEFAULT_PREFIX)
	return kinds
}

// splitChanmodes splits an IRC CHANMODES csv string into its four groups.
// Servers may append further groups, which are ignored.
func splitChanmodes(chanmodes string) ([4]string, error) {
	var groups [4]string
	if len(chanmodes) == 0 {
		return groups, errors.Wrap(ErrMalformedCapability, "empty chanmodes")
	}

	splits := strings.Split(chanmodes, ",")
	if len(splits) < 4 {
		return groups, errors.Wrapf(ErrMalformedCapability,
			"chanmodes %q: expected 4 groups, got %d", chanmodes, len(splits))
	}

	for i := 0; i < 4; i++ {
		if strings.ContainsAny(splits[i], "+- ") {
			return groups, errors.Wrapf(ErrMalformedCapability,
				"chanmodes %q: invalid mode in group %d", chanmodes, i+1)
		}
		groups[i] = splits[i]
	}

	return groups, nil
}

// Lookup returns the spec for a mode. ok is false for unknown modes.
func (m *ModeKinds) Lookup(mode rune) (spec ModeSpec, ok bool) {
	if m == nil {
		return ModeSpec{}, false
	}
	spec, ok = m.kinds[mode]
	return spec, ok
}

// Kind gets the kind of mode. Unknown modes are ARGS_NONE, it is never safe
// to assume an unknown mode consumes a parameter.
func (m *ModeKinds) Kind(mode rune) ArgKind {
	spec, _ := m.Lookup(mode)
	return spec.Kind
}

// IsMemberStatus checks if mode changes a member's privilege.
func (m *ModeKinds) IsMemberStatus(mode rune) bool {
	spec, _ := m.Lookup(mode)
	return spec.MemberStatus
}

// IsList checks if mode is a list mode holding many addresses.
func (m *ModeKinds) IsList(mode rune) bool {
	return m.Kind(mode) == ARGS_ADDRESS
}

// NeedsArg checks if mode consumes a parameter when set (or unset).
func (m *ModeKinds) NeedsArg(mode rune, set bool) bool {
	switch m.Kind(mode) {
	case ARGS_ADDRESS, ARGS_ALWAYS:
		return true
	case ARGS_ONSET:
		return set
	}
	return false
}

// Members returns the member modes, may be nil.
func (m *ModeKinds) Members() *MemberModes {
	if m == nil {
		return nil
	}
	return m.members
}

// CSV rebuilds a CHANMODES string from the modes kept in each group.
func (m *ModeKinds) CSV() string {
	if m == nil {
		return ",,,"
	}
	return strings.Join(m.groups[:], ",")
}
