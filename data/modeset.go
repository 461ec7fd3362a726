package data

import (
	"github.com/aarondl/modeq/irc"
)

// ModeSet is an immutable snapshot of the modes active on a channel. Scalar
// modes appear at most once, list modes once per distinct address. Entries
// keep the order they were first set in.
//
// All methods return new ModeSets, a snapshot that has been handed out is
// never changed so it can be read from anywhere without locking.
type ModeSet struct {
	*ModeKinds
	entries []ModeEntry
}

// NewModeSet creates an empty ModeSet.
func NewModeSet(kinds *ModeKinds) ModeSet {
	return ModeSet{ModeKinds: kinds}
}

// Kinds returns the ModeKinds this set classifies modes with.
func (s ModeSet) Kinds() *ModeKinds {
	return s.ModeKinds
}

// Apply applies a single mode change, returning the new set. Member status
// changes are not stored and leave the set as it was. If the change is
// invalid for its kind of mode the set is returned unchanged with an error.
func (s ModeSet) Apply(e ModeEntry) (ModeSet, error) {
	if err := e.Validate(s.ModeKinds); err != nil {
		return s, err
	}
	if e.IsMemberStatusChange(s.ModeKinds) {
		return s, nil
	}

	b := s.builder()
	if !b.apply(e) {
		return s, nil
	}
	return b.done(), nil
}

// ApplyAll applies mode changes strictly in order. Invalid changes are skipped
// and reported in the returned ModeErrors, the rest are still applied.
func (s ModeSet) ApplyAll(entries ...ModeEntry) (ModeSet, error) {
	var ers ModeErrors

	b := s.builder()
	changed := false
	for _, e := range entries {
		if err := e.Validate(s.ModeKinds); err != nil {
			ers = append(ers, err)
			continue
		}
		if e.IsMemberStatusChange(s.ModeKinds) {
			continue
		}
		if b.apply(e) {
			changed = true
		}
	}

	if !changed {
		return s, ers.errOrNil()
	}
	return b.done(), ers.errOrNil()
}

// Len is the number of entries in the set.
func (s ModeSet) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in the order they were set.
func (s ModeSet) Entries() []ModeEntry {
	entries := make([]ModeEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// IsSet checks if any entry for mode is present.
func (s ModeSet) IsSet(mode rune) bool {
	for _, e := range s.entries {
		if e.Mode == mode {
			return true
		}
	}
	return false
}

// Arg returns the parameter of a scalar mode. ok is false if the mode is not
// set.
func (s ModeSet) Arg(mode rune) (arg string, ok bool) {
	for _, e := range s.entries {
		if e.Mode == mode {
			return e.Arg, true
		}
	}
	return "", false
}

// List returns the addresses of a list mode, nil if there are none.
func (s ModeSet) List(mode rune) []string {
	var list []string
	for _, e := range s.entries {
		if e.Mode == mode {
			list = append(list, e.Arg)
		}
	}
	return list
}

// Has checks if the set contains an entry equal to e. e must be a set entry.
func (s ModeSet) Has(e ModeEntry) bool {
	if !e.Set {
		return false
	}
	i := s.find(e.Mode, e.Arg)
	return i >= 0 && s.entries[i].Arg == e.Arg
}

// Equal checks if both sets hold the same entries regardless of order.
func (s ModeSet) Equal(other ModeSet) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for _, e := range s.entries {
		if !other.Has(e) {
			return false
		}
	}
	return true
}

// Matches returns the addresses of list mode that match the given hostmask.
func (s ModeSet) Matches(mode rune, host irc.Mask) []string {
	var matched []string
	for _, e := range s.entries {
		if e.Mode == mode && irc.WildMask(e.Arg).Match(host) {
			matched = append(matched, e.Arg)
		}
	}
	return matched
}

// Clear returns the mode changes that would remove every entry for mode.
func (s ModeSet) Clear(mode rune) []ModeEntry {
	var entries []ModeEntry
	for _, e := range s.entries {
		if e.Mode == mode {
			entries = append(entries, e.Inverse(s.ModeKinds))
		}
	}
	return entries
}

// find returns the index of the entry occupying the key of (mode, arg). List
// modes are keyed by mode and address, everything else by mode alone.
func (s ModeSet) find(mode rune, arg string) int {
	return findEntry(s.entries, s.ModeKinds, mode, arg)
}

func findEntry(entries []ModeEntry, kinds *ModeKinds, mode rune,
	arg string) int {

	list := kinds.IsList(mode)
	for i, e := range entries {
		if e.Mode != mode {
			continue
		}
		if !list || e.Arg == arg {
			return i
		}
	}
	return -1
}

// modeSetBuilder is the only place a ModeSet's entries are mutated. It owns a
// private copy until done hands it off.
type modeSetBuilder struct {
	kinds   *ModeKinds
	entries []ModeEntry
}

func (s ModeSet) builder() *modeSetBuilder {
	entries := make([]ModeEntry, len(s.entries), len(s.entries)+4)
	copy(entries, s.entries)
	return &modeSetBuilder{kinds: s.ModeKinds, entries: entries}
}

// apply mutates the builder's entries, reporting if anything changed.
func (b *modeSetBuilder) apply(e ModeEntry) bool {
	i := findEntry(b.entries, b.kinds, e.Mode, e.Arg)

	if !e.Set {
		if i < 0 {
			return false
		}
		b.entries = append(b.entries[:i], b.entries[i+1:]...)
		return true
	}

	if i < 0 {
		b.entries = append(b.entries, e)
		return true
	}
	if b.entries[i] == e {
		return false
	}
	b.entries[i] = e
	return true
}

func (b *modeSetBuilder) done() ModeSet {
	set := ModeSet{ModeKinds: b.kinds, entries: b.entries}
	b.entries = nil
	return set
}

// lists returns a set holding only the list mode entries of s.
func (s ModeSet) lists() ModeSet {
	b := &modeSetBuilder{kinds: s.ModeKinds}
	for _, e := range s.entries {
		if s.IsList(e.Mode) {
			b.entries = append(b.entries, e)
		}
	}
	return b.done()
}
