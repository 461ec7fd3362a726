package data

// Diff computes the mode changes that turn current into desired. All the
// unsets come before all the sets. Unsets keep current's order and sets keep
// desired's order so the result is deterministic.
//
// A scalar mode present in both with a different parameter is only set again,
// setting a scalar mode replaces it.
func Diff(current, desired ModeSet) []ModeEntry {
	kinds := current.ModeKinds
	if kinds == nil {
		kinds = desired.ModeKinds
	}

	var unsets, sets []ModeEntry
	for _, e := range current.entries {
		if findEntry(desired.entries, kinds, e.Mode, e.Arg) < 0 {
			unsets = append(unsets, e.Inverse(kinds))
		}
	}

	for _, e := range desired.entries {
		i := findEntry(current.entries, kinds, e.Mode, e.Arg)
		if i < 0 || current.entries[i].Arg != e.Arg {
			sets = append(sets, ModeEntry{Mode: e.Mode, Set: true, Arg: e.Arg})
		}
	}

	return append(unsets, sets...)
}
