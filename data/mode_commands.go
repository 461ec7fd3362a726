package data

import (
	"github.com/pkg/errors"
)

// BuildChangeCommands batches mode changes into modestrings, one per MODE
// line. Each modestring holds at most maxModes modes and is at most maxLen
// bytes long, a limit of 0 or less is no limit. Modestrings are returned in
// the order they must be sent and must not be reordered or split further.
//
// A single change too long to fit within maxLen on its own is still emitted
// alone, and reported with an ErrParameterTooLong cause in the returned
// ModeErrors. No changes produce no modestrings.
func BuildChangeCommands(entries []ModeEntry, maxModes,
	maxLen int) ([]string, error) {

	if len(entries) == 0 {
		return nil, nil
	}

	var commands []string
	var ers ModeErrors
	var cur modeBatch

	for _, e := range entries {
		if cur.size() > 0 &&
			((maxModes > 0 && cur.size()+1 > maxModes) ||
				(maxLen > 0 && cur.lenWith(e) > maxLen)) {

			commands = append(commands, cur.String())
			cur = modeBatch{}
		}

		cur.add(e)

		if maxLen > 0 && cur.size() == 1 && cur.length() > maxLen {
			ers = append(ers, errors.Wrapf(ErrParameterTooLong,
				"%c%c with a %d byte parameter needs %d bytes, limit is %d",
				e.sign(), e.Mode, len(e.Arg), cur.length(), maxLen))
			commands = append(commands, cur.String())
			cur = modeBatch{}
		}
	}

	if cur.size() > 0 {
		commands = append(commands, cur.String())
	}

	return commands, ers.errOrNil()
}

// modeBatch accumulates the changes for a single MODE line and keeps running
// totals so the rendered length is known without rendering.
type modeBatch struct {
	entries    []ModeEntry
	unsetModes int
	setModes   int
	args       int
}

func (b *modeBatch) size() int {
	return len(b.entries)
}

func (b *modeBatch) add(e ModeEntry) {
	b.entries = append(b.entries, e)
	if e.Set {
		b.setModes += modeLen(e.Mode)
	} else {
		b.unsetModes += modeLen(e.Mode)
	}
	if e.HasArg() {
		b.args += 1 + len(e.Arg)
	}
}

func (b *modeBatch) length() int {
	return renderedLen(b.unsetModes, b.setModes, b.args)
}

// lenWith is the length the batch would have after adding e.
func (b *modeBatch) lenWith(e ModeEntry) int {
	unsetModes, setModes, args := b.unsetModes, b.setModes, b.args
	if e.Set {
		setModes += modeLen(e.Mode)
	} else {
		unsetModes += modeLen(e.Mode)
	}
	if e.HasArg() {
		args += 1 + len(e.Arg)
	}
	return renderedLen(unsetModes, setModes, args)
}

func (b *modeBatch) String() string {
	return renderEntries(b.entries, nil)
}
