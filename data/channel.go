package data

import (
	"strings"
	"sync"

	"github.com/aarondl/modeq/irc"
	"gopkg.in/inconshreveable/log15.v2"
)

// MemberTracker owns the privileges of the members of a channel. Channels
// never store member status, they hand those changes to a MemberTracker.
type MemberTracker interface {
	MemberModeChange(channel, nick string, mode rune, set bool)
}

// ChannelOptions are the collaborators of a Channel, all of them optional.
type ChannelOptions struct {
	// NetworkInfo supplies MODES, LINELEN and MAXLIST.
	NetworkInfo *irc.NetworkInfo
	// Members receives member status changes.
	Members MemberTracker
	Logger  log15.Logger
	Metrics *Metrics
}

// Channel owns the live ModeSet of a single channel. All changes to it are
// serialized through the Channel, readers get immutable snapshots.
type Channel struct {
	name    string
	kinds   *ModeKinds
	ni      *irc.NetworkInfo
	members MemberTracker
	logger  log15.Logger
	metrics *Metrics

	protect sync.RWMutex
	modes   ModeSet
	// listing holds the addresses announced for each list mode since the
	// server began sending it, until the end of list numeric arrives.
	listing map[rune][]string
}

// NewChannel creates a channel with no modes set. If kinds is nil they are
// built from the options' NetworkInfo, or the defaults.
func NewChannel(name string, kinds *ModeKinds, opts ChannelOptions) *Channel {
	logger := opts.Logger
	if logger == nil {
		logger = log15.New()
		logger.SetHandler(log15.DiscardHandler())
	}
	logger = logger.New("channel", name)

	if kinds == nil {
		var err error
		if opts.NetworkInfo != nil {
			kinds, err = NewModeKindsFromNetworkInfo(opts.NetworkInfo)
		} else {
			kinds = DefaultModeKinds()
		}
		if err != nil {
			logger.Warn("falling back to default mode kinds", "err", err)
		}
	}

	return &Channel{
		name:    name,
		kinds:   kinds,
		ni:      opts.NetworkInfo,
		members: opts.Members,
		logger:  logger,
		metrics: opts.Metrics,
		modes:   NewModeSet(kinds),
		listing: make(map[rune][]string),
	}
}

// Name gets the name of the channel.
func (c *Channel) Name() string {
	return c.name
}

// Kinds returns the mode kinds of the channel.
func (c *Channel) Kinds() *ModeKinds {
	return c.kinds
}

// Modes returns the current snapshot of the channel's modes.
func (c *Channel) Modes() ModeSet {
	c.protect.RLock()
	defer c.protect.RUnlock()
	return c.modes
}

// Reset drops all modes, as when leaving the channel.
func (c *Channel) Reset() {
	c.protect.Lock()
	defer c.protect.Unlock()
	c.modes = NewModeSet(c.kinds)
	c.listing = make(map[rune][]string)
}

// Update applies an event to the channel. MODE and RPL_CHANNELMODEIS change
// the modes, the ban, exception and invite list numerics resynchronize the
// lists. Events for other targets or of other kinds are ignored.
func (c *Channel) Update(ev *irc.Event) error {
	switch ev.Name {
	case irc.MODE, irc.RPL_CHANNELMODEIS:
		channel, modes, args, ok := ev.ModeArgs()
		if !ok || !c.is(channel) {
			return nil
		}
		entries, err := ParseModes(c.kinds, modes, args)
		return c.apply(entries, err, ev.Name == irc.RPL_CHANNELMODEIS)

	case irc.RPL_BANLIST, irc.RPL_EXCEPTLIST, irc.RPL_INVITELIST:
		if len(ev.Args) < 3 || !c.is(ev.Args[1]) {
			return nil
		}
		return c.listEntry(listModes[ev.Name], ev.Args[2])

	case irc.RPL_ENDOFBANLIST, irc.RPL_ENDOFEXCEPTLIST, irc.RPL_ENDOFINVITELIST:
		if len(ev.Args) < 2 || !c.is(ev.Args[1]) {
			return nil
		}
		return c.endList(listModes[ev.Name])
	}

	return nil
}

// listModes maps the list numerics to the mode of the list they carry.
var listModes = map[string]rune{
	irc.RPL_BANLIST:         'b',
	irc.RPL_ENDOFBANLIST:    'b',
	irc.RPL_EXCEPTLIST:      'e',
	irc.RPL_ENDOFEXCEPTLIST: 'e',
	irc.RPL_INVITELIST:      'I',
	irc.RPL_ENDOFINVITELIST: 'I',
}

// ApplyModestring parses and applies a complex modestring.
func (c *Channel) ApplyModestring(modestring string) error {
	entries, err := ParseModestring(c.kinds, modestring)
	return c.apply(entries, err, false)
}

// ApplyEntries applies already parsed mode changes in order.
func (c *Channel) ApplyEntries(entries ...ModeEntry) error {
	return c.apply(entries, nil, false)
}

// apply routes member status changes to the member tracker and applies the
// rest to the channel's modes. When resync is set the scalar modes are
// replaced wholesale, as RPL_CHANNELMODEIS lists all of them.
func (c *Channel) apply(entries []ModeEntry, parseErr error, resync bool) error {
	ers := appendErrors(nil, parseErr)

	var member, channel []ModeEntry
	unknown, memberRejected := 0, 0
	for _, e := range entries {
		spec, ok := c.kinds.Lookup(e.Mode)
		if !ok {
			unknown++
			c.logger.Warn("unknown mode letter, assuming no parameter",
				"mode", string(e.Mode), "err", ErrUnknownModeLetter)
		}

		if !spec.MemberStatus {
			channel = append(channel, e)
			continue
		}
		if err := e.Validate(c.kinds); err != nil {
			ers = append(ers, err)
			memberRejected++
			continue
		}
		member = append(member, e)
	}

	c.protect.Lock()
	base := c.modes
	if resync {
		base = base.lists()
	}
	next, err := base.ApplyAll(channel...)
	c.modes = next
	c.protect.Unlock()

	applyErrs := appendErrors(nil, err)
	parseRejected := len(ers) - memberRejected
	ers = append(ers, applyErrs...)

	if c.members != nil {
		for _, e := range member {
			c.members.MemberModeChange(c.name, e.Arg, e.Mode, e.Set)
		}
	}

	c.metrics.directive(RESULT_APPLIED, len(channel)-len(applyErrs))
	c.metrics.directive(RESULT_REJECTED,
		parseRejected+memberRejected+len(applyErrs))
	c.metrics.directive(RESULT_MEMBER, len(member))
	c.metrics.directive(RESULT_UNKNOWN, unknown)

	for _, e := range ers {
		c.logger.Warn("rejected mode change", "err", e)
	}
	if len(channel) > 0 {
		c.logger.Debug("modes applied",
			"changes", RenderEntries(channel, DefaultSecretModes...),
			"modes", next.String())
	}

	c.checkMaxList(next)

	return ers.errOrNil()
}

// checkMaxList warns when a list holds more entries than the server allows,
// a sign that our view of the list is stale.
func (c *Channel) checkMaxList(set ModeSet) {
	if c.ni == nil {
		return
	}

	seen := make(map[rune]bool)
	for _, e := range set.entries {
		if seen[e.Mode] || !set.IsList(e.Mode) {
			continue
		}
		seen[e.Mode] = true

		max := c.ni.MaxList(e.Mode)
		if n := len(set.List(e.Mode)); max > 0 && n > max {
			c.logger.Warn("list exceeds server maximum",
				"mode", string(e.Mode), "entries", n, "max", max)
		}
	}
}

// listEntry records an address announced by a list numeric and sets it.
func (c *Channel) listEntry(mode rune, address string) error {
	c.protect.Lock()
	c.listing[mode] = append(c.listing[mode], address)
	c.protect.Unlock()

	return c.apply([]ModeEntry{{Mode: mode, Set: true, Arg: address}}, nil, false)
}

// endList removes every address of a list mode that was not announced since
// the list began.
func (c *Channel) endList(mode rune) error {
	c.protect.Lock()
	announced := c.listing[mode]
	delete(c.listing, mode)
	c.protect.Unlock()

	var stale []ModeEntry
	for _, address := range c.Modes().List(mode) {
		if !contains(announced, address) {
			stale = append(stale, ModeEntry{Mode: mode, Set: false, Arg: address})
		}
	}

	if len(stale) == 0 {
		return nil
	}
	return c.apply(stale, nil, false)
}

// DesiredModes builds a target state from the current modes with the given
// modestring applied on top, plus the channel key when one is given.
func (c *Channel) DesiredModes(defaults, key string) (ModeSet, error) {
	entries, err := ParseModestring(c.kinds, defaults)
	if len(key) > 0 {
		entries = append(entries, ModeEntry{Mode: KEY_MODE, Set: true, Arg: key})
	}

	desired, applyErr := c.Modes().ApplyAll(entries...)

	var ers ModeErrors
	ers = appendErrors(ers, err)
	ers = appendErrors(ers, applyErr)
	return desired, ers.errOrNil()
}

// ChangeCommands computes the modestrings that take the channel from its
// current modes to desired, within the limits the server advertised.
func (c *Channel) ChangeCommands(desired ModeSet) ([]string, error) {
	entries := Diff(c.Modes(), desired)
	if len(entries) == 0 {
		return nil, nil
	}

	maxModes, linelen := irc.INFO_DEFAULT_MODES, 0
	if c.ni != nil {
		maxModes, linelen = c.ni.Modes(), c.ni.Linelen()
	}

	commands, err := BuildChangeCommands(entries, maxModes,
		irc.ModestringBudget(c.name, linelen))

	c.metrics.commands(len(commands))
	if err != nil {
		c.metrics.oversized(len(appendErrors(nil, err)))
		c.logger.Warn("mode change does not fit a line", "err", err)
	}
	c.logger.Debug("mode changes built",
		"changes", RenderEntries(entries, DefaultSecretModes...),
		"lines", len(commands))

	return commands, err
}

// SendChanges writes the MODE lines that take the channel to desired. The
// channel's modes are not changed, that happens when the server echoes them.
// A write error takes precedence over an ErrParameterTooLong.
func (c *Channel) SendChanges(w irc.Writer, desired ModeSet) error {
	commands, err := c.ChangeCommands(desired)
	if werr := w.Mode(c.name, commands...); werr != nil {
		return werr
	}
	return err
}

// is checks if target names this channel.
func (c *Channel) is(target string) bool {
	return strings.EqualFold(target, c.name)
}

func contains(list []string, s string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}
