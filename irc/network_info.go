package irc

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// These constants are the mappings from the 004 and 005 events to their
// respective spots inside the NetworkInfo type.
const (
	INFO_CASEMAPPING = "CASEMAPPING"
	INFO_PREFIX      = "PREFIX"
	INFO_CHANTYPES   = "CHANTYPES"
	INFO_CHANMODES   = "CHANMODES"
	INFO_MODES       = "MODES"
	INFO_LINELEN     = "LINELEN"
	INFO_MAXLIST     = "MAXLIST"
)

// These constants are healthy defaults for a NetworkInfo type. They were
// taken from ngircd.
const (
	INFO_DEFAULT_SERVERNAME  = "unknown"
	INFO_DEFAULT_IRCDVERSION = "unknown"
	INFO_DEFAULT_USERMODES   = "acCiorRswx"
	INFO_DEFAULT_LCHANMODES  = "beiIklmnoOPrRstvz"

	INFO_DEFAULT_CASEMAPPING = "ascii"
	INFO_DEFAULT_PREFIX      = "(ov)@+"
	INFO_DEFAULT_CHANTYPES   = "#&~"
	INFO_DEFAULT_CHANMODES   = "beI,k,l,imnOPRstz"
	INFO_DEFAULT_MODES       = 5
	INFO_DEFAULT_LINELEN     = 512
)

var (
	capsRegexp = regexp.MustCompile(`^(?i)([A-Z0-9]+)(?:=([^\s]*))?$`)
)

// NetworkInfo is used to record the server capabilities, this later aids in
// parsing and generating mode changes.
type NetworkInfo struct {
	// The server's self-defined name.
	serverName string
	// The ircd's version.
	ircdVersion string
	// The user modes
	usermodes string
	// The legacy chanmodes, chanmodes should be used instead.
	lchanmodes string

	// The string casemapping
	casemapping string
	// The prefix for member modes
	prefix string
	// The channel types supported by the server, usually &#~
	chantypes string
	// The channel modes allowed to be set by the server.
	chanmodes string
	// The number of modes allowed per mode line, 0 for no limit.
	modes int
	// The maximum length of a line including the crlf.
	linelen int
	// The maximum number of entries per list mode.
	maxlist map[rune]int

	// The other flags sent in.
	extras map[string]string

	protect *sync.RWMutex
}

// NewNetworkInfo initializes a networkinfo struct.
func NewNetworkInfo() *NetworkInfo {
	return &NetworkInfo{
		serverName:  INFO_DEFAULT_SERVERNAME,
		ircdVersion: INFO_DEFAULT_IRCDVERSION,
		usermodes:   INFO_DEFAULT_USERMODES,
		lchanmodes:  INFO_DEFAULT_LCHANMODES,
		casemapping: INFO_DEFAULT_CASEMAPPING,
		prefix:      INFO_DEFAULT_PREFIX,
		chantypes:   INFO_DEFAULT_CHANTYPES,
		chanmodes:   INFO_DEFAULT_CHANMODES,
		modes:       INFO_DEFAULT_MODES,
		linelen:     INFO_DEFAULT_LINELEN,
		maxlist:     make(map[rune]int),
		extras:      make(map[string]string),

		protect: new(sync.RWMutex),
	}
}

// Clone safely clones this networkinfo instance.
func (p *NetworkInfo) Clone() *NetworkInfo {
	p.protect.RLock()
	defer p.protect.RUnlock()
	clone := *p
	clone.extras = make(map[string]string, len(p.extras))
	for k, v := range p.extras {
		clone.extras[k] = v
	}
	clone.maxlist = make(map[rune]int, len(p.maxlist))
	for k, v := range p.maxlist {
		clone.maxlist[k] = v
	}
	clone.protect = new(sync.RWMutex)
	return &clone
}

// ServerName gets the servername from the NetworkInfo.
func (p *NetworkInfo) ServerName() string {
	p.protect.RLock()
	defer p.protect.RUnlock()
	return p.serverName
}

// IrcdVersion gets the irc version from the NetworkInfo.
func (p *NetworkInfo) IrcdVersion() string {
	p.protect.RLock()
	defer p.protect.RUnlock()
	return p.ircdVersion
}

// LegacyChanmodes gets the legacy channel modes from the NetworkInfo.
func (p *NetworkInfo) LegacyChanmodes() string {
	p.protect.RLock()
	defer p.protect.RUnlock()
	return p.lchanmodes
}

// Casemapping gets the casemapping from the NetworkInfo.
func (p *NetworkInfo) Casemapping() string {
	p.protect.RLock()
	defer p.protect.RUnlock()
	return p.casemapping
}

// Prefix gets the prefix from the NetworkInfo.
func (p *NetworkInfo) Prefix() string {
	p.protect.RLock()
	defer p.protect.RUnlock()
	return p.prefix
}

// Chantypes gets the chantypes from the NetworkInfo.
func (p *NetworkInfo) Chantypes() string {
	p.protect.RLock()
	defer p.protect.RUnlock()
	return p.chantypes
}

// Chanmodes gets the chanmodes from the NetworkInfo.
func (p *NetworkInfo) Chanmodes() string {
	p.protect.RLock()
	defer p.protect.RUnlock()
	return p.chanmodes
}

// Modes gets the number of modes allowed per MODE line. 0 means the server
// imposes no limit.
func (p *NetworkInfo) Modes() int {
	p.protect.RLock()
	defer p.protect.RUnlock()
	return p.modes
}

// Linelen gets the maximum length of a line including the trailing crlf.
func (p *NetworkInfo) Linelen() int {
	p.protect.RLock()
	defer p.protect.RUnlock()
	return p.linelen
}

// MaxList gets the maximum number of entries allowed for a list mode. 0 means
// the server did not advertise one.
func (p *NetworkInfo) MaxList(mode rune) int {
	p.protect.RLock()
	defer p.protect.RUnlock()
	return p.maxlist[mode]
}

// Extra gets any non-hardcoded capabilities from the NetworkInfo.
func (p *NetworkInfo) Extra(key string) string {
	p.protect.RLock()
	defer p.protect.RUnlock()
	return p.extras[key]
}

// ParseISupport adds all values in a 005 to the current networkinfo object.
func (p *NetworkInfo) ParseISupport(e *Event) {
	p.protect.Lock()
	defer p.protect.Unlock()

	if len(e.Args) < 2 {
		return
	}

	for _, arg := range e.Args[1:] {
		if strings.Contains(arg, " ") {
			continue
		}

		regexResult := capsRegexp.FindStringSubmatch(arg)
		if regexResult == nil {
			continue
		}
		name, value := strings.ToUpper(regexResult[1]), regexResult[2]

		switch name {
		case INFO_CASEMAPPING:
			p.casemapping = value
		case INFO_PREFIX:
			p.prefix = value
		case INFO_CHANTYPES:
			p.chantypes = value
		case INFO_CHANMODES:
			p.chanmodes = value
		case INFO_MODES:
			if len(value) == 0 {
				p.modes = 0
				continue
			}
			if i, err := strconv.Atoi(value); err == nil {
				p.modes = i
			}
		case INFO_LINELEN:
			if i, err := strconv.Atoi(value); err == nil && i > 0 {
				p.linelen = i
			}
		case INFO_MAXLIST:
			p.parseMaxList(value)
		default:
			if value == "" {
				value = "true"
			}
			p.extras[name] = value
		}
	}
}

// parseMaxList parses a MAXLIST value of the form beI:100,q:50
func (p *NetworkInfo) parseMaxList(value string) {
	for _, group := range strings.Split(value, ",") {
		colon := strings.IndexByte(group, ':')
		if colon < 0 {
			continue
		}
		n, err := strconv.Atoi(group[colon+1:])
		if err != nil {
			continue
		}
		for _, mode := range group[:colon] {
			p.maxlist[mode] = n
		}
	}
}

// IsChannel checks to see if the target is a channel based on this instances
// chantypes.
func (p *NetworkInfo) IsChannel(target string) (isChan bool) {
	if len(target) > 0 {
		p.protect.RLock()
		isChan = strings.ContainsRune(p.chantypes, rune(target[0]))
		p.protect.RUnlock()
	}
	return
}

// ParseMyInfo adds all values in a 004 to the current networkinfo object.
func (p *NetworkInfo) ParseMyInfo(e *Event) {
	p.protect.Lock()
	defer p.protect.Unlock()

	if len(e.Args) < 5 {
		return
	}

	p.serverName = e.Args[1]
	p.ircdVersion = e.Args[2]
	p.usermodes = e.Args[3]
	p.lchanmodes = e.Args[4]
}
