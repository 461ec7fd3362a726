package config

import (
	"strconv"
	"strings"
	"sync"

	"github.com/aarondl/modeq/data"
	"github.com/aarondl/modeq/irc"
)

// NetCtx is a context for network parts of the config, allowing querying and
// setting of network related values. The global context has no parent.
type NetCtx struct {
	mutex   *sync.RWMutex
	name    string
	parent  map[string]interface{}
	network map[string]interface{}
}

func (n *NetCtx) lock()    { n.mutex.Lock() }
func (n *NetCtx) unlock()  { n.mutex.Unlock() }
func (n *NetCtx) rlock()   { n.mutex.RLock() }
func (n *NetCtx) runlock() { n.mutex.RUnlock() }

func (n *NetCtx) get(key string) (interface{}, bool) {
	v, ok := n.network[key]
	return v, ok
}

func (n *NetCtx) getParent(key string) (interface{}, bool) {
	if n.parent == nil {
		return nil, false
	}

	v, ok := n.parent[key]
	return v, ok
}

func (n *NetCtx) set(key string, value interface{}) {
	n.network[key] = value
}

// Name of the network, empty for the global context.
func (n *NetCtx) Name() string {
	return n.name
}

func (n *NetCtx) Chanmodes() (string, bool) {
	return getStr(n, "chanmodes", true)
}

func (n *NetCtx) SetChanmodes(val string) {
	setVal(n, "chanmodes", val)
}

func (n *NetCtx) Prefix() (string, bool) {
	return getStr(n, "prefix", true)
}

func (n *NetCtx) SetPrefix(val string) {
	setVal(n, "prefix", val)
}

func (n *NetCtx) MaxModes() (int, bool) {
	if val, ok := getInt(n, "maxmodes", true); ok {
		return val, true
	}
	return defaultMaxModes, false
}

func (n *NetCtx) SetMaxModes(val int) {
	setVal(n, "maxmodes", val)
}

func (n *NetCtx) LineLength() (int, bool) {
	if val, ok := getInt(n, "linelength", true); ok {
		return val, true
	}
	return defaultLineLength, false
}

func (n *NetCtx) SetLineLength(val int) {
	setVal(n, "linelength", val)
}

func (n *NetCtx) SecretModes() (string, bool) {
	if val, ok := getStr(n, "secretmodes", true); ok {
		return val, true
	}
	return defaultSecretModes, false
}

func (n *NetCtx) SetSecretModes(val string) {
	setVal(n, "secretmodes", val)
}

func (n *NetCtx) LogLevel() (string, bool) {
	return getStr(n, "loglevel", true)
}

func (n *NetCtx) SetLogLevel(val string) {
	setVal(n, "loglevel", val)
}

// EnforceModes is the network's own enforcemodes setting.
func (n *NetCtx) EnforceModes() Tristate {
	return getTristate(n, "enforcemodes")
}

func (n *NetCtx) SetEnforceModes(val Tristate) {
	n.lock()
	defer n.unlock()

	if val == Inherit {
		delete(n.network, "enforcemodes")
		return
	}
	n.network["enforcemodes"] = val == Enabled
}

// Secrets returns the secret modes as runes for rendering.
func (n *NetCtx) Secrets() []rune {
	str, _ := n.SecretModes()
	return []rune(str)
}

// ModeKinds builds the mode kinds from the configured chanmodes and prefix,
// using the defaults for anything unset. A malformed token still yields
// usable kinds alongside the error.
func (n *NetCtx) ModeKinds() (*data.ModeKinds, error) {
	chanmodes, ok := n.Chanmodes()
	if !ok {
		chanmodes = data.DEFAULT_CHANMODES
	}
	prefix, ok := n.Prefix()
	if !ok {
		prefix = data.DEFAULT_PREFIX
	}
	return data.NewModeKindsCSV(chanmodes, prefix)
}

// NetworkInfo creates the network information a server would advertise with
// the configured values, to be used until the real server's arrives.
func (n *NetCtx) NetworkInfo() *irc.NetworkInfo {
	var tokens []string
	if chanmodes, ok := n.Chanmodes(); ok {
		tokens = append(tokens, irc.INFO_CHANMODES+"="+chanmodes)
	}
	if prefix, ok := n.Prefix(); ok {
		tokens = append(tokens, irc.INFO_PREFIX+"="+prefix)
	}
	maxModes, _ := n.MaxModes()
	lineLength, _ := n.LineLength()
	tokens = append(tokens,
		irc.INFO_MODES+"="+strconv.Itoa(maxModes),
		irc.INFO_LINELEN+"="+strconv.Itoa(lineLength),
	)

	ni := irc.NewNetworkInfo()
	args := append([]string{"config"}, tokens...)
	ni.ParseISupport(irc.NewEvent(n.name, ni, irc.RPL_ISUPPORT, "", args...))
	return ni
}

// channels returns the raw channel maps of this network, falling back to the
// global ones. The caller must hold the lock.
func (n *NetCtx) channels() []map[string]interface{} {
	if chans := mp(n.network).getArr("channels"); chans != nil {
		return chans
	}
	return mp(n.parent).getArr("channels")
}

// Channels returns the contexts of all the channels on this network.
func (n *NetCtx) Channels() []*ChanCtx {
	n.rlock()
	defer n.runlock()

	chans := n.channels()
	ctxs := make([]*ChanCtx, 0, len(chans))
	for _, ch := range chans {
		ctxs = append(ctxs, &ChanCtx{n, ch})
	}
	return ctxs
}

// Channel returns the context of the named channel or nil if it does not
// exist. Names are compared case insensitively.
func (n *NetCtx) Channel(name string) *ChanCtx {
	n.rlock()
	defer n.runlock()

	for _, ch := range n.channels() {
		if chName, ok := ch["name"].(string); ok && strings.EqualFold(chName, name) {
			return &ChanCtx{n, ch}
		}
	}
	return nil
}

// NewChannel adds a channel to this network and returns its context. If it
// already exists the existing channel is returned.
func (n *NetCtx) NewChannel(name string) *ChanCtx {
	if ctx := n.Channel(name); ctx != nil {
		return ctx
	}

	n.lock()
	defer n.unlock()

	ch := map[string]interface{}{"name": name}
	chans := mp(n.network).getArr("channels")
	n.network["channels"] = append(chans, ch)
	return &ChanCtx{n, ch}
}
