/*
Package config creates a configuration for channel mode handling using toml,
or yaml for files ending in .yaml or .yml.

An example configuration looks like this:
	# Anything defined here provides fallback defaults for all networks and
	# their channels.
	loglevel = "info"

	# Used until the server advertises its own in RPL_ISUPPORT.
	chanmodes = "beI,k,l,imnpst"
	prefix = "(ov)@+"
	maxmodes = 3
	linelength = 512

	# Modes whose parameters are masked in logs and output.
	secretmodes = "k"

	enforcemodes = false

	[networks.ircnet]
		chanmodes = "beIq,k,fl,imnpstz"
		maxmodes = 4

		# Enforce the default modes on all channels of this network unless
		# the channel says otherwise.
		enforcemodes = true

		[[networks.ircnet.channels]]
			name = "#channel1"
			defaultmodes = "+nt"
			key = "hunter2"
		[[networks.ircnet.channels]]
			name = "#channel2"
			defaultmodes = "+ntsi"
			enforcemodes = false

Once again note the fallback mechanisms between channel, network and the
"global scope". This can save you lots of repetitive typing.
*/
package config

import (
	"sort"
	"strings"
	"sync"

	"gopkg.in/inconshreveable/log15.v2"
)

const (
	// defaultMaxModes is how many modes fit a single MODE line when neither
	// the config nor the server say otherwise.
	defaultMaxModes = 3
	// defaultLineLength is the irc line length including the crlf.
	defaultLineLength = 512
	// defaultSecretModes are the modes masked for display.
	defaultSecretModes = "k"
	// defaultLogLevel is the log level when none is configured.
	defaultLogLevel = "info"
)

// Config holds all the information related to mode handling including global
// settings, network specific settings and channel specific settings.
type Config struct {
	values mp

	errors   errList
	filename string
	protect  sync.RWMutex
}

// New initializes a Config object.
func New() *Config {
	c := &Config{}
	c.clear()

	return c
}

// Clear re-initializes all memory in the configuration.
func (c *Config) Clear() {
	c.protect.Lock()
	defer c.protect.Unlock()

	c.clear()
}

// clear re-initializes all memory in the configuration without locking first.
func (c *Config) clear() {
	c.values = make(mp)
	c.errors = nil
	c.filename = ""
}

// Filename returns the name of the file this config was loaded from, if any.
func (c *Config) Filename() string {
	c.protect.RLock()
	defer c.protect.RUnlock()

	return c.filename
}

// Network returns the network context useable to get/set the fields for that.
// Leave name blank to return the global network context. Returns nil if the
// network does not exist.
func (c *Config) Network(name string) *NetCtx {
	c.protect.RLock()
	defer c.protect.RUnlock()

	if len(name) == 0 {
		return &NetCtx{&c.protect, "", nil, c.values}
	}

	net := c.values.get("networks").get(name)
	if net == nil {
		return nil
	}
	return &NetCtx{&c.protect, name, c.values, net}
}

// NewNetwork creates a network and returns its context. If it already exists
// the existing network is returned.
func (c *Config) NewNetwork(name string) *NetCtx {
	if ctx := c.Network(name); ctx != nil {
		return ctx
	}

	c.protect.Lock()
	defer c.protect.Unlock()

	nets := c.values.get("networks")
	if nets == nil {
		nets = make(mp)
		c.values["networks"] = map[string]interface{}(nets)
	}

	net := make(map[string]interface{})
	nets[name] = net
	return &NetCtx{&c.protect, name, c.values, net}
}

// Networks returns the names of all the networks in sorted order.
func (c *Config) Networks() []string {
	c.protect.RLock()
	defer c.protect.RUnlock()

	nets := c.values.get("networks")
	names := make([]string, 0, len(nets))
	for name := range nets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Channel is a shortcut for Network(network).Channel(channel). Returns nil if
// either does not exist.
func (c *Config) Channel(network, channel string) *ChanCtx {
	net := c.Network(network)
	if net == nil {
		return nil
	}
	return net.Channel(channel)
}

// LogLevel gets the global log level or the default.
func (c *Config) LogLevel() log15.Lvl {
	str, ok := c.Network("").LogLevel()
	if !ok {
		str = defaultLogLevel
	}

	lvl, err := log15.LvlFromString(strings.ToLower(str))
	if err != nil {
		return log15.LvlInfo
	}
	return lvl
}

// DisplayErrors is a helper function to log the output of all config errors
// to the given logger.
func (c *Config) DisplayErrors(logger log15.Logger) {
	c.protect.RLock()
	defer c.protect.RUnlock()

	for _, e := range c.errors {
		logger.Error("config error", "file", c.filename, "err", e)
	}
}
