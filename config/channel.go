package config

// ChanCtx is a context for a single channel, values not set on the channel
// fall back to its network and then the global scope.
type ChanCtx struct {
	net     *NetCtx
	channel map[string]interface{}
}

func (c *ChanCtx) lock()    { c.net.lock() }
func (c *ChanCtx) unlock()  { c.net.unlock() }
func (c *ChanCtx) rlock()   { c.net.rlock() }
func (c *ChanCtx) runlock() { c.net.runlock() }

func (c *ChanCtx) get(key string) (interface{}, bool) {
	v, ok := c.channel[key]
	return v, ok
}

func (c *ChanCtx) getParent(key string) (interface{}, bool) {
	if v, ok := c.net.get(key); ok {
		return v, true
	}
	return c.net.getParent(key)
}

func (c *ChanCtx) set(key string, value interface{}) {
	c.channel[key] = value
}

// Network returns the context of the network the channel is on.
func (c *ChanCtx) Network() *NetCtx {
	return c.net
}

func (c *ChanCtx) Name() string {
	name, _ := getStr(c, "name", false)
	return name
}

func (c *ChanCtx) DefaultModes() (string, bool) {
	return getStr(c, "defaultmodes", true)
}

func (c *ChanCtx) SetDefaultModes(val string) {
	setVal(c, "defaultmodes", val)
}

// Key is the channel key, it never falls back since keys are per channel.
func (c *ChanCtx) Key() (string, bool) {
	return getStr(c, "key", false)
}

func (c *ChanCtx) SetKey(val string) {
	setVal(c, "key", val)
}

// EnforceModes is the channel's own enforcemodes setting.
func (c *ChanCtx) EnforceModes() Tristate {
	return getTristate(c, "enforcemodes")
}

func (c *ChanCtx) SetEnforceModes(val Tristate) {
	c.lock()
	defer c.unlock()

	if val == Inherit {
		delete(c.channel, "enforcemodes")
		return
	}
	c.channel["enforcemodes"] = val == Enabled
}

// Enforce resolves enforcemodes from the channel, its network, then the
// global scope. It is off if nothing sets it.
func (c *ChanCtx) Enforce() bool {
	global := Inherit
	if c.net.parent != nil {
		global = getTristate(&NetCtx{mutex: c.net.mutex, network: c.net.parent},
			"enforcemodes")
	}
	return c.EnforceModes().Resolve(
		c.net.EnforceModes().Resolve(global.Resolve(false)))
}
