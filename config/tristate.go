package config

// Tristate is a setting that is explicitly on, explicitly off, or left to be
// inherited from an enclosing scope.
type Tristate int

// These are the states of a Tristate, the zero value inherits.
const (
	Inherit Tristate = iota
	Enabled
	Disabled
)

// TristateOf converts an explicit bool.
func TristateOf(b bool) Tristate {
	if b {
		return Enabled
	}
	return Disabled
}

// Resolve returns the explicit value, or parent if t inherits.
func (t Tristate) Resolve(parent bool) bool {
	switch t {
	case Enabled:
		return true
	case Disabled:
		return false
	}
	return parent
}

func (t Tristate) String() string {
	switch t {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	}
	return "inherit"
}

// getTristate gets a bool out of a map as a Tristate, never falling back.
func getTristate(m mapGetter, key string) Tristate {
	val, ok := getBool(m, key, false)
	if !ok {
		return Inherit
	}
	return TristateOf(val)
}
