package config

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/inconshreveable/log15.v2"
)

// validatorRules is used internally to validate a map.
type validatorRules struct {
	stringVals []string
	boolVals   []string
	intVals    []string
	mapVals    []string
	mapArrVals []string
}

var globalValidator = validatorRules{
	mapVals: []string{"networks"},
}

var networkValidator = validatorRules{
	stringVals: []string{"chanmodes", "prefix", "secretmodes", "loglevel"},
	boolVals:   []string{"enforcemodes"},
	intVals:    []string{"maxmodes", "linelength"},
	mapArrVals: []string{"channels"},
}

var channelValidator = validatorRules{
	stringVals: []string{"name", "defaultmodes", "key"},
	boolVals:   []string{"enforcemodes"},
}

// errList is an array of errors.
type errList []error

// addError builds an error object and appends it to this instances errors.
func (l *errList) addError(format string, args ...interface{}) {
	*l = append(*l, errors.Errorf(format, args...))
}

// Errors returns the errors encountered during validation.
func (c *Config) Errors() []error {
	c.protect.RLock()
	defer c.protect.RUnlock()

	ers := make([]error, len(c.errors))
	copy(ers, c.errors)
	return ers
}

// Validate checks to see if the configuration is valid. If errors are found in
// the config the Config.Errors() will return the validation errors.
// These can be used to display to the user. See DisplayErrors for a display
// helper.
func (c *Config) Validate() bool {
	ers := make(errList, 0)

	c.protect.RLock()
	c.validateTypes(&ers)
	c.protect.RUnlock()

	if len(ers) == 0 {
		c.validateValues(&ers)
	}

	c.protect.Lock()
	c.errors = ers
	c.protect.Unlock()

	return len(ers) == 0
}

// validateTypes checks the types of all of the map's objects.
func (c *Config) validateTypes(ers *errList) {
	globalValidator.validateMap("global", c.values, ers)
	networkValidator.validateMap("global", c.values, ers)
	validateChannels("global", c.values, ers)

	nets := c.values.get("networks")
	for name, netVal := range nets {
		net := intfToMp(netVal)
		if net == nil {
			ers.addError("(global networks) %s is %T but expected map [%v]",
				name, netVal, netVal)
			continue
		}

		networkValidator.validateMap(name, net, ers)
		validateChannels(name, net, ers)
	}
}

func validateChannels(name string, m mp, ers *errList) {
	for i, ch := range m.getArr("channels") {
		channelValidator.validateMap(name+" channels", ch, ers)
		if chName, ok := ch["name"].(string); !ok || len(chName) == 0 {
			ers.addError("(%s channels) channel %d requires a name", name, i+1)
		}
	}
}

// validateValues checks the values that have a syntax of their own.
func (c *Config) validateValues(ers *errList) {
	scopes := append([]string{""}, c.Networks()...)

	for _, name := range scopes {
		ctx := c.Network(name)
		scope := name
		if len(scope) == 0 {
			scope = "global"
		}

		if _, err := ctx.ModeKinds(); err != nil {
			ers.addError("(%s) %v", scope, err)
		}

		if lvl, ok := ctx.LogLevel(); ok {
			if _, err := log15.LvlFromString(strings.ToLower(lvl)); err != nil {
				ers.addError("(%s) invalid loglevel %q", scope, lvl)
			}
		}

		if n, ok := ctx.MaxModes(); ok && n < 0 {
			ers.addError("(%s) maxmodes must not be negative, given: %d",
				scope, n)
		}
		if n, ok := ctx.LineLength(); ok && n < 0 {
			ers.addError("(%s) linelength must not be negative, given: %d",
				scope, n)
		}

		if secrets, ok := ctx.SecretModes(); ok &&
			strings.ContainsAny(secrets, "+-, ") {
			ers.addError("(%s) invalid secretmodes %q", scope, secrets)
		}
	}
}

func (v validatorRules) validateMap(name string,
	m map[string]interface{}, ers *errList) {

	addErr := func(name, key, kind string, val interface{}) {
		ers.addError("(%s) %s is %T but expected %s [%v]",
			name, key, val, kind, val)
	}

	for _, key := range v.stringVals {
		if val, ok := m[key]; !ok {
			continue
		} else if _, ok = val.(string); !ok {
			addErr(name, key, "string", val)
		}
	}
	for _, key := range v.boolVals {
		if val, ok := m[key]; !ok {
			continue
		} else if _, ok = val.(bool); !ok {
			addErr(name, key, "bool", val)
		}
	}
	for _, key := range v.intVals {
		val, ok := m[key]
		if !ok {
			continue
		}
		switch val.(type) {
		case int64, int:
		default:
			addErr(name, key, "int", val)
		}
	}
	for _, key := range v.mapVals {
		if val, ok := m[key]; !ok {
			continue
		} else if intfToMp(val) == nil {
			addErr(name, key, "map", val)
		}
	}
	for _, key := range v.mapArrVals {
		if val, ok := m[key]; !ok {
			continue
		} else if _, ok = val.([]map[string]interface{}); !ok {
			addErr(name, key, "map array", val)
		}
	}
}
