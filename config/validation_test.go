package config

import (
	"strings"
	"testing"
)

func TestValidation_Valid(t *testing.T) {
	t.Parallel()

	c, err := FromString(configuration)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if !c.Validate() {
		t.Error("Unexpected errors:", c.Errors())
	}
	if got, exp := len(c.Errors()), 0; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}
}

func TestValidation_Types(t *testing.T) {
	t.Parallel()

	c, err := FromString(`
chanmodes = 5
enforcemodes = "yes"

[networks.ircnet]
	maxmodes = 2.5
	channels = "#chan"

[[networks.efnet.channels]]
	defaultmodes = "+nt"
	key = 12
`)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if c.Validate() {
		t.Fatal("Expected validation to fail.")
	}

	expected := []string{
		"(global) chanmodes is int64",
		"(global) enforcemodes is string",
		"(ircnet) maxmodes is float64",
		"(ircnet) channels is string",
		"(efnet channels) key is int64",
		"(efnet channels) channel 1 requires a name",
	}

	ers := c.Errors()
	if got, exp := len(ers), len(expected); exp != got {
		t.Errorf("Expected: %v, got: %v (%v)", exp, got, ers)
	}
	for _, exp := range expected {
		found := false
		for _, e := range ers {
			if strings.HasPrefix(e.Error(), exp) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected an error like %q in %v", exp, ers)
		}
	}
}

func TestValidation_Values(t *testing.T) {
	t.Parallel()

	c, err := FromString(`
loglevel = "loud"

[networks.ircnet]
	chanmodes = "b,k"
	prefix = "(ov)@"
	maxmodes = -1
	secretmodes = "k+"
`)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if c.Validate() {
		t.Fatal("Expected validation to fail.")
	}

	ers := c.Errors()
	expected := []string{
		`(global) invalid loglevel "loud"`,
		`(ircnet) invalid loglevel "loud"`,
		"malformed mode capability",
		"(ircnet) maxmodes must not be negative",
		`(ircnet) invalid secretmodes "k+"`,
	}
	for _, exp := range expected {
		found := false
		for _, e := range ers {
			if strings.Contains(e.Error(), exp) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected an error like %q in %v", exp, ers)
		}
	}
}

func TestValidation_ClearsErrors(t *testing.T) {
	t.Parallel()

	c := New()
	c.Network("").SetMaxModes(-1)
	if c.Validate() {
		t.Fatal("Expected validation to fail.")
	}

	c.Network("").SetMaxModes(3)
	if !c.Validate() {
		t.Error("Unexpected errors:", c.Errors())
	}
	if got, exp := len(c.Errors()), 0; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}
}
