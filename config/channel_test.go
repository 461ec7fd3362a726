package config

import "testing"

func TestChanCtx_Fallback(t *testing.T) {
	t.Parallel()

	c, err := FromString(configuration)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	ch1 := c.Channel("ircnet", "#channel1")
	ch2 := c.Channel("ircnet", "#channel2")
	if ch1 == nil || ch2 == nil {
		t.Fatal("Expected the channels to be found.")
	}

	if got, exp := ch1.Name(), "#channel1"; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}
	if val, _ := ch1.DefaultModes(); val != "+nt" {
		t.Errorf("Expected: %v, got: %v", "+nt", val)
	}
	if val, ok := ch1.Key(); !ok || val != "hunter2" {
		t.Errorf("Expected: %v, got: %v", "hunter2", val)
	}
	if _, ok := ch2.Key(); ok {
		t.Error("Keys should never fall back.")
	}
	if got, exp := ch1.Network().Name(), "ircnet"; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}

	ch2.SetDefaultModes("+m")
	if val, _ := ch2.DefaultModes(); val != "+m" {
		t.Errorf("Expected: %v, got: %v", "+m", val)
	}
}

func TestChanCtx_Enforce(t *testing.T) {
	t.Parallel()

	c, err := FromString(configuration)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	ch1 := c.Channel("ircnet", "#channel1")
	ch2 := c.Channel("ircnet", "#channel2")

	if got, exp := ch1.EnforceModes(), Inherit; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}
	if !ch1.Enforce() {
		t.Error("Expected enforcement inherited from the network.")
	}

	if got, exp := ch2.EnforceModes(), Disabled; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}
	if ch2.Enforce() {
		t.Error("The channel disables enforcement.")
	}

	ch2.SetEnforceModes(Inherit)
	if !ch2.Enforce() {
		t.Error("Expected enforcement inherited from the network.")
	}

	c.Network("ircnet").SetEnforceModes(Inherit)
	if ch1.Enforce() {
		t.Error("Expected the global setting.")
	}

	c.Network("").SetEnforceModes(Enabled)
	if !ch1.Enforce() {
		t.Error("Expected the global setting.")
	}
}

func TestChanCtx_EnforceDefaultsOff(t *testing.T) {
	t.Parallel()

	c := New()
	ch := c.NewNetwork("net").NewChannel("#chan")
	if ch.Enforce() {
		t.Error("Enforcement should be off by default.")
	}
	ch.SetEnforceModes(Enabled)
	if !ch.Enforce() {
		t.Error("Expected enforcement.")
	}
}

func TestTristate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		State  Tristate
		Parent bool
		Exp    bool
		Str    string
	}{
		{Inherit, true, true, "inherit"},
		{Inherit, false, false, "inherit"},
		{Enabled, false, true, "enabled"},
		{Disabled, true, false, "disabled"},
	}

	for _, test := range tests {
		if got := test.State.Resolve(test.Parent); got != test.Exp {
			t.Errorf("%v: Expected: %v, got: %v", test.State, test.Exp, got)
		}
		if got := test.State.String(); got != test.Str {
			t.Errorf("Expected: %v, got: %v", test.Str, got)
		}
	}

	if TristateOf(true) != Enabled || TristateOf(false) != Disabled {
		t.Error("TristateOf is wrong.")
	}
}
