package data

import (
	"reflect"
	"testing"

	"github.com/aarondl/modeq/irc"
)

func TestModeSet_Apply(t *testing.T) {
	t.Parallel()

	s := NewModeSet(testKinds)
	s, err := s.Apply(ModeEntry{Mode: 'l', Set: true, Arg: "50"})
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	if arg, ok := s.Arg('l'); !ok || arg != "50" {
		t.Errorf("Expected: 50, got: %v (%v)", arg, ok)
	}

	s, _ = s.Apply(ModeEntry{Mode: 'l', Set: true, Arg: "60"})
	if arg, _ := s.Arg('l'); arg != "60" {
		t.Errorf("Expected: 60, got: %v", arg)
	}
	if got, exp := s.Len(), 1; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}

	s, _ = s.Apply(ModeEntry{Mode: 'l', Set: false})
	if s.IsSet('l') {
		t.Error("Expected l to be unset.")
	}
}

func TestModeSet_Immutable(t *testing.T) {
	t.Parallel()

	before := NewModeSet(testKinds)
	before, _ = before.Apply(ModeEntry{Mode: 'i', Set: true})

	after, _ := before.Apply(ModeEntry{Mode: 'n', Set: true})
	after, _ = after.Apply(ModeEntry{Mode: 'i', Set: false})

	if !before.IsSet('i') || before.IsSet('n') {
		t.Error("The original snapshot was changed.")
	}
	if after.IsSet('i') || !after.IsSet('n') {
		t.Error("The new snapshot is wrong:", after.RenderUnmasked())
	}

	entries := after.Entries()
	entries[0].Mode = 'z'
	if after.IsSet('z') {
		t.Error("Entries should return a copy.")
	}
}

func TestModeSet_ListIdempotence(t *testing.T) {
	t.Parallel()

	ban := ModeEntry{Mode: 'b', Set: true, Arg: "*!*@host"}
	s, err := NewModeSet(testKinds).ApplyAll(ban, ban)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if got, exp := len(s.List('b')), 1; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}

	s, _ = s.Apply(ModeEntry{Mode: 'b', Set: true, Arg: "*!*@other"})
	if got, exp := s.List('b'), []string{"*!*@host", "*!*@other"}; !reflect.DeepEqual(exp, got) {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}

	unchanged, err := s.Apply(ModeEntry{Mode: 'b', Set: false, Arg: "*!*@HOST"})
	if err != nil {
		t.Error("Unexpected error:", err)
	}
	if !unchanged.Equal(s) {
		t.Error("Unsetting a missing address should be a no-op.")
	}

	s, _ = s.Apply(ModeEntry{Mode: 'b', Set: false, Arg: "*!*@host"})
	if got, exp := s.List('b'), []string{"*!*@other"}; !reflect.DeepEqual(exp, got) {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}
}

func TestModeSet_ScalarUnsetIgnoresArg(t *testing.T) {
	t.Parallel()

	s, _ := NewModeSet(testKinds).Apply(ModeEntry{Mode: 'k', Set: true, Arg: "secret"})
	s, err := s.Apply(ModeEntry{Mode: 'k', Set: false, Arg: "wrong"})
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if s.IsSet('k') {
		t.Error("Expected k to be unset.")
	}
}

func TestModeSet_MemberStatusIgnored(t *testing.T) {
	t.Parallel()

	s, err := NewModeSet(testKinds).Apply(ModeEntry{Mode: 'o', Set: true, Arg: "nick"})
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if got, exp := s.Len(), 0; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}
}

func TestModeSet_ApplyAllContinues(t *testing.T) {
	t.Parallel()

	s, err := NewModeSet(testKinds).ApplyAll(
		ModeEntry{Mode: 'i', Set: true},
		ModeEntry{Mode: 'l', Set: true},
		ModeEntry{Mode: 'k', Set: true},
		ModeEntry{Mode: 'n', Set: true},
	)

	list, ok := err.(ModeErrors)
	if !ok {
		t.Fatalf("Expected ModeErrors, got: %T", err)
	}
	if got, exp := len(list), 2; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}
	if !s.IsSet('i') || !s.IsSet('n') {
		t.Error("Valid entries should still be applied.")
	}
	if s.IsSet('l') || s.IsSet('k') {
		t.Error("Invalid entries should not be applied.")
	}
}

func TestModeSet_Matches(t *testing.T) {
	t.Parallel()

	s, err := ParseModeSet(testKinds, "+bb *!*@host.com nick!*@*")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	matched := s.Matches('b', irc.Mask("Nick!user@other.net"))
	if got, exp := matched, []string{"nick!*@*"}; !reflect.DeepEqual(exp, got) {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}

	if got := s.Matches('b', irc.Mask("x!y@z")); len(got) != 0 {
		t.Error("Expected no matches, got:", got)
	}
}

func TestModeSet_Clear(t *testing.T) {
	t.Parallel()

	s, _ := ParseModeSet(testKinds, "+bbi *!*@a *!*@b")
	cleared, err := s.ApplyAll(s.Clear('b')...)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if cleared.IsSet('b') || !cleared.IsSet('i') {
		t.Error("Expected only b to be cleared:", cleared.RenderUnmasked())
	}
}

func TestModeSet_Equal(t *testing.T) {
	t.Parallel()

	a, _ := ParseModeSet(testKinds, "+ikl key 10")
	b, _ := ParseModeSet(testKinds, "+lki 10 key")
	if !a.Equal(b) {
		t.Error("Order should not matter.")
	}

	c, _ := ParseModeSet(testKinds, "+ikl other 10")
	if a.Equal(c) {
		t.Error("Different keys should not be equal.")
	}
}

func TestParseModes(t *testing.T) {
	t.Parallel()

	entries, err := ParseModestring(testKinds, "+bl-k+o-v *!*@host 50 key nick1 nick2")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	exp := []ModeEntry{
		{'b', true, "*!*@host"},
		{'l', true, "50"},
		{'k', false, "key"},
		{'o', true, "nick1"},
		{'v', false, "nick2"},
	}
	if !reflect.DeepEqual(exp, entries) {
		t.Errorf("Expected: %v, got: %v", exp, entries)
	}

	entries, err = ParseModestring(testKinds, "nt-l")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	exp = []ModeEntry{{'n', true, ""}, {'t', true, ""}, {'l', false, ""}}
	if !reflect.DeepEqual(exp, entries) {
		t.Errorf("Expected: %v, got: %v", exp, entries)
	}

	if entries, err = ParseModestring(testKinds, ""); entries != nil || err != nil {
		t.Error("Expected nothing from an empty modestring.")
	}
}

func TestParseModes_Mismatch(t *testing.T) {
	t.Parallel()

	entries, err := ParseModestring(testKinds, "+ibk *!*@host")
	if !IsCause(err, ErrModeParameterMismatch) {
		t.Error("Expected a mismatch, got:", err)
	}
	if got, exp := len(entries), 2; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}

	entries, err = ParseModestring(testKinds, "+i extra")
	if !IsCause(err, ErrModeParameterMismatch) {
		t.Error("Expected a mismatch, got:", err)
	}
	if got, exp := len(entries), 1; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}
}

func TestParseModes_UnknownTakesNoArg(t *testing.T) {
	t.Parallel()

	entries, err := ParseModestring(testKinds, "+xl 5")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if got, exp := entries[1].Arg, "5"; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}
}
