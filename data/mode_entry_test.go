package data

import "testing"

func TestModeEntry_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Entry ModeEntry
		Valid bool
	}{
		{ModeEntry{Mode: 'b', Set: true, Arg: "*!*@host"}, true},
		{ModeEntry{Mode: 'b', Set: false, Arg: "*!*@host"}, true},
		{ModeEntry{Mode: 'b', Set: true}, false},
		{ModeEntry{Mode: 'k', Set: true, Arg: "secret"}, true},
		{ModeEntry{Mode: 'k', Set: false, Arg: "secret"}, true},
		{ModeEntry{Mode: 'k', Set: false}, false},
		{ModeEntry{Mode: 'l', Set: true, Arg: "50"}, true},
		{ModeEntry{Mode: 'l', Set: true}, false},
		{ModeEntry{Mode: 'l', Set: false}, true},
		{ModeEntry{Mode: 'l', Set: false, Arg: "50"}, false},
		{ModeEntry{Mode: 'i', Set: true}, true},
		{ModeEntry{Mode: 'i', Set: true, Arg: "x"}, false},
		{ModeEntry{Mode: 'o', Set: true, Arg: "nick"}, true},
		{ModeEntry{Mode: 'o', Set: true}, false},
		{ModeEntry{Mode: 'x', Set: true}, true},
		{ModeEntry{Mode: 'x', Set: true, Arg: "arg"}, false},
		{ModeEntry{Mode: '+', Set: true}, false},
		{ModeEntry{Mode: ' ', Set: true}, false},
	}

	for _, test := range tests {
		err := test.Entry.Validate(testKinds)
		if test.Valid && err != nil {
			t.Errorf("%v: Unexpected error: %v", test.Entry, err)
		} else if !test.Valid && !IsCause(err, ErrModeParameterMismatch) {
			t.Errorf("%v: Expected a parameter mismatch, got: %v", test.Entry, err)
		}
	}
}

func TestModeEntry_New(t *testing.T) {
	t.Parallel()

	e, err := NewModeEntry(testKinds, 'l', true, "50")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if got, exp := e.String(), "+l 50"; exp != got {
		t.Errorf("Expected: %v, got: %v", exp, got)
	}

	if _, err = NewModeEntry(testKinds, 'l', true, ""); err == nil {
		t.Error("Expected an error.")
	}
}

func TestModeEntry_Inverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Entry ModeEntry
		Exp   ModeEntry
	}{
		{ModeEntry{'b', true, "*!*@host"}, ModeEntry{'b', false, "*!*@host"}},
		{ModeEntry{'k', true, "secret"}, ModeEntry{'k', false, "secret"}},
		{ModeEntry{'l', true, "50"}, ModeEntry{'l', false, ""}},
		{ModeEntry{'i', true, ""}, ModeEntry{'i', false, ""}},
		{ModeEntry{'i', false, ""}, ModeEntry{'i', true, ""}},
	}

	for _, test := range tests {
		if got := test.Entry.Inverse(testKinds); got != test.Exp {
			t.Errorf("Expected: %v, got: %v", test.Exp, got)
		}
	}
}

func TestModeEntry_MemberStatus(t *testing.T) {
	t.Parallel()

	if !(ModeEntry{'v', true, "nick"}).IsMemberStatusChange(testKinds) {
		t.Error("v should be a member status change.")
	}
	if (ModeEntry{'b', true, "*!*@*"}).IsMemberStatusChange(testKinds) {
		t.Error("b should not be a member status change.")
	}
}
