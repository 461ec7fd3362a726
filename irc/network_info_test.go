package irc

import (
	"strings"
	"testing"
)

var (
	netID = "irc.gamesurge.net"

	_s0 = `NICK irc.test.net testircd-1.2 acCior abcde`

	_s1 = `NICK IRCD=gIRCd CASEMAPPING=scii PREFIX=(v)+ ` +
		`CHANTYPES=#& CHANMODES=a,b,c,d`

	_s2 = `NICK MODES=4 LINELEN=1024 MAXLIST=beI:49,q:10 EXCEPTS=e ` +
		`INVEX=I PENALTY`

	capsTest0 = &Event{
		Name:   RPL_MYINFO,
		Args:   strings.Split(_s0, " "),
		Sender: netID,
	}
	capsTest1 = &Event{
		Name:   RPL_ISUPPORT,
		Args:   append(strings.Split(_s1, " "), "are supported by this server"),
		Sender: netID,
	}
	capsTest2 = &Event{
		Name:   RPL_ISUPPORT,
		Args:   append(strings.Split(_s2, " "), "are supported by this server"),
		Sender: netID,
	}
)

func TestNetworkInfo_Defaults(t *testing.T) {
	t.Parallel()
	p := NewNetworkInfo()

	if exp, val := INFO_DEFAULT_CHANMODES, p.Chanmodes(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := INFO_DEFAULT_PREFIX, p.Prefix(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := INFO_DEFAULT_MODES, p.Modes(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := INFO_DEFAULT_LINELEN, p.Linelen(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := 0, p.MaxList('b'); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
}

func TestNetworkInfo_Parse(t *testing.T) {
	t.Parallel()
	p := NewNetworkInfo()

	p.ParseMyInfo(capsTest0)
	p.ParseISupport(capsTest1)
	p.ParseISupport(capsTest2)

	if exp, val := "irc.test.net", p.ServerName(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := "testircd-1.2", p.IrcdVersion(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := "abcde", p.LegacyChanmodes(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := "scii", p.Casemapping(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := "(v)+", p.Prefix(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := "#&", p.Chantypes(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := "a,b,c,d", p.Chanmodes(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := 4, p.Modes(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := 1024, p.Linelen(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := 49, p.MaxList('I'); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := 10, p.MaxList('q'); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := "gIRCd", p.Extra("IRCD"); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := "e", p.Extra("EXCEPTS"); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := "true", p.Extra("PENALTY"); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
}

func TestNetworkInfo_ModesUnlimited(t *testing.T) {
	t.Parallel()
	p := NewNetworkInfo()
	p.ParseISupport(NewEvent(netID, p, RPL_ISUPPORT, netID,
		"nick", "MODES", "are supported by this server"))

	if exp, val := 0, p.Modes(); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
}

func TestNetworkInfo_Clone(t *testing.T) {
	t.Parallel()
	p := NewNetworkInfo()
	p.ParseISupport(capsTest2)

	clone := p.Clone()
	p.ParseISupport(NewEvent(netID, p, RPL_ISUPPORT, netID,
		"nick", "MAXLIST=b:5", "FOO=bar"))

	if exp, val := 49, clone.MaxList('b'); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
	if exp, val := "", clone.Extra("FOO"); val != exp {
		t.Error("Unexpected:", val, "should be:", exp)
	}
}

func TestNetworkInfo_IsChannel(t *testing.T) {
	t.Parallel()
	p := NewNetworkInfo()

	if !p.IsChannel("#chan") {
		t.Error("Expected #chan to be a channel.")
	}
	if p.IsChannel("nick") {
		t.Error("Expected nick not to be a channel.")
	}
	if p.IsChannel("") {
		t.Error("Expected empty string not to be a channel.")
	}
}
