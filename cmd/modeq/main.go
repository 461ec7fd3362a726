// modeq is a command line tool for working with irc channel modes. It renders
// modestrings, computes the MODE lines that take a channel from one state to
// another, and replays raw irc traffic to show the channel state it leads to.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
