package main

import (
	"fmt"
	"io"

	"github.com/aarondl/modeq/data"
	"github.com/aarondl/modeq/irc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDiffCmd(a *app) *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "diff <current> [desired]",
		Short: "Print the MODE lines that turn the current modes into the desired ones",
		Long: `Print the MODE lines that turn the current modes into the desired ones.

Both are quoted modestrings such as "+ntk key". When desired is omitted the
channel's defaultmodes and key from the config file are used.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch := data.NewChannel(channel, a.kinds, data.ChannelOptions{
				NetworkInfo: a.ni,
				Logger:      a.logger,
			})
			if err := ch.ApplyModestring(args[0]); err != nil {
				a.logger.Warn("current modes have invalid changes", "err", err)
			}

			desired, err := a.desired(ch, args[1:])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.unmasked {
				err = ch.SendChanges(irc.Helper{Writer: lineWriter{out}}, desired)
				if err != nil && !data.IsCause(err, data.ErrParameterTooLong) {
					return err
				}
				return nil
			}

			commands, _ := ch.ChangeCommands(desired)
			a.printCommands(out, ch, commands)
			return nil
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "#channel", "channel the MODE lines target")
	return cmd
}

// printCommands prints MODE lines for display with their secrets masked.
func (a *app) printCommands(out io.Writer, ch *data.Channel, commands []string) {
	for _, command := range commands {
		entries, _ := data.ParseModestring(ch.Kinds(), command)
		fmt.Fprintf(out, "%s %s %s\n", irc.MODE, ch.Name(),
			data.RenderEntries(entries, a.secrets...))
	}
}

// desired parses the desired modes given on the command line or builds them
// from the channel's config.
func (a *app) desired(ch *data.Channel, args []string) (data.ModeSet, error) {
	if len(args) > 0 {
		set, err := data.ParseModeSet(a.kinds, args[0])
		if err != nil {
			a.logger.Warn("desired modes have invalid changes", "err", err)
		}
		return set, nil
	}

	chCfg := a.net.Channel(ch.Name())
	if chCfg == nil {
		return data.ModeSet{}, errors.Errorf(
			"no desired modes given and %s is not in the config", ch.Name())
	}

	defaults, _ := chCfg.DefaultModes()
	key, _ := chCfg.Key()
	desired, err := ch.DesiredModes(defaults, key)
	if err != nil {
		a.logger.Warn("configured modes have invalid changes",
			"channel", ch.Name(), "err", err)
	}
	return desired, nil
}

// lineWriter ends every write with a newline.
type lineWriter struct {
	w io.Writer
}

func (l lineWriter) Write(b []byte) (int, error) {
	line := make([]byte, len(b)+1)
	copy(line, b)
	line[len(b)] = '\n'

	n, err := l.w.Write(line)
	if n > len(b) {
		n = len(b)
	}
	return n, err
}
