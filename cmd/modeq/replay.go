package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/aarondl/modeq/data"
	"github.com/aarondl/modeq/irc"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/inconshreveable/log15.v2"
)

func newReplayCmd(a *app) *cobra.Command {
	var nick string
	var enforce, showMetrics bool

	cmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "Apply raw irc lines to channels and print the modes they end with",
		Long: `Apply raw irc lines to channels and print the modes they end with.

Lines are read from the file given, or stdin. RPL_ISUPPORT lines update the
mode kinds of channels seen after them. MODE, RPL_CHANNELMODEIS and the ban,
exception and invite list numerics change the channel modes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "failed to open replay file")
				}
				defer file.Close()
				in = file
			}

			reg := prometheus.NewRegistry()
			r := newReplayer(a, nick, data.NewMetrics(reg))
			if err := r.run(in); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r.print(out)
			if enforce {
				r.enforce(out)
			}
			if showMetrics {
				return printMetrics(out, reg)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&nick, "nick", "", "our nick, channels are reset when it parts")
	flags.BoolVar(&enforce, "enforce", false, "print the MODE lines that enforce the configured modes")
	flags.BoolVar(&showMetrics, "metrics", false, "print the counters after replaying")
	return cmd
}

// replayer feeds events to the channels they target.
type replayer struct {
	*app
	nick     string
	ni       *irc.NetworkInfo
	metrics  *data.Metrics
	members  data.MemberTracker
	channels map[string]*data.Channel
}

func newReplayer(a *app, nick string, metrics *data.Metrics) *replayer {
	return &replayer{
		app:      a,
		nick:     nick,
		ni:       a.ni.Clone(),
		metrics:  metrics,
		members:  memberLog{a.logger},
		channels: make(map[string]*data.Channel),
	}
}

func (r *replayer) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		ev, err := irc.ParseEvent(r.net.Name(), r.ni, line)
		if err != nil {
			r.logger.Warn("skipping line", "line", n, "err", err)
			continue
		}
		r.handle(ev)
	}

	return errors.Wrap(scanner.Err(), "failed to read replay input")
}

func (r *replayer) handle(ev *irc.Event) {
	switch ev.Name {
	case irc.RPL_ISUPPORT:
		r.ni.ParseISupport(ev)
		return
	case irc.RPL_MYINFO:
		r.ni.ParseMyInfo(ev)
		return
	case irc.PART:
		if len(r.nick) > 0 && len(ev.Args) > 0 &&
			strings.EqualFold(ev.Nick(), r.nick) {
			if ch, ok := r.channels[strings.ToLower(ev.Args[0])]; ok {
				ch.Reset()
			}
		}
		return
	}

	target := eventChannel(ev)
	if len(target) == 0 || !r.ni.IsChannel(target) {
		return
	}

	// Channel logs what it rejects.
	_ = r.channel(target).Update(ev)
}

// eventChannel returns the channel an event changes the modes of, if any.
func eventChannel(ev *irc.Event) string {
	switch ev.Name {
	case irc.MODE:
		if len(ev.Args) > 0 {
			return ev.Args[0]
		}
	case irc.RPL_CHANNELMODEIS,
		irc.RPL_BANLIST, irc.RPL_ENDOFBANLIST,
		irc.RPL_EXCEPTLIST, irc.RPL_ENDOFEXCEPTLIST,
		irc.RPL_INVITELIST, irc.RPL_ENDOFINVITELIST:
		if len(ev.Args) > 1 {
			return ev.Args[1]
		}
	}
	return ""
}

// channel gets a channel, creating it with the mode kinds known right now.
func (r *replayer) channel(name string) *data.Channel {
	key := strings.ToLower(name)
	if ch, ok := r.channels[key]; ok {
		return ch
	}

	ch := data.NewChannel(name, nil, data.ChannelOptions{
		NetworkInfo: r.ni,
		Members:     r.members,
		Logger:      r.logger,
		Metrics:     r.metrics,
	})
	r.channels[key] = ch
	return ch
}

func (r *replayer) sorted() []*data.Channel {
	chans := make([]*data.Channel, 0, len(r.channels))
	for _, ch := range r.channels {
		chans = append(chans, ch)
	}
	sort.Slice(chans, func(i, j int) bool {
		return strings.ToLower(chans[i].Name()) < strings.ToLower(chans[j].Name())
	})
	return chans
}

func (r *replayer) print(out io.Writer) {
	for _, ch := range r.sorted() {
		fmt.Fprintf(out, "%s %s\n", ch.Name(), r.render(ch.Modes()))
	}
}

// enforce prints the MODE lines that bring every configured channel with
// enforcemodes on to its default modes and key.
func (r *replayer) enforce(out io.Writer) {
	for _, chCfg := range r.net.Channels() {
		if !chCfg.Enforce() {
			continue
		}

		ch := r.channel(chCfg.Name())
		defaults, _ := chCfg.DefaultModes()
		key, _ := chCfg.Key()

		desired, err := ch.DesiredModes(defaults, key)
		if err != nil {
			r.logger.Warn("configured modes have invalid changes",
				"channel", ch.Name(), "err", err)
		}

		commands, _ := ch.ChangeCommands(desired)
		r.printCommands(out, ch, commands)
	}
}

func printMetrics(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}

	for _, family := range families {
		for _, m := range family.GetMetric() {
			name := family.GetName()

			var labels []string
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}

			fmt.Fprintf(out, "%s %v\n", name, m.GetCounter().GetValue())
		}
	}
	return nil
}

// memberLog logs member status changes, replay has no members to track.
type memberLog struct {
	logger log15.Logger
}

func (m memberLog) MemberModeChange(channel, nick string, mode rune, set bool) {
	sign := "-"
	if set {
		sign = "+"
	}
	m.logger.Info("member mode", "channel", channel, "nick", nick,
		"mode", sign+string(mode))
}
