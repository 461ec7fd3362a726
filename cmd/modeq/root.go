package main

import (
	"strings"

	"github.com/aarondl/modeq/config"
	"github.com/aarondl/modeq/data"
	"github.com/aarondl/modeq/irc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/inconshreveable/log15.v2"
)

// app holds the flags shared by all commands and what is built from them
// before any command runs.
type app struct {
	configFile string
	network    string
	chanmodes  string
	prefix     string
	maxModes   int
	lineLength int
	logLevel   string
	unmasked   bool

	cfg     *config.Config
	net     *config.NetCtx
	ni      *irc.NetworkInfo
	kinds   *data.ModeKinds
	secrets []rune
	logger  log15.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "modeq",
		Short:        "Inspect, diff and replay irc channel modes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "toml or yaml config file")
	flags.StringVarP(&a.network, "network", "n", "", "network in the config file to use")
	flags.StringVar(&a.chanmodes, "chanmodes", "", "CHANMODES token, overrides the config")
	flags.StringVar(&a.prefix, "prefix", "", "PREFIX token, overrides the config")
	flags.IntVar(&a.maxModes, "maxmodes", 0, "modes per MODE line, overrides the config")
	flags.IntVar(&a.lineLength, "linelength", 0, "irc line length, overrides the config")
	flags.StringVar(&a.logLevel, "loglevel", "", "log level: debug, info, warn, error, crit")
	flags.BoolVar(&a.unmasked, "unmasked", false, "show secret parameters such as the channel key")

	root.AddCommand(
		newRenderCmd(a),
		newDiffCmd(a),
		newReplayCmd(a),
	)

	return root
}

// setup loads the config, applies the flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = log15.New()
	a.setLogLevel(cmd, log15.LvlInfo)

	a.cfg = config.New()
	if len(a.configFile) > 0 {
		cfg, err := config.FromFile(a.configFile)
		if err != nil {
			return err
		}
		if !cfg.Validate() {
			cfg.DisplayErrors(a.logger)
			return errors.Errorf("invalid config file: %s", a.configFile)
		}
		a.cfg = cfg
	}

	if len(a.logLevel) > 0 {
		lvl, err := log15.LvlFromString(strings.ToLower(a.logLevel))
		if err != nil {
			return errors.Errorf("invalid log level: %s", a.logLevel)
		}
		a.setLogLevel(cmd, lvl)
	} else {
		a.setLogLevel(cmd, a.cfg.LogLevel())
	}

	a.net = a.cfg.Network(a.network)
	if a.net == nil {
		return errors.Errorf("network not found: %s", a.network)
	}

	flags := cmd.Flags()
	if flags.Changed("chanmodes") {
		a.net.SetChanmodes(a.chanmodes)
	}
	if flags.Changed("prefix") {
		a.net.SetPrefix(a.prefix)
	}
	if flags.Changed("maxmodes") {
		a.net.SetMaxModes(a.maxModes)
	}
	if flags.Changed("linelength") {
		a.net.SetLineLength(a.lineLength)
	}

	kinds, err := a.net.ModeKinds()
	if err != nil {
		a.logger.Warn("using default mode kinds", "err", err)
	}
	a.kinds = kinds
	a.ni = a.net.NetworkInfo()

	if !a.unmasked {
		a.secrets = a.net.Secrets()
	}

	return nil
}

func (a *app) setLogLevel(cmd *cobra.Command, lvl log15.Lvl) {
	a.logger.SetHandler(log15.LvlFilterHandler(lvl,
		log15.StreamHandler(cmd.ErrOrStderr(), log15.LogfmtFormat())))
}

// render formats a set for output, masking secrets unless asked not to.
func (a *app) render(set data.ModeSet) string {
	return set.Render(a.secrets...)
}
