package main

import (
	"fmt"
	"strings"

	"github.com/aarondl/modeq/data"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render <modestring> [args...]",
		Short: "Parse a modestring and print the resulting modes in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := data.ParseModeSet(a.kinds, strings.Join(args, " "))
			if err != nil {
				a.logger.Warn("modestring has invalid changes", "err", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.render(set))
			return err
		},
	}
}
