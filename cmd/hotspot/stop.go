package main

import (
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:     "stop",
	Short:   "Stop the hotspot",
	GroupID: "hotspot",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ctrl, err := newController(out)
		if err != nil {
			return err
		}
		outcome := ctrl.Stop(cmd.Context())
		printStatus(out, ctrl.State())
		if !outcome.OK() {
			return outcome.Result.Err()
		}
		return nil
	},
}
