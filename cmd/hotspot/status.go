package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show hosted network settings and status",
	GroupID: "hotspot",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner, err := newRunner()
		if err != nil {
			return err
		}
		res := runner.ShowHostedNetwork(cmd.Context())
		if res.Output != "" {
			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
		}
		if !res.Succeeded {
			return fmt.Errorf("netsh exited with status %d", res.ExitCode)
		}
		return nil
	},
}
