package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/hotspot/internal/hotspot"
	"github.com/alfredjeanlab/hotspot/internal/ui"
)

var startCmd = &cobra.Command{
	Use:     "start",
	Short:   "Start the hotspot",
	GroupID: "hotspot",
	Long: `Start allows hosted network mode, sets the network name and passphrase,
then starts the hosted network. The first failing step ends the sequence.

When --passphrase is omitted and stdin is a terminal, the passphrase is read
without echo.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		pass, _ := cmd.Flags().GetString("passphrase")

		if !cmd.Flags().Changed("passphrase") && ui.IsTerminal(os.Stdin) {
			fmt.Fprint(cmd.ErrOrStderr(), "Passphrase: ")
			p, err := ui.ReadSecret(os.Stdin)
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("reading passphrase: %w", err)
			}
			pass = p
		}

		cfg := hotspot.Config{Name: name, Passphrase: pass}
		out := cmd.OutOrStdout()
		if res := hotspot.Validate(cfg); !res.OK() {
			printHint(out, cfg, hotspot.HintFor(res))
			return hotspot.ErrInvalidConfig
		}

		ctrl, err := newController(out)
		if err != nil {
			return err
		}
		outcome := ctrl.Start(cmd.Context(), cfg)
		printStatus(out, ctrl.State())
		if !outcome.OK() {
			return outcome.Result.Err()
		}
		printShareNotice(out, settings.HelpURL)
		return nil
	},
}

func init() {
	startCmd.Flags().StringP("name", "n", "", "network name (SSID)")
	startCmd.Flags().StringP("passphrase", "p", "", "network passphrase, at least 8 characters")
}
