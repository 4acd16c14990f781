package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/hotspot/internal/hotspot"
	"github.com/alfredjeanlab/hotspot/internal/ui"
)

type violationJSON struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type validationJSON struct {
	Valid               bool            `json:"valid"`
	HighlightName       bool            `json:"highlight_name"`
	HighlightPassphrase bool            `json:"highlight_passphrase"`
	Violations          []violationJSON `json:"violations"`
}

var validateCmd = &cobra.Command{
	Use:     "validate",
	Short:   "Check a network name and passphrase without running netsh",
	GroupID: "hotspot",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		pass, _ := cmd.Flags().GetString("passphrase")
		jsonOut, _ := cmd.Flags().GetBool("json")

		cfg := hotspot.Config{Name: name, Passphrase: pass}
		res := hotspot.Validate(cfg)
		hint := hotspot.HintFor(res)
		out := cmd.OutOrStdout()

		if jsonOut {
			v := validationJSON{
				Valid:               res.OK(),
				HighlightName:       hint.HighlightName,
				HighlightPassphrase: hint.HighlightPassphrase,
				Violations:          []violationJSON{},
			}
			for _, viol := range res.Violations {
				v.Violations = append(v.Violations, violationJSON{
					Field:   viol.Field(),
					Code:    viol.String(),
					Message: viol.Message(),
				})
			}
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
		} else if res.OK() {
			fmt.Fprintln(out, ui.RenderSuccess("ok"))
		} else {
			printHint(out, cfg, hint)
		}

		if !res.OK() {
			return hotspot.ErrInvalidConfig
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("name", "n", "", "network name (SSID)")
	validateCmd.Flags().StringP("passphrase", "p", "", "network passphrase")
	validateCmd.Flags().Bool("json", false, "output as JSON")
}
