package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/hotspot/internal/config"
	"github.com/alfredjeanlab/hotspot/internal/display"
	"github.com/alfredjeanlab/hotspot/internal/events"
	"github.com/alfredjeanlab/hotspot/internal/hotspot"
	"github.com/alfredjeanlab/hotspot/internal/netsh"
	"github.com/alfredjeanlab/hotspot/internal/ui"
)

var (
	configPath string
	noColor    bool
	verbose    bool

	settings  *config.Config
	logger    *slog.Logger
	publisher events.Publisher
)

var rootCmd = &cobra.Command{
	Use:   "hotspot <command>",
	Short: "Start and stop a Windows hosted-network Wi-Fi hotspot",
	Long: `hotspot turns the wireless adapter into a Wi-Fi access point using the
Windows hosted network feature ("netsh wlan ... hostednetwork").

Settings are read from a TOML file (see "hotspot config path") and HOTSPOT_*
environment variables. Network names and passphrases are never saved.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor || !ui.ShouldUseColor() {
			ui.ForceNoColor()
		}

		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		settings = c

		level, levelErr := config.ParseLevel(c.LogLevel)
		if levelErr != nil {
			level = slog.LevelWarn
		}
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		if levelErr != nil {
			logger.Warn("using log level warn", "err", levelErr)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closePublisher()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the per-user hotspot/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddGroup(
		&cobra.Group{ID: "hotspot", Title: "Hotspot:"},
		&cobra.Group{ID: "system", Title: "System:"},
	)

	cobra.EnableCommandSorting = false
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	// Hotspot
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sessionCmd)

	// System
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

// newRunner builds the netsh runner from the loaded settings.
func newRunner() (*netsh.Runner, error) {
	return netsh.New(netsh.Options{Binary: settings.Netsh, Encoding: settings.OutputEncoding}, logger)
}

// newController wires a controller to netsh, the console and, when a NATS
// URL is configured, the event bus. An unreachable bus only disables events.
func newController(out io.Writer) (*hotspot.Controller, error) {
	runner, err := newRunner()
	if err != nil {
		return nil, err
	}

	sinks := display.Multi{display.NewConsole(out)}
	publisher = &events.NoopPublisher{}
	if settings.NATSURL != "" {
		pub, err := events.NewNATSPublisher(settings.NATSURL)
		if err != nil {
			logger.Warn("events disabled", "err", err)
		} else {
			publisher = pub
			sinks = append(sinks, events.NewSink(pub, logger))
			logger.Debug("events enabled", "nats_url", settings.NATSURL)
		}
	}

	return hotspot.NewController(runner, sinks, logger), nil
}

func closePublisher() {
	if publisher == nil {
		return
	}
	if err := publisher.Close(); err != nil && logger != nil {
		logger.Warn("closing event publisher", "err", err)
	}
	publisher = nil
}

func main() {
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when a command fails.
	closePublisher()
	if err != nil {
		os.Exit(1)
	}
}
