package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/hotspot/internal/display"
	"github.com/alfredjeanlab/hotspot/internal/events"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Short:   "Follow hotspot events published on NATS",
	GroupID: "system",
	Long: `Watch subscribes to every hotspot event on the NATS bus and prints the
controller's log lines as they arrive. Use --raw to print every event payload.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("nats")
		raw, _ := cmd.Flags().GetBool("raw")
		if url == "" {
			url = settings.NATSURL
		}
		if url == "" {
			return errors.New("no NATS URL: set nats_url, HOTSPOT_NATS_URL or --nats")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sub, err := events.NewNATSSubscriber(url,
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				logger.Warn("nats: disconnected", "err", err)
			}),
			nats.ReconnectHandler(func(_ *nats.Conn) {
				logger.Info("nats: reconnected")
			}),
		)
		if err != nil {
			return fmt.Errorf("connecting to NATS: %w", err)
		}
		defer sub.Close()

		ch, cancel, err := sub.Subscribe(events.TopicAll)
		if err != nil {
			return fmt.Errorf("subscribing to events: %w", err)
		}
		defer cancel()

		logger.Debug("watching events", "nats_url", url, "topic", events.TopicAll)
		return watchLoop(ctx, ch, cmd.OutOrStdout(), raw)
	},
}

func init() {
	watchCmd.Flags().String("nats", "", "NATS URL (default from config)")
	watchCmd.Flags().Bool("raw", false, "print every event as topic and JSON payload")
}

// watchLoop prints messages until ctx is done or ch is closed.
func watchLoop(ctx context.Context, ch <-chan events.Message, w io.Writer, raw bool) error {
	console := display.NewConsole(w)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if raw {
				fmt.Fprintf(w, "%s %s\n", msg.Topic, msg.Data)
				continue
			}
			if msg.Topic != events.TopicLog {
				continue
			}
			var line events.LogLine
			if err := json.Unmarshal(msg.Data, &line); err != nil {
				logger.Warn("watch: bad log line", "topic", msg.Topic, "err", err)
				continue
			}
			console.Report(line.Entry())
		}
	}
}
