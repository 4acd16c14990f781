package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/hotspot/internal/hotspot"
	"github.com/alfredjeanlab/hotspot/internal/ui"
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Short:   "Control the hotspot interactively",
	GroupID: "hotspot",
	Long: `Session keeps one controller open and reads commands from stdin:

  start    prompt for a name and passphrase, then start the hotspot
  stop     stop the hotspot
  status   show whether the hotspot is running
  help     list commands
  quit     stop the hotspot and exit

The hotspot is stopped once when the session ends, whether by quit, end of
input, or an interrupt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ctrl, err := newController(out)
		if err != nil {
			return err
		}
		runner, err := newRunner()
		if err != nil {
			return err
		}

		// Operations run to completion; an interrupt only triggers shutdown.
		ctx := context.WithoutCancel(cmd.Context())

		// An interrupt during the hidden passphrase prompt would otherwise
		// exit with echo still off.
		restore := ui.SaveTerminal(os.Stdin)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		done := make(chan struct{})
		defer close(done)
		go onSignal(sigCh, done, func() {
			restore()
			fmt.Fprintln(out)
			ctrl.Shutdown(ctx)
			closePublisher()
			os.Exit(130)
		})

		s := &session{
			ctrl:    ctrl,
			show:    runner.ShowHostedNetwork,
			in:      bufio.NewReader(os.Stdin),
			out:     out,
			helpURL: settings.HelpURL,
		}
		if ui.IsTerminal(os.Stdin) {
			s.secret = func() (string, error) { return ui.ReadSecret(os.Stdin) }
		}
		return s.run(ctx)
	},
}

// onSignal calls fn when a signal arrives on sigCh, or returns once done is
// closed.
func onSignal(sigCh <-chan os.Signal, done <-chan struct{}, fn func()) {
	select {
	case <-sigCh:
		fn()
	case <-done:
	}
}

type session struct {
	ctrl *hotspot.Controller
	show func(context.Context) hotspot.CommandResult
	in   *bufio.Reader
	out  io.Writer

	// secret reads the passphrase without echo. When nil the passphrase is
	// read as a plain line.
	secret  func() (string, error)
	helpURL string
}

// run reads commands until quit or end of input, then shuts the controller
// down.
func (s *session) run(ctx context.Context) error {
	defer s.ctrl.Shutdown(ctx)

	printStatus(s.out, s.ctrl.State())
	for {
		fmt.Fprint(s.out, ui.RenderAccent("hotspot> "))
		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
		case "start":
			if err := s.start(ctx); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case "stop":
			s.ctrl.Stop(ctx)
			printStatus(s.out, s.ctrl.State())
		case "status":
			printStatus(s.out, s.ctrl.State())
			if s.show != nil {
				if res := s.show(ctx); res.Output != "" {
					fmt.Fprintln(s.out, res.Output)
				}
			}
		case "help", "?":
			s.help()
		case "quit", "exit", "q":
			return nil
		default:
			fmt.Fprintf(s.out, "unknown command %q (try \"help\")\n", line)
		}
	}
}

func (s *session) start(ctx context.Context) error {
	fmt.Fprint(s.out, "Name: ")
	name, err := s.readLine()
	if err != nil {
		return err
	}
	if hotspot.FieldHint("name", name) {
		fmt.Fprintln(s.out, ui.RenderHighlight("  name is required"))
	}
	fmt.Fprint(s.out, "Passphrase: ")
	var pass string
	if s.secret != nil {
		pass, err = s.secret()
		fmt.Fprintln(s.out)
	} else {
		pass, err = s.readLine()
	}
	if err != nil {
		return err
	}
	if hotspot.FieldHint("passphrase", pass) {
		fmt.Fprintln(s.out, ui.RenderHighlight(fmt.Sprintf("  passphrase has %d of %d characters",
			utf8.RuneCountInString(pass), hotspot.MinPassphraseLen)))
	}

	cfg := hotspot.Config{Name: name, Passphrase: pass}
	if res := hotspot.Validate(cfg); !res.OK() {
		printHint(s.out, cfg, hotspot.HintFor(res))
		return nil
	}

	outcome := s.ctrl.Start(ctx, cfg)
	printStatus(s.out, s.ctrl.State())
	if outcome.OK() {
		printShareNotice(s.out, s.helpURL)
	}
	return nil
}

func (s *session) help() {
	for _, c := range [][2]string{
		{"start", "start the hotspot"},
		{"stop", "stop the hotspot"},
		{"status", "show whether the hotspot is running"},
		{"help", "show this list"},
		{"quit", "stop the hotspot and exit"},
	} {
		fmt.Fprintf(s.out, "  %s  %s\n", ui.RenderCommand(fmt.Sprintf("%-7s", c[0])), c[1])
	}
}

// readLine returns the next input line without its line ending. A final
// line with no newline is returned before io.EOF.
func (s *session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
