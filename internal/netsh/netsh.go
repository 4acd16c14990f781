// Package netsh runs the Windows "netsh wlan" hosted-network commands.
package netsh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/alfredjeanlab/hotspot/internal/hotspot"
)

// Defaults for Options.
const (
	DefaultBinary   = "netsh"
	DefaultEncoding = "utf-8"
)

// Options configures a Runner.
type Options struct {
	// Binary is the netsh executable, looked up in PATH when not absolute.
	Binary string

	// Encoding names the console code page netsh writes in, e.g. "gbk" on a
	// Chinese Windows install or "ibm437" on an English one.
	Encoding string
}

// Runner implements hotspot.Runner by invoking netsh. Commands are passed as
// argv, never through a shell, and run to completion with no timeout.
type Runner struct {
	binary string
	enc    encoding.Encoding
	isUTF8 bool
	logger *slog.Logger
}

var _ hotspot.Runner = (*Runner)(nil)

// New creates a Runner. It fails only when the encoding name is unknown.
func New(opts Options, logger *slog.Logger) (*Runner, error) {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if opts.Encoding == "" {
		opts.Encoding = DefaultEncoding
	}
	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	name, _ := htmlindex.Name(enc)
	return &Runner{binary: opts.Binary, enc: enc, isUTF8: name == "utf-8", logger: logger}, nil
}

// LookupEncoding resolves a WHATWG or IANA encoding name.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown output encoding %q", name)
	}
	return enc, nil
}

// Command argv, without the binary.
var (
	allowArgs = []string{"wlan", "set", "hostednetwork", "mode=allow"}
	startArgs = []string{"wlan", "start", "hostednetwork"}
	stopArgs  = []string{"wlan", "stop", "hostednetwork"}
	showArgs  = []string{"wlan", "show", "hostednetwork"}
)

func setArgs(cfg hotspot.Config) []string {
	return []string{"wlan", "set", "hostednetwork", "ssid=" + cfg.Name, "key=" + cfg.Passphrase}
}

// AllowHostedNetwork enables hosted network mode on the wireless adapter.
func (r *Runner) AllowHostedNetwork(ctx context.Context) hotspot.CommandResult {
	return r.run(ctx, allowArgs...)
}

// SetHostedNetwork sets the hosted network SSID and key.
func (r *Runner) SetHostedNetwork(ctx context.Context, cfg hotspot.Config) hotspot.CommandResult {
	return r.run(ctx, setArgs(cfg)...)
}

// StartHostedNetwork starts the configured hosted network.
func (r *Runner) StartHostedNetwork(ctx context.Context) hotspot.CommandResult {
	return r.run(ctx, startArgs...)
}

// StopHostedNetwork stops the hosted network.
func (r *Runner) StopHostedNetwork(ctx context.Context) hotspot.CommandResult {
	return r.run(ctx, stopArgs...)
}

// ShowHostedNetwork reports the hosted network settings and status.
func (r *Runner) ShowHostedNetwork(ctx context.Context) hotspot.CommandResult {
	return r.run(ctx, showArgs...)
}

func (r *Runner) run(ctx context.Context, args ...string) hotspot.CommandResult {
	r.logger.Debug("netsh: running", "binary", r.binary, "args", strings.Join(redact(args), " "))

	cmd := exec.CommandContext(ctx, r.binary, args...) //nolint:gosec // argv is built from fixed verbs and validated input
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := r.decode(stdout.Bytes())
	if output == "" {
		output = r.decode(stderr.Bytes())
	}

	res := hotspot.CommandResult{Succeeded: err == nil, Output: output}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.ExitCode = 0
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		// The process never ran, e.g. netsh is not on PATH.
		res.ExitCode = -1
		if res.Output == "" {
			res.Output = err.Error()
		}
	}

	r.logger.Debug("netsh: finished", "args", strings.Join(redact(args), " "), "exit_code", res.ExitCode)
	return res
}

// decode converts console output to UTF-8 with LF line endings and trims it.
// Output that is not valid UTF-8 while the encoding is utf-8 is kept as raw
// bytes, since it was written in a code page nobody configured.
func (r *Runner) decode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out := b
	if !r.isUTF8 || utf8.Valid(b) {
		d, err := r.enc.NewDecoder().Bytes(b)
		if err == nil {
			out = d
		}
	}
	s := strings.ReplaceAll(string(out), "\r\n", "\n")
	return strings.TrimSpace(s)
}

// redact hides the key= argument from logs.
func redact(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if strings.HasPrefix(a, "key=") {
			a = "key=********"
		}
		out[i] = a
	}
	return out
}
