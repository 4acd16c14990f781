package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/alfredjeanlab/hotspot/internal/hotspot"
	"github.com/alfredjeanlab/hotspot/internal/ui"
)

func TestMain(m *testing.M) {
	ui.ForceNoColor()
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	os.Exit(m.Run())
}

// fakeRunner stands in for netsh. Commands named in fail exit 1.
type fakeRunner struct {
	calls []string
	fail  map[string]bool
}

func (f *fakeRunner) result(name string) hotspot.CommandResult {
	f.calls = append(f.calls, name)
	if f.fail[name] {
		return hotspot.CommandResult{Output: name + " failed", ExitCode: 1}
	}
	return hotspot.CommandResult{Succeeded: true, Output: name + " ok"}
}

func (f *fakeRunner) AllowHostedNetwork(context.Context) hotspot.CommandResult {
	return f.result("allow")
}

func (f *fakeRunner) SetHostedNetwork(context.Context, hotspot.Config) hotspot.CommandResult {
	return f.result("set")
}

func (f *fakeRunner) StartHostedNetwork(context.Context) hotspot.CommandResult {
	return f.result("start")
}

func (f *fakeRunner) StopHostedNetwork(context.Context) hotspot.CommandResult {
	return f.result("stop")
}

func (f *fakeRunner) ShowHostedNetwork(context.Context) hotspot.CommandResult {
	return f.result("show")
}
