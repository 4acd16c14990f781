// Package hotspot drives a Windows hosted-network hotspot: it validates the
// requested network name and passphrase, runs the fixed netsh command
// sequence through a Runner, tracks whether the hotspot is up, and reports
// every step to a Sink.
package hotspot

import (
	"context"
	"time"
)

// Config is the network a user asks to host. It is never persisted.
type Config struct {
	Name       string
	Passphrase string
}

// State is the controller's view of the hosted network.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// CommandResult is the outcome of one external command.
type CommandResult struct {
	Succeeded bool
	Output    string
	ExitCode  int // -1 when the process could not be started
}

// Runner executes the hosted-network commands. Each call blocks until the
// command exits.
type Runner interface {
	AllowHostedNetwork(ctx context.Context) CommandResult
	SetHostedNetwork(ctx context.Context, cfg Config) CommandResult
	StartHostedNetwork(ctx context.Context) CommandResult
	StopHostedNetwork(ctx context.Context) CommandResult
}

// Level classifies an Entry for display.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelSuccess
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// Action names the user request an Entry belongs to.
type Action string

const (
	ActionStart Action = "start"
	ActionStop  Action = "stop"
)

// Entry is one line reported to a Sink.
type Entry struct {
	Time   time.Time
	Op     string // operation ID shared by all entries of one Start or Stop
	Action Action
	Level  Level
	Text   string

	// Outcome is set only on the last entry of an operation.
	Outcome string
	State   State
}

// Final reports whether e closes its operation.
func (e Entry) Final() bool {
	return e.Outcome != ""
}

// Sink receives the controller's status lines.
type Sink interface {
	Report(Entry)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Entry)

func (f SinkFunc) Report(e Entry) { f(e) }

type discardSink struct{}

func (discardSink) Report(Entry) {}
