package hotspot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alfredjeanlab/hotspot/internal/idgen"
)

// Controller owns the hosted network state and runs the start and stop
// command sequences. It assumes a single user driving a single instance; the
// mutex only keeps a signal-triggered Shutdown from interleaving with a
// running Start.
type Controller struct {
	runner Runner
	sink   Sink
	logger *slog.Logger

	mu    sync.Mutex
	state State

	shutdownOnce sync.Once

	now   func() time.Time
	newID func() (string, error)
}

// NewController creates a Controller in the Stopped state. A nil sink
// discards entries.
func NewController(runner Runner, sink Sink, logger *slog.Logger) *Controller {
	if sink == nil {
		sink = discardSink{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		runner: runner,
		sink:   sink,
		logger: logger,
		state:  Stopped,
		now:    time.Now,
		newID:  idgen.Generate,
	}
}

// State returns the current hotspot state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

type startStep struct {
	name   string
	failAs StartResult
	run    func(ctx context.Context, cfg Config) CommandResult
}

func (c *Controller) startSteps() []startStep {
	return []startStep{
		{"allow hosted network", ModeSetFailed, func(ctx context.Context, _ Config) CommandResult {
			return c.runner.AllowHostedNetwork(ctx)
		}},
		{"set ssid and key", CredentialSetFailed, c.runner.SetHostedNetwork},
		{"start hosted network", StartFailed, func(ctx context.Context, _ Config) CommandResult {
			return c.runner.StartHostedNetwork(ctx)
		}},
	}
}

// Start allows hosted network mode, sets the SSID and key, then starts the
// hosted network. The first failing step ends the sequence; earlier steps are
// not rolled back and nothing is retried. Any failure leaves the state
// Stopped, including an invalid cfg, which runs no command: a caller that
// passes one while Running loses track of a hosted network that is still up.
func (c *Controller) Start(ctx context.Context, cfg Config) StartOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	op := c.opID()
	log := c.logger.With("op", op, "action", ActionStart)

	if err := Validate(cfg).Err(); err != nil {
		c.state = Stopped
		log.Warn("hotspot: rejected configuration", "err", err)
		c.report(op, ActionStart, LevelWarning, "hotspot failed to start\n"+err.Error(), Invalid.String())
		return StartOutcome{Result: Invalid, Output: err.Error(), Op: op}
	}

	var last CommandResult
	for _, step := range c.startSteps() {
		last = step.run(ctx, cfg)
		if !last.Succeeded {
			c.state = Stopped
			log.Warn("hotspot: step failed", "step", step.name, "exit_code", last.ExitCode)
			text := "hotspot failed to start\n" + step.failAs.Err().Error()
			if last.Output != "" {
				text += "\n" + last.Output
			}
			c.report(op, ActionStart, LevelWarning, text, step.failAs.String())
			return StartOutcome{Result: step.failAs, Output: last.Output, Op: op}
		}
		log.Debug("hotspot: step done", "step", step.name)
		if last.Output != "" {
			c.report(op, ActionStart, LevelInfo, last.Output, "")
		}
	}

	c.state = Running
	log.Info("hotspot: started", "ssid", cfg.Name)
	c.report(op, ActionStart, LevelSuccess, "hotspot started", StartSuccess.String())
	return StartOutcome{Result: StartSuccess, Output: last.Output, Op: op}
}

// Stop stops the hosted network. A failed stop leaves the state unchanged.
func (c *Controller) Stop(ctx context.Context) StopOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	op := c.opID()
	log := c.logger.With("op", op, "action", ActionStop)

	res := c.runner.StopHostedNetwork(ctx)
	if !res.Succeeded {
		log.Warn("hotspot: stop failed", "exit_code", res.ExitCode)
		text := ErrStopFailed.Error()
		if res.Output != "" {
			text += "\n" + res.Output
		}
		c.report(op, ActionStop, LevelWarning, text, StopFailed.String())
		return StopOutcome{Result: StopFailed, Output: res.Output, Op: op}
	}

	c.state = Stopped
	log.Info("hotspot: stopped")
	if res.Output != "" {
		c.report(op, ActionStop, LevelInfo, res.Output, "")
	}
	c.report(op, ActionStop, LevelWarning, "hotspot disconnected", StopSuccess.String())
	return StopOutcome{Result: StopSuccess, Output: res.Output, Op: op}
}

// Shutdown issues a best-effort Stop and discards its outcome. Only the first
// call does anything, so every exit path may call it.
func (c *Controller) Shutdown(ctx context.Context) {
	c.shutdownOnce.Do(func() {
		out := c.Stop(ctx)
		c.logger.Debug("hotspot: shutdown stop issued", "result", out.Result)
	})
}

func (c *Controller) opID() string {
	id, err := c.newID()
	if err != nil {
		c.logger.Warn("hotspot: generating operation id", "err", err)
		return ""
	}
	return id
}

func (c *Controller) report(op string, action Action, level Level, text, outcome string) {
	c.sink.Report(Entry{
		Time:    c.now(),
		Op:      op,
		Action:  action,
		Level:   level,
		Text:    text,
		Outcome: outcome,
		State:   c.state,
	})
}
