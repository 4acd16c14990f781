package hotspot

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when Start is asked to host a Config that fails Validate.
	ErrInvalidConfig = errors.New("invalid hotspot configuration")

	// ErrModeSetFailed is returned when hosted network mode could not be allowed.
	ErrModeSetFailed = errors.New("hosted network mode could not be set")

	// ErrCredentialSetFailed is returned when the SSID and key could not be set.
	ErrCredentialSetFailed = errors.New("could not set hosted network SSID and key")

	// ErrStartFailed is returned when the hosted network could not be started.
	ErrStartFailed = errors.New("could not start hosted network")

	// ErrStopFailed is returned when the hosted network could not be stopped.
	ErrStopFailed = errors.New("could not stop the hotspot")
)

// StartResult classifies a Start call.
type StartResult int

const (
	StartSuccess StartResult = iota
	ModeSetFailed
	CredentialSetFailed
	StartFailed
	Invalid
)

func (r StartResult) String() string {
	switch r {
	case StartSuccess:
		return "success"
	case ModeSetFailed:
		return "mode_set_failed"
	case CredentialSetFailed:
		return "credential_set_failed"
	case StartFailed:
		return "start_failed"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Err returns the sentinel error for a failed result, or nil for StartSuccess.
func (r StartResult) Err() error {
	switch r {
	case ModeSetFailed:
		return ErrModeSetFailed
	case CredentialSetFailed:
		return ErrCredentialSetFailed
	case StartFailed:
		return ErrStartFailed
	case Invalid:
		return ErrInvalidConfig
	default:
		return nil
	}
}

// StartOutcome is what Start returns. Output is the text of the command that
// decided the outcome: the last step on success, the failing step otherwise.
type StartOutcome struct {
	Result StartResult
	Output string
	Op     string
}

// OK reports whether the hotspot was started.
func (o StartOutcome) OK() bool {
	return o.Result == StartSuccess
}

// Err returns nil on success, else an error wrapping the matching sentinel.
func (o StartOutcome) Err() error {
	return outcomeErr(o.Result.Err(), o.Output)
}

// StopResult classifies a Stop call.
type StopResult int

const (
	StopSuccess StopResult = iota
	StopFailed
)

func (r StopResult) String() string {
	if r == StopSuccess {
		return "success"
	}
	return "stop_failed"
}

// Err returns ErrStopFailed for StopFailed, or nil.
func (r StopResult) Err() error {
	if r == StopFailed {
		return ErrStopFailed
	}
	return nil
}

// StopOutcome is what Stop returns.
type StopOutcome struct {
	Result StopResult
	Output string
	Op     string
}

// OK reports whether the hotspot was stopped.
func (o StopOutcome) OK() bool {
	return o.Result == StopSuccess
}

// Err returns nil on success, else an error wrapping ErrStopFailed.
func (o StopOutcome) Err() error {
	return outcomeErr(o.Result.Err(), o.Output)
}

func outcomeErr(sentinel error, output string) error {
	if sentinel == nil {
		return nil
	}
	if output == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, output)
}
