package hotspot

import (
	"strings"
	"unicode/utf8"
)

// MinPassphraseLen is the shortest passphrase netsh accepts for a hosted network key.
const MinPassphraseLen = 8

// Violation identifies a single rule a Config fails.
type Violation int

const (
	EmptyName Violation = iota + 1
	EmptyPassphrase
	PassphraseTooShort
)

// String returns the violation name used in logs and JSON output.
func (v Violation) String() string {
	switch v {
	case EmptyName:
		return "empty_name"
	case EmptyPassphrase:
		return "empty_passphrase"
	case PassphraseTooShort:
		return "passphrase_too_short"
	default:
		return "unknown"
	}
}

// Field returns the input field the violation belongs to.
func (v Violation) Field() string {
	switch v {
	case EmptyName:
		return "name"
	case EmptyPassphrase, PassphraseTooShort:
		return "passphrase"
	default:
		return ""
	}
}

// Message returns the user-facing correction hint.
func (v Violation) Message() string {
	switch v {
	case EmptyName:
		return "network name is empty, please enter a network name"
	case EmptyPassphrase:
		return "passphrase is empty, please enter a passphrase"
	case PassphraseTooShort:
		return "passphrase must be at least 8 characters"
	default:
		return "invalid value"
	}
}

// ValidationResult is the set of violations found for a Config.
type ValidationResult struct {
	Violations []Violation
}

// OK reports whether no rule was violated.
func (r ValidationResult) OK() bool {
	return len(r.Violations) == 0
}

// Has reports whether v is among the violations.
func (r ValidationResult) Has(v Violation) bool {
	for _, got := range r.Violations {
		if got == v {
			return true
		}
	}
	return false
}

// Err returns a *ValidationError describing the violations, or nil when the result is OK.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Violations: r.Violations}
}

// ValidationError holds the violations of a rejected Config.
type ValidationError struct {
	Violations []Violation
}

// Error formats the violations as a semicolon-separated list of field messages.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field() + ": " + v.Message()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks cfg against the name and passphrase rules. Both fields are
// always checked so a caller can flag every bad field at once.
func Validate(cfg Config) ValidationResult {
	var r ValidationResult

	if cfg.Name == "" {
		r.Violations = append(r.Violations, EmptyName)
	}

	n := utf8.RuneCountInString(cfg.Passphrase)
	if n == 0 {
		r.Violations = append(r.Violations, EmptyPassphrase)
	}
	if n < MinPassphraseLen {
		r.Violations = append(r.Violations, PassphraseTooShort)
	}

	return r
}
