package hotspot

import "unicode/utf8"

// Hint tells a presentation layer which inputs to highlight after validation.
type Hint struct {
	HighlightName       bool
	HighlightPassphrase bool
	Messages            []string
}

// HintFor maps a validation result to a presentation hint.
func HintFor(r ValidationResult) Hint {
	var h Hint
	for _, v := range r.Violations {
		switch v.Field() {
		case "name":
			h.HighlightName = true
		case "passphrase":
			h.HighlightPassphrase = true
		}
		h.Messages = append(h.Messages, v.Message())
	}
	return h
}

// FieldHint reports whether a single input should be highlighted while it is
// being edited: the name when empty, the passphrase when shorter than
// MinPassphraseLen. Unknown fields are never highlighted.
func FieldHint(field, value string) bool {
	switch field {
	case "name":
		return value == ""
	case "passphrase":
		return utf8.RuneCountInString(value) < MinPassphraseLen
	default:
		return false
	}
}

// StatusText is the status line shown for a state.
func StatusText(s State) string {
	if s == Running {
		return "network status: connected"
	}
	return "network status: not connected"
}
