package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alfredjeanlab/hotspot/internal/hotspot"
	"github.com/alfredjeanlab/hotspot/internal/ui"
)

// printHint shows the entered fields, highlighting the ones that failed
// validation, followed by one line per violation.
func printHint(w io.Writer, cfg hotspot.Config, h hotspot.Hint) {
	name := cfg.Name
	if name == "" {
		name = "(empty)"
	}
	pass := maskPassphrase(cfg.Passphrase)
	if pass == "" {
		pass = "(empty)"
	}
	if h.HighlightName {
		name = ui.RenderHighlight(name)
	}
	if h.HighlightPassphrase {
		pass = ui.RenderHighlight(pass)
	}
	fmt.Fprintf(w, "Name:        %s\n", name)
	fmt.Fprintf(w, "Passphrase:  %s\n", pass)
	for _, msg := range h.Messages {
		fmt.Fprintln(w, ui.RenderWarning(msg))
	}
}

// maskPassphrase replaces every character with '*'.
func maskPassphrase(s string) string {
	return strings.Repeat("*", utf8.RuneCountInString(s))
}

func printStatus(w io.Writer, s hotspot.State) {
	fmt.Fprintln(w, ui.RenderMuted(hotspot.StatusText(s)))
}

// printShareNotice tells the user how to route their connection through the
// new network.
func printShareNotice(w io.Writer, helpURL string) {
	fmt.Fprintln(w, "To share your Internet connection, open the adapter settings, enable sharing")
	fmt.Fprintln(w, "on the connected adapter and select the new hosted network adapter.")
	if helpURL != "" {
		fmt.Fprintf(w, "Step-by-step guide: %s\n", ui.RenderAccent(helpURL))
	}
}
