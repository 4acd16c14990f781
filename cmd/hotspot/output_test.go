package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alfredjeanlab/hotspot/internal/hotspot"
)

func TestPrintHint(t *testing.T) {
	cfg := hotspot.Config{Name: "", Passphrase: "secret"}
	var buf bytes.Buffer
	printHint(&buf, cfg, hotspot.HintFor(hotspot.Validate(cfg)))

	out := buf.String()
	if strings.Contains(out, "secret") {
		t.Fatalf("passphrase leaked:\n%s", out)
	}
	for _, want := range []string{"Name:        (empty)", "Passphrase:  ******", "network name is empty", "at least 8 characters"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestMaskPassphrase(t *testing.T) {
	if got := maskPassphrase("pässwörd"); got != "********" {
		t.Errorf("maskPassphrase = %q, want 8 stars", got)
	}
	if got := maskPassphrase(""); got != "" {
		t.Errorf("maskPassphrase(\"\") = %q", got)
	}
}

func TestPrintShareNotice(t *testing.T) {
	var buf bytes.Buffer
	printShareNotice(&buf, "http://example.com/guide")
	if !strings.Contains(buf.String(), "http://example.com/guide") {
		t.Errorf("help URL missing:\n%s", buf.String())
	}

	buf.Reset()
	printShareNotice(&buf, "")
	if strings.Contains(buf.String(), "guide") {
		t.Errorf("unexpected guide line:\n%s", buf.String())
	}
}
