package main

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/alfredjeanlab/hotspot/internal/display"
	"github.com/alfredjeanlab/hotspot/internal/hotspot"
)

func runSession(t *testing.T, r *fakeRunner, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := &session{
		ctrl:    hotspot.NewController(r, display.NewConsole(&out), logger),
		show:    r.ShowHostedNetwork,
		in:      bufio.NewReader(strings.NewReader(input)),
		out:     &out,
		helpURL: "http://example.com/share",
	}
	if err := s.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestSession_StartThenQuit(t *testing.T) {
	r := &fakeRunner{}
	out := runSession(t, r, "start\nHome\nlongpass1\nquit\n")

	want := []string{"allow", "set", "start", "stop"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls = %v, want %v", r.calls, want)
	}
	for _, s := range []string{"hotspot started", "network status: connected", "http://example.com/share", "hotspot disconnected"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
	if strings.Contains(out, "is required") || strings.Contains(out, "of 8 characters") {
		t.Errorf("field hint shown for valid input:\n%s", out)
	}
}

func TestSession_ShutdownOnEOF(t *testing.T) {
	r := &fakeRunner{}
	runSession(t, r, "start\nHome\nlongpass1\n")

	if got := r.calls[len(r.calls)-1]; got != "stop" {
		t.Fatalf("last call = %q, want stop", got)
	}
}

func TestSession_ShutdownRunsOnce(t *testing.T) {
	r := &fakeRunner{}
	runSession(t, r, "stop\nquit\n")

	stops := 0
	for _, c := range r.calls {
		if c == "stop" {
			stops++
		}
	}
	// One explicit stop plus the shutdown stop.
	if stops != 2 {
		t.Fatalf("stop ran %d times, want 2 (calls %v)", stops, r.calls)
	}
}

func TestSession_InvalidInputRunsNothing(t *testing.T) {
	r := &fakeRunner{}
	out := runSession(t, r, "start\n\nabc\nquit\n")

	if !reflect.DeepEqual(r.calls, []string{"stop"}) {
		t.Fatalf("calls = %v, want only the shutdown stop", r.calls)
	}
	for _, s := range []string{"name is required", "passphrase has 3 of 8 characters", "network name is empty", "at least 8 characters", "Passphrase:  ***"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
	if strings.Contains(out, "abc\n") {
		t.Error("passphrase echoed in hint")
	}
}

func TestSession_FailedStart(t *testing.T) {
	r := &fakeRunner{fail: map[string]bool{"set": true}}
	out := runSession(t, r, "start\nHome\nlongpass1\nquit\n")

	if !reflect.DeepEqual(r.calls, []string{"allow", "set", "stop"}) {
		t.Fatalf("calls = %v", r.calls)
	}
	if !strings.Contains(out, hotspot.ErrCredentialSetFailed.Error()) {
		t.Errorf("output missing failure notice:\n%s", out)
	}
	if strings.Contains(out, "http://example.com/share") {
		t.Error("share notice printed after a failed start")
	}
	if !strings.Contains(out, "network status: not connected") {
		t.Errorf("output missing status line:\n%s", out)
	}
}

func TestSession_StatusAndUnknown(t *testing.T) {
	r := &fakeRunner{}
	out := runSession(t, r, "status\nfrobnicate\nhelp\r\nexit\n")

	if !strings.Contains(out, "show ok") {
		t.Errorf("status did not print netsh output:\n%s", out)
	}
	if !strings.Contains(out, `unknown command "frobnicate"`) {
		t.Errorf("missing unknown command message:\n%s", out)
	}
	if !strings.Contains(out, "stop the hotspot and exit") {
		t.Errorf("help not printed:\n%s", out)
	}
}

func TestSession_SecretReader(t *testing.T) {
	r := &fakeRunner{}
	var out bytes.Buffer
	s := &session{
		ctrl:   hotspot.NewController(r, display.NewConsole(&out), logger),
		in:     bufio.NewReader(strings.NewReader("start\nHome\nquit\n")),
		out:    &out,
		secret: func() (string, error) { return "longpass1", nil },
	}
	if err := s.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reflect.DeepEqual(r.calls, []string{"allow", "set", "start", "stop"}) {
		t.Fatalf("calls = %v", r.calls)
	}
}

func TestReadLine(t *testing.T) {
	s := &session{in: bufio.NewReader(strings.NewReader("one\r\ntwo"))}
	for _, want := range []string{"one", "two"} {
		got, err := s.readLine()
		if err != nil || got != want {
			t.Fatalf("readLine = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := s.readLine(); err == nil {
		t.Fatal("expected EOF")
	}
}

func TestOnSignal(t *testing.T) {
	t.Run("Signal", func(t *testing.T) {
		sigCh := make(chan os.Signal, 1)
		called := make(chan struct{})
		go onSignal(sigCh, make(chan struct{}), func() { close(called) })

		sigCh <- os.Interrupt
		select {
		case <-called:
		case <-time.After(2 * time.Second):
			t.Fatal("handler not called after signal")
		}
	})

	t.Run("Done", func(t *testing.T) {
		done := make(chan struct{})
		returned := make(chan struct{})
		calls := 0
		go func() {
			onSignal(make(chan os.Signal), done, func() { calls++ })
			close(returned)
		}()

		close(done)
		select {
		case <-returned:
		case <-time.After(2 * time.Second):
			t.Fatal("onSignal did not return after done")
		}
		if calls != 0 {
			t.Errorf("handler called %d times without a signal", calls)
		}
	})
}
