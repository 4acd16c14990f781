package netsh

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/alfredjeanlab/hotspot/internal/hotspot"
)

// fakeNetsh writes a shell script standing in for netsh. It echoes its
// arguments, writes NETSH_FAKE_STDERR to stderr when set, and exits with
// NETSH_FAKE_EXIT (default 0).
func fakeNetsh(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stand-in for netsh needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "netsh")
	script := `#!/bin/sh
if [ -n "$NETSH_FAKE_STDERR" ]; then
	echo "$NETSH_FAKE_STDERR" >&2
else
	echo "$@"
fi
exit ${NETSH_FAKE_EXIT:-0}
`
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake netsh: %v", err)
	}
	return path
}

func newTestRunner(t *testing.T, binary, enc string) *Runner {
	t.Helper()
	r, err := New(Options{Binary: binary, Encoding: enc}, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRunner_CommandLines(t *testing.T) {
	r := newTestRunner(t, fakeNetsh(t), "")
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		run  func() hotspot.CommandResult
		want string
	}{
		{"Allow", func() hotspot.CommandResult { return r.AllowHostedNetwork(ctx) }, "wlan set hostednetwork mode=allow"},
		{"Set", func() hotspot.CommandResult {
			return r.SetHostedNetwork(ctx, hotspot.Config{Name: "Home", Passphrase: "longpass1"})
		}, "wlan set hostednetwork ssid=Home key=longpass1"},
		{"Start", func() hotspot.CommandResult { return r.StartHostedNetwork(ctx) }, "wlan start hostednetwork"},
		{"Stop", func() hotspot.CommandResult { return r.StopHostedNetwork(ctx) }, "wlan stop hostednetwork"},
		{"Show", func() hotspot.CommandResult { return r.ShowHostedNetwork(ctx) }, "wlan show hostednetwork"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.run()
			if !res.Succeeded || res.ExitCode != 0 {
				t.Fatalf("result = %+v, want success", res)
			}
			if res.Output != tc.want {
				t.Errorf("Output = %q, want %q", res.Output, tc.want)
			}
		})
	}
}

func TestRunner_NoShellInterpretation(t *testing.T) {
	r := newTestRunner(t, fakeNetsh(t), "")
	res := r.SetHostedNetwork(context.Background(), hotspot.Config{Name: "a b;echo x", Passphrase: "$(id)pass"})
	want := "wlan set hostednetwork ssid=a b;echo x key=$(id)pass"
	if res.Output != want {
		t.Fatalf("Output = %q, want %q", res.Output, want)
	}
}

func TestRunner_NonZeroExit(t *testing.T) {
	r := newTestRunner(t, fakeNetsh(t), "")
	t.Setenv("NETSH_FAKE_EXIT", "3")

	res := r.StartHostedNetwork(context.Background())
	if res.Succeeded {
		t.Fatal("expected failure for non-zero exit")
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if res.Output != "wlan start hostednetwork" {
		t.Errorf("Output = %q, want the command's stdout", res.Output)
	}
}

func TestRunner_StderrFallback(t *testing.T) {
	r := newTestRunner(t, fakeNetsh(t), "")
	t.Setenv("NETSH_FAKE_STDERR", "The hosted network couldn't be started.")
	t.Setenv("NETSH_FAKE_EXIT", "1")

	res := r.StartHostedNetwork(context.Background())
	if res.Output != "The hosted network couldn't be started." {
		t.Errorf("Output = %q, want stderr text", res.Output)
	}
}

func TestRunner_MissingBinary(t *testing.T) {
	r := newTestRunner(t, filepath.Join(t.TempDir(), "no-such-netsh"), "")

	res := r.StopHostedNetwork(context.Background())
	if res.Succeeded {
		t.Fatal("expected failure for missing binary")
	}
	if res.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", res.ExitCode)
	}
	if res.Output == "" {
		t.Error("expected spawn error text as output")
	}
}

func TestRunner_Decode(t *testing.T) {
	for _, tc := range []struct {
		name string
		enc  string
		in   []byte
		want string
	}{
		{"UTF8CRLF", "utf-8", []byte("Hosted network mode:\r\nAllowed\r\n"), "Hosted network mode:\nAllowed"},
		// "你好" in GBK.
		{"GBK", "gbk", []byte{0xc4, 0xe3, 0xba, 0xc3, '\r', '\n'}, "你好"},
		// Box-drawing character 0xC4 in code page 437.
		{"IBM437", "IBM437", []byte{0xc4, 0xc4}, "──"},
		{"Empty", "utf-8", nil, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRunner(t, DefaultBinary, tc.enc)
			if got := r.decode(tc.in); got != tc.want {
				t.Errorf("decode = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRunner_DecodeInvalidUTF8KeptRaw(t *testing.T) {
	r, err := New(Options{}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// GBK bytes read with the default utf-8 encoding.
	in := []byte{0xc4, 0xe3, 0xba, 0xc3, '\r', '\n'}
	if got := r.decode(in); got != "\xc4\xe3\xba\xc3" {
		t.Errorf("decode = %q, want raw bytes", got)
	}
	if got := r.decode([]byte("h\xc3\xa9\r\n")); got != "hé" {
		t.Errorf("decode valid utf-8 = %q, want %q", got, "hé")
	}
}

func TestNew_UnknownEncoding(t *testing.T) {
	if _, err := New(Options{Encoding: "klingon-8"}, nil); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestRedact(t *testing.T) {
	got := redact(setArgs(hotspot.Config{Name: "Home", Passphrase: "longpass1"}))
	want := []string{"wlan", "set", "hostednetwork", "ssid=Home", "key=********"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("redact = %v, want %v", got, want)
	}
	if strings.Contains(strings.Join(got, " "), "longpass1") {
		t.Fatal("redacted args still contain the key")
	}
}
