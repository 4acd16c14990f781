// Package config loads hotspot settings from a TOML file and HOTSPOT_* env
// vars. The file holds tool settings only; network names and passphrases are
// never written to it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alfredjeanlab/hotspot/internal/netsh"
)

// DefaultHelpURL explains how to share the Internet connection with a hosted network.
const DefaultHelpURL = "http://www.jb51.net/diannaojichu/78584.html"

type Config struct {
	Netsh          string `toml:"netsh,omitempty"`           // HOTSPOT_NETSH (default "netsh")
	OutputEncoding string `toml:"output_encoding,omitempty"` // HOTSPOT_OUTPUT_ENCODING (default "utf-8")
	NATSURL        string `toml:"nats_url,omitempty"`        // HOTSPOT_NATS_URL (optional, empty = no events)
	HelpURL        string `toml:"help_url,omitempty"`        // HOTSPOT_HELP_URL
	LogLevel       string `toml:"log_level,omitempty"`       // HOTSPOT_LOG_LEVEL (default "warn")
}

// keys maps file keys and their env vars to fields.
var keys = map[string]struct {
	env   string
	field func(*Config) *string
}{
	"netsh":           {"HOTSPOT_NETSH", func(c *Config) *string { return &c.Netsh }},
	"output_encoding": {"HOTSPOT_OUTPUT_ENCODING", func(c *Config) *string { return &c.OutputEncoding }},
	"nats_url":        {"HOTSPOT_NATS_URL", func(c *Config) *string { return &c.NATSURL }},
	"help_url":        {"HOTSPOT_HELP_URL", func(c *Config) *string { return &c.HelpURL }},
	"log_level":       {"HOTSPOT_LOG_LEVEL", func(c *Config) *string { return &c.LogLevel }},
}

// Keys returns the settable keys in sorted order.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Netsh:          "netsh",
		OutputEncoding: "utf-8",
		HelpURL:        DefaultHelpURL,
		LogLevel:       "warn",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hotspot", "config.toml"), nil
}

// Load builds the effective settings: defaults, then the file at path (a
// missing file is fine), then env vars. An empty path means DefaultPath.
// Values are not validated here so a bad value can still be repaired with
// "hotspot config set".
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	c := Default()
	if path != "" {
		file, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		c.merge(file)
	}

	for _, k := range keys {
		if v := os.Getenv(k.env); v != "" {
			*k.field(c) = v
		}
	}
	return c, nil
}

// ReadFile decodes only what the file at path sets. A missing file yields an
// empty Config.
func ReadFile(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &c, nil
}

// Save writes c to path, creating the parent directory.
func Save(path string, c *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Set assigns a key by its file name. An empty value clears it.
func (c *Config) Set(key, value string) error {
	k, ok := keys[key]
	if !ok {
		return fmt.Errorf("unknown key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	if value != "" {
		switch key {
		case "log_level":
			if _, err := ParseLevel(value); err != nil {
				return err
			}
		case "output_encoding":
			if _, err := netsh.LookupEncoding(value); err != nil {
				return fmt.Errorf("output_encoding: %w", err)
			}
		}
	}
	*k.field(c) = value
	return nil
}

// Get returns a key's value by its file name.
func (c *Config) Get(key string) (string, bool) {
	k, ok := keys[key]
	if !ok {
		return "", false
	}
	return *k.field(c), true
}

func (c *Config) merge(o *Config) {
	for _, k := range keys {
		if v := *k.field(o); v != "" {
			*k.field(c) = v
		}
	}
}

// ParseLevel maps a log_level value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log_level: invalid value %q", s)
	}
	return l, nil
}
