// Package events publishes hotspot activity on a NATS bus so other processes
// can follow what a controller is doing.
package events

import (
	"context"
	"time"
)

// Event topic constants
const (
	TopicPrefix = "hotspot."
	TopicAll    = "hotspot.>"

	// TopicLog carries every line the controller reports.
	TopicLog = "hotspot.log"

	TopicStarted     = "hotspot.started"
	TopicStartFailed = "hotspot.start_failed"
	TopicStopped     = "hotspot.stopped"
	TopicStopFailed  = "hotspot.stop_failed"
)

// Event types

// LogLine mirrors one hotspot.Entry. It never carries the passphrase.
type LogLine struct {
	Op      string    `json:"op"`
	Time    time.Time `json:"time"`
	Action  string    `json:"action"`
	Level   string    `json:"level"`
	Text    string    `json:"text"`
	Outcome string    `json:"outcome,omitempty"`
	State   string    `json:"state"`
}

// Started is published when a start sequence completes.
type Started struct {
	Op   string    `json:"op"`
	Time time.Time `json:"time"`
}

// StartFailed is published when a start sequence aborts.
type StartFailed struct {
	Op      string    `json:"op"`
	Time    time.Time `json:"time"`
	Outcome string    `json:"outcome"` // mode_set_failed, credential_set_failed, start_failed, invalid
	Output  string    `json:"output,omitempty"`
}

// Stopped is published when the hosted network was stopped.
type Stopped struct {
	Op   string    `json:"op"`
	Time time.Time `json:"time"`
}

// StopFailed is published when the stop command failed.
type StopFailed struct {
	Op     string    `json:"op"`
	Time   time.Time `json:"time"`
	Output string    `json:"output,omitempty"`
}

// Message is a raw payload received from the bus.
type Message struct {
	Topic string
	Data  []byte
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
