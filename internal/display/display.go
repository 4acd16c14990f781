// Package display renders controller entries for a person at a terminal.
package display

import (
	"fmt"
	"io"
	"sync"

	"github.com/alfredjeanlab/hotspot/internal/hotspot"
	"github.com/alfredjeanlab/hotspot/internal/ui"
)

// TimeLayout is the timestamp printed before each operation's lines.
const TimeLayout = "2006/01/02 15:04:05"

// Console writes entries as a scrollback log: a timestamp when a new
// operation begins, then one block per entry. Warnings are red and successes
// green when color is enabled.
type Console struct {
	mu      sync.Mutex
	w       io.Writer
	lastOp  string
	written bool
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Report implements hotspot.Sink.
func (c *Console) Report(e hotspot.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.written || e.Op != c.lastOp {
		fmt.Fprintln(c.w, ui.RenderMuted(e.Time.Format(TimeLayout)))
		c.lastOp = e.Op
		c.written = true
	}

	text := e.Text
	switch e.Level {
	case hotspot.LevelWarning:
		text = ui.RenderWarning(text)
	case hotspot.LevelSuccess:
		text = ui.RenderSuccess(text)
	}
	fmt.Fprintln(c.w, text)

	// Blank line after each finished operation.
	if e.Final() {
		fmt.Fprintln(c.w)
	}
}

// Multi fans entries out to several sinks in order.
type Multi []hotspot.Sink

// Report implements hotspot.Sink.
func (m Multi) Report(e hotspot.Entry) {
	for _, s := range m {
		if s != nil {
			s.Report(e)
		}
	}
}
