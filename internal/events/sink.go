package events

import (
	"context"
	"log/slog"

	"github.com/alfredjeanlab/hotspot/internal/hotspot"
)

// Sink publishes controller entries. Every entry goes to TopicLog; the final
// entry of an operation is also published to its outcome topic. Publish
// errors are logged and otherwise ignored.
type Sink struct {
	pub    Publisher
	logger *slog.Logger
}

var _ hotspot.Sink = (*Sink)(nil)

// NewSink creates a Sink publishing through pub.
func NewSink(pub Publisher, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{pub: pub, logger: logger}
}

// Report implements hotspot.Sink.
func (s *Sink) Report(e hotspot.Entry) {
	s.publish(TopicLog, LogLine{
		Op:      e.Op,
		Time:    e.Time,
		Action:  string(e.Action),
		Level:   e.Level.String(),
		Text:    e.Text,
		Outcome: e.Outcome,
		State:   e.State.String(),
	})
	if !e.Final() {
		return
	}
	topic, event := outcomeEvent(e)
	s.publish(topic, event)
}

// outcomeEvent maps a final entry to its topic and payload.
func outcomeEvent(e hotspot.Entry) (string, any) {
	ok := e.Outcome == hotspot.StartSuccess.String()
	switch {
	case e.Action == hotspot.ActionStart && ok:
		return TopicStarted, Started{Op: e.Op, Time: e.Time}
	case e.Action == hotspot.ActionStart:
		return TopicStartFailed, StartFailed{Op: e.Op, Time: e.Time, Outcome: e.Outcome, Output: e.Text}
	case ok:
		return TopicStopped, Stopped{Op: e.Op, Time: e.Time}
	default:
		return TopicStopFailed, StopFailed{Op: e.Op, Time: e.Time, Output: e.Text}
	}
}

func (s *Sink) publish(topic string, event any) {
	if err := s.pub.Publish(context.Background(), topic, event); err != nil {
		s.logger.Warn("events: publish failed", "topic", topic, "err", err)
	}
}

// Entry converts a received log line back into a hotspot.Entry, e.g. to
// render it with a display sink.
func (l LogLine) Entry() hotspot.Entry {
	e := hotspot.Entry{
		Time:    l.Time,
		Op:      l.Op,
		Action:  hotspot.Action(l.Action),
		Text:    l.Text,
		Outcome: l.Outcome,
	}
	switch l.Level {
	case hotspot.LevelWarning.String():
		e.Level = hotspot.LevelWarning
	case hotspot.LevelSuccess.String():
		e.Level = hotspot.LevelSuccess
	}
	if l.State == hotspot.Running.String() {
		e.State = hotspot.Running
	}
	return e
}
