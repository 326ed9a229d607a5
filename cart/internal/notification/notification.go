package notification

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Alturino/salon/internal/log"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier receives short user-visible messages. Implementations are
// fire-and-forget; callers never consume a result.
type Notifier interface {
	Notify(c context.Context, severity Severity, message string)
}

type LogNotifier struct{}

func NewLogNotifier() LogNotifier {
	return LogNotifier{}
}

func (LogNotifier) Notify(c context.Context, severity Severity, message string) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "LogNotifier Notify").
		Str(log.KeySeverity, string(severity)).
		Logger()

	if severity == SeverityError {
		logger.Error().Msg(message)
		return
	}
	logger.Info().Msg(message)
}

// Recorder keeps every notification it receives, for assertions in tests.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

type Event struct {
	Severity Severity
	Message  string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(_ context.Context, severity Severity, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Severity: severity, Message: message})
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]Event, len(r.events))
	copy(events, r.events)
	return events
}
