package notify

import (
	"sync"

	"go.uber.org/zap"

	"rupeeshop-client/internal/logger"
	"rupeeshop-client/internal/metrics"
)

// Severity is the toast level shown to the user.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Notifier is the observable side channel for user-facing notifications.
// Every state-changing store operation reports its outcome here.
type Notifier interface {
	Notify(severity Severity, message string)
}

// LogNotifier writes notifications to the application log. It is the default
// sink when no UI is attached.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(severity Severity, message string) {
	metrics.Notifications.WithLabelValues(string(severity)).Inc()

	log := logger.L().With(zap.String("severity", string(severity)))
	switch severity {
	case SeverityError:
		log.Warn(message)
	default:
		log.Info(message)
	}
}

// Event is a recorded notification.
type Event struct {
	Severity Severity
	Message  string
}

// Collector records notifications for inspection in tests.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Notify(severity Severity, message string) {
	metrics.Notifications.WithLabelValues(string(severity)).Inc()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, Event{Severity: severity, Message: message})
}

// Events returns a copy of everything recorded so far.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Reset clears recorded events.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = nil
}
