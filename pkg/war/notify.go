package war

import "github.com/rs/zerolog"

// Notification priorities, highest first.
const (
	PriorityUrgent = 1
	PriorityHigh   = 2
	PriorityNormal = 3
)

// Notifier receives user-facing announcements (war declarations, forced
// surrenders, nuclear detonations). Fire-and-forget: the engine never
// reads anything back and never fails on a sink error.
type Notifier interface {
	Notify(priority int, message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(int, string) {}

// Notification is one queued announcement.
type Notification struct {
	Priority int
	Message  string
}

// ListNotifier collects notifications in order, for turn summaries and
// tests.
type ListNotifier struct {
	Items []Notification
}

func (l *ListNotifier) Notify(priority int, message string) {
	l.Items = append(l.Items, Notification{Priority: priority, Message: message})
}

// LogNotifier forwards notifications to a zerolog logger.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (l LogNotifier) Notify(priority int, message string) {
	l.Logger.Info().Int("priority", priority).Msg(message)
}
