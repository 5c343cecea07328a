// Package notify surfaces short-lived, non-blocking messages to the user.
package notify

import "log/slog"

// Notifier delivers a transient notification. Implementations must not
// block and must not fail the caller.
type Notifier interface {
	Notify(message string)
}

// Slog logs notifications; the default sink when no UI surface is attached.
type Slog struct {
	Logger *slog.Logger
}

func (s *Slog) Notify(message string) {
	s.Logger.Info("notification", "message", message)
}

// Recorder captures notifications in order, for tests.
type Recorder struct {
	Messages []string
}

func (r *Recorder) Notify(message string) {
	r.Messages = append(r.Messages, message)
}
