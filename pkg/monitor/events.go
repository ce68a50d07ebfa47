// Package monitor collects run events from the suite runner and
// streams them to live subscribers over WebSocket.
package monitor

import "time"

// EventType represents the type of run event.
type EventType string

const (
	EventRunStarted   EventType = "run_started"
	EventCasePassed   EventType = "case_passed"
	EventCaseFailed   EventType = "case_failed"
	EventRunCompleted EventType = "run_completed"
)

// Event represents a lifecycle event during a suite run.
type Event struct {
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
	Case      string    `json:"case,omitempty"`
	Index     int       `json:"index"`
	Call      string    `json:"call,omitempty"`
	Message   string    `json:"message,omitempty"`
	Location  string    `json:"location,omitempty"`
	Total     int       `json:"total,omitempty"`
	Failures  int       `json:"failures,omitempty"`
	Elapsed   float64   `json:"elapsed,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
