package monitor

import (
	"sync"
	"time"

	"digital.vasic.minitest/pkg/assertion"
)

// EventCollector captures run events and aggregate statistics.
// It is safe for concurrent use.
type EventCollector struct {
	mu       sync.RWMutex
	events   []Event
	handlers []func(Event)
	stats    CollectorStats
}

// CollectorStats holds aggregate statistics.
type CollectorStats struct {
	Runs   int `json:"runs"`
	Cases  int `json:"cases"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// NewEventCollector creates a new event collector.
func NewEventCollector() *EventCollector {
	return &EventCollector{
		events: make([]Event, 0, 64),
	}
}

// OnEvent registers a handler to be called for each event.
func (c *EventCollector) OnEvent(handler func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers.
func (c *EventCollector) Emit(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	switch event.Type {
	case EventRunCompleted:
		c.stats.Runs++
	case EventCasePassed:
		c.stats.Cases++
		c.stats.Passed++
	case EventCaseFailed:
		c.stats.Cases++
		c.stats.Failed++
	}
	handlers := make([]func(Event), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// EmitRunStarted emits a run started event.
func (c *EventCollector) EmitRunStarted(runID string, total int) {
	c.Emit(Event{
		Type:  EventRunStarted,
		RunID: runID,
		Total: total,
	})
}

// EmitCasePassed emits a case passed event.
func (c *EventCollector) EmitCasePassed(
	runID string, index int, name string,
) {
	c.Emit(Event{
		Type:  EventCasePassed,
		RunID: runID,
		Index: index,
		Case:  name,
	})
}

// EmitCaseFailed emits a case failed event describing its
// failure.
func (c *EventCollector) EmitCaseFailed(
	runID string, index int, name string, f assertion.Failure,
) {
	c.Emit(Event{
		Type:     EventCaseFailed,
		RunID:    runID,
		Index:    index,
		Case:     name,
		Call:     f.Call(),
		Message:  f.Detail(),
		Location: f.Location(),
	})
}

// EmitRunCompleted emits a run completed event.
func (c *EventCollector) EmitRunCompleted(
	runID string, total, failures int, elapsed float64,
) {
	c.Emit(Event{
		Type:     EventRunCompleted,
		RunID:    runID,
		Total:    total,
		Failures: failures,
		Elapsed:  elapsed,
	})
}

// Events returns a copy of all collected events.
func (c *EventCollector) Events() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Event, len(c.events))
	copy(result, c.events)
	return result
}

// Stats returns the current aggregate statistics.
func (c *EventCollector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Reset clears all collected events and statistics.
func (c *EventCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.stats = CollectorStats{}
}
