package monitor

import (
	"sort"
	"sync"
)

// Run statuses shown on the dashboard.
const (
	StatusIdle      = "idle"
	StatusRunning   = "running"
	StatusCompleted = "completed"
)

// Dashboard keeps the live state of the most recent run.
type Dashboard struct {
	mu    sync.RWMutex
	state DashboardState
}

// DashboardState is a point-in-time view of a run.
type DashboardState struct {
	RunID    string      `json:"run_id"`
	Status   string      `json:"status"`
	Total    int         `json:"total"`
	Passed   int         `json:"passed"`
	Failed   int         `json:"failed"`
	Elapsed  float64     `json:"elapsed"`
	Cases    []CaseState `json:"cases"`
	Progress string      `json:"progress"`
}

// CaseState is the dashboard view of one finished case.
type CaseState struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Call     string `json:"call,omitempty"`
	Message  string `json:"message,omitempty"`
	Location string `json:"location,omitempty"`
}

// NewDashboard creates an idle dashboard.
func NewDashboard() *Dashboard {
	return &Dashboard{
		state: DashboardState{Status: StatusIdle},
	}
}

// UpdateFromEvent applies a run event. A run started event
// discards the state of the previous run.
func (d *Dashboard) UpdateFromEvent(event Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch event.Type {
	case EventRunStarted:
		d.state = DashboardState{
			RunID:  event.RunID,
			Status: StatusRunning,
			Total:  event.Total,
		}
	case EventCasePassed:
		d.state.Passed++
		d.state.Progress += "."
		d.addCase(CaseState{
			Index:  event.Index,
			Name:   event.Case,
			Status: "passed",
		})
	case EventCaseFailed:
		d.state.Failed++
		d.state.Progress += "F"
		d.addCase(CaseState{
			Index:    event.Index,
			Name:     event.Case,
			Status:   "failed",
			Call:     event.Call,
			Message:  event.Message,
			Location: event.Location,
		})
	case EventRunCompleted:
		d.state.Status = StatusCompleted
		d.state.Elapsed = event.Elapsed
	}
}

func (d *Dashboard) addCase(cs CaseState) {
	d.state.Cases = append(d.state.Cases, cs)
	sort.SliceStable(d.state.Cases, func(i, j int) bool {
		return d.state.Cases[i].Index < d.state.Cases[j].Index
	})
}

// Snapshot returns a copy of the current state.
func (d *Dashboard) Snapshot() DashboardState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	snap := d.state
	snap.Cases = make([]CaseState, len(d.state.Cases))
	copy(snap.Cases, d.state.Cases)
	return snap
}

// BuildDashboard replays every event of a collector into a new
// dashboard.
func BuildDashboard(collector *EventCollector) *Dashboard {
	d := NewDashboard()
	for _, event := range collector.Events() {
		d.UpdateFromEvent(event)
	}
	return d
}
