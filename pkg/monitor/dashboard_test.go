package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_Idle(t *testing.T) {
	snap := NewDashboard().Snapshot()
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Empty(t, snap.Cases)
}

func TestDashboard_FollowsRun(t *testing.T) {
	c := NewEventCollector()
	c.EmitRunStarted("r1", 3)
	c.EmitCasePassed("r1", 0, "a")
	c.EmitCaseFailed("r1", 1, "b", sampleFailure())
	c.EmitCasePassed("r1", 2, "c")
	c.EmitRunCompleted("r1", 3, 1, 0.25)

	snap := BuildDashboard(c).Snapshot()

	assert.Equal(t, "r1", snap.RunID)
	assert.Equal(t, StatusCompleted, snap.Status)
	assert.Equal(t, 3, snap.Total)
	assert.Equal(t, 2, snap.Passed)
	assert.Equal(t, 1, snap.Failed)
	assert.Equal(t, ".F.", snap.Progress)
	assert.Equal(t, 0.25, snap.Elapsed)
	require.Len(t, snap.Cases, 3)
	assert.Equal(t, "failed", snap.Cases[1].Status)
	assert.Equal(t, "4 != 6", snap.Cases[1].Message)
}

func TestDashboard_NewRunDiscardsPrevious(t *testing.T) {
	d := NewDashboard()
	d.UpdateFromEvent(Event{Type: EventRunStarted, RunID: "r1", Total: 1})
	d.UpdateFromEvent(Event{Type: EventCasePassed, RunID: "r1", Case: "a"})
	d.UpdateFromEvent(Event{Type: EventRunStarted, RunID: "r2", Total: 2})

	snap := d.Snapshot()
	assert.Equal(t, "r2", snap.RunID)
	assert.Equal(t, StatusRunning, snap.Status)
	assert.Empty(t, snap.Cases)
	assert.Equal(t, "", snap.Progress)
}

func TestDashboard_Snapshot_IsCopy(t *testing.T) {
	d := NewDashboard()
	d.UpdateFromEvent(Event{Type: EventCasePassed, Case: "a"})

	snap := d.Snapshot()
	snap.Cases[0].Name = "mutated"

	assert.Equal(t, "a", d.Snapshot().Cases[0].Name)
}
