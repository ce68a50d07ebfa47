package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_ResetAndElapsed(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base
	fn := clock(func() time.Time { return current })

	current = base.Add(10 * time.Second)
	assert.Equal(t, 0.0, fn(true))

	current = current.Add(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, fn(false), 1e-9)

	current = current.Add(500 * time.Millisecond)
	assert.InDelta(t, 2.0, fn(false), 1e-9)

	assert.Equal(t, 0.0, fn(true))
	assert.Equal(t, 0.0, fn(false))
}

func TestMonotonic_NonNegative(t *testing.T) {
	fn := Monotonic()
	assert.Equal(t, 0.0, fn(true))
	assert.GreaterOrEqual(t, fn(false), 0.0)
}

func TestFixed(t *testing.T) {
	fn := Fixed(0.25)
	assert.Equal(t, 0.0, fn(true))
	assert.Equal(t, 0.25, fn(false))
	assert.Equal(t, 0.25, fn(false))
}
