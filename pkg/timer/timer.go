// Package timer provides the stopwatch capability the suite
// runner uses to measure a run.
package timer

import (
	"sync"
	"time"
)

// Func is a stateful stopwatch. Called with reset set to true it
// restarts its clock and returns 0; otherwise it returns the
// seconds elapsed since the last reset.
type Func func(reset bool) float64

// Monotonic returns a Func backed by the runtime's monotonic
// clock. It is safe for concurrent use.
func Monotonic() Func {
	return clock(time.Now)
}

// clock builds a stopwatch on top of now, which must return
// times carrying a monotonic reading for wall-clock changes to be
// ignored.
func clock(now func() time.Time) Func {
	var (
		mu    sync.Mutex
		start = now()
	)

	return func(reset bool) float64 {
		mu.Lock()
		defer mu.Unlock()

		if reset {
			start = now()
			return 0
		}
		return now().Sub(start).Seconds()
	}
}

// Fixed returns a Func that always reports elapsed seconds after
// a reset. It is meant for deterministic tests.
func Fixed(elapsed float64) Func {
	return func(reset bool) float64 {
		if reset {
			return 0
		}
		return elapsed
	}
}
