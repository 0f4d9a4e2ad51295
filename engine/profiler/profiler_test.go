package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickReportsOnceIntervalElapses(t *testing.T) {
	now := time.Unix(0, 0)
	p := NewProfiler(
		WithInterval(2*time.Second),
		WithClock(func() time.Time { return now }),
	)

	assert.False(t, p.Tick())
	now = now.Add(time.Second)
	assert.False(t, p.Tick())
	now = now.Add(time.Second)
	assert.True(t, p.Tick())

	// Interval restarts after a report.
	assert.False(t, p.Tick())
}

func TestTickInvokesSampleOnReport(t *testing.T) {
	now := time.Unix(0, 0)
	sampled := 0
	p := NewProfiler(
		WithInterval(time.Second),
		WithClock(func() time.Time { return now }),
		WithSample(func() string {
			sampled++
			return "pointer: (0.50, 0.50)"
		}),
	)

	p.Tick()
	assert.Zero(t, sampled)

	now = now.Add(time.Second)
	p.Tick()
	assert.Equal(t, 1, sampled)
}
