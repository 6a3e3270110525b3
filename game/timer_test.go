package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestTimerTick(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock, 20*time.Millisecond)

	clock.Advance(16 * time.Millisecond)
	assert.InDelta(t, 16.0, timer.Tick(), 1e-9)
	assert.InDelta(t, 16.0, timer.Delta(), 1e-9)

	clock.Advance(20 * time.Millisecond)
	assert.InDelta(t, 20.0, timer.Tick(), 1e-9, "the limit itself is kept")

	clock.Advance(500 * time.Microsecond)
	assert.InDelta(t, 0.5, timer.Tick(), 1e-9)
}

func TestTimerClampsStalls(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock, 20*time.Millisecond)

	clock.Advance(21 * time.Millisecond)
	assert.Zero(t, timer.Tick())

	// A leitura travada vira a nova referência mesmo assim.
	clock.Advance(10 * time.Millisecond)
	assert.InDelta(t, 10.0, timer.Tick(), 1e-9)

	clock.Advance(3 * time.Second)
	assert.Zero(t, timer.Tick())
}

func TestTimerSameInstant(t *testing.T) {
	timer := NewTimer(newFakeClock(), 20*time.Millisecond)
	assert.Zero(t, timer.Tick())
}
