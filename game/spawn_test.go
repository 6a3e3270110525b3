package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestSpawner(seed int64) *Spawner {
	return NewSpawner(640, 400, 15, 0.2, rand.New(rand.NewSource(seed)))
}

func TestSpawnCentered(t *testing.T) {
	sp := newTestSpawner(1)
	for i := 0; i < 10; i++ {
		b := sp.Spawn()
		assert.Equal(t, 320.0, b.X)
		assert.Equal(t, 200.0, b.Y)
		assert.Equal(t, uint(15), b.W)
		assert.Equal(t, uint(15), b.H)
	}
}

func TestSpawnAlternatesSide(t *testing.T) {
	sp := newTestSpawner(2)

	first := sp.Spawn()
	assert.Less(t, first.VelX, 0.0, "first ball goes left")

	prev := first.VelX
	for i := 0; i < 20; i++ {
		b := sp.Spawn()
		assert.Equal(t, math.Signbit(prev), !math.Signbit(b.VelX), "spawn %d", i)
		prev = b.VelX
	}
}

func TestSpawnVelocity(t *testing.T) {
	sp := newTestSpawner(3)
	maxAngle := math.Atan(math.Pi) * math.Pi / 4

	for i := 0; i < 500; i++ {
		b := sp.Spawn()
		assert.InDelta(t, 0.2, math.Hypot(b.VelX, b.VelY), 1e-9)
		assert.LessOrEqual(t, math.Abs(b.VelY/b.VelX), math.Tan(maxAngle)+1e-9)
	}
}

func TestSpawnNilRandSource(t *testing.T) {
	sp := NewSpawner(640, 400, 15, 0.2, nil)
	b := sp.Spawn()
	assert.InDelta(t, 0.2, math.Hypot(b.VelX, b.VelY), 1e-9)
}
