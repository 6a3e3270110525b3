package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wvoliveira/pong-duel/configs"
)

func newTestSession(clock Clock) *Session {
	return NewSession(configs.New(), clock, rand.New(rand.NewSource(42)))
}

func TestNewSession(t *testing.T) {
	s := newTestSession(newFakeClock())
	st := s.State()

	assert.True(t, s.Running())
	assert.Equal(t, Score{}, st.Score)
	assert.InDelta(t, 12.8, st.Paddles[PlayerOne].X, 1e-9)
	assert.InDelta(t, 627.2, st.Paddles[PlayerTwo].X, 1e-9)
	assert.Equal(t, 200.0, st.Paddles[PlayerOne].Y)
	assert.Equal(t, uint(20), st.Paddles[PlayerTwo].W)
	assert.Equal(t, uint(50), st.Paddles[PlayerTwo].H)
	assert.Equal(t, 320.0, st.Ball.X)
}

func TestSessionApply(t *testing.T) {
	s := newTestSession(newFakeClock())

	s.Apply(Intent{Up: [2]bool{true, false}, Down: [2]bool{false, true}})
	st := s.State()
	assert.Equal(t, 1.0, st.Paddles[PlayerOne].VelY)
	assert.Equal(t, -1.0, st.Paddles[PlayerTwo].VelY)

	s.Apply(Intent{Up: [2]bool{true, true}, Down: [2]bool{true, false}})
	st = s.State()
	assert.Equal(t, 0.0, st.Paddles[PlayerOne].VelY, "opposing keys cancel")
	assert.Equal(t, 1.0, st.Paddles[PlayerTwo].VelY)

	s.Apply(Intent{})
	st = s.State()
	assert.Zero(t, st.Paddles[PlayerOne].VelY)
	assert.Zero(t, st.Paddles[PlayerTwo].VelY)
}

func TestSessionStep(t *testing.T) {
	t.Run("moves by elapsed time", func(t *testing.T) {
		clock := newFakeClock()
		s := newTestSession(clock)
		before := s.State()

		clock.Advance(16 * time.Millisecond)
		s.Step(Intent{Up: [2]bool{true, false}})

		after := s.State()
		assert.InDelta(t, before.Ball.X+16*before.Ball.VelX, after.Ball.X, 1e-9)
		assert.InDelta(t, 184.0, after.Paddles[PlayerOne].Y, 1e-9)
		assert.Equal(t, 200.0, after.Paddles[PlayerTwo].Y)
	})

	t.Run("stalled frame does not move", func(t *testing.T) {
		clock := newFakeClock()
		s := newTestSession(clock)
		before := s.State()

		clock.Advance(25 * time.Millisecond)
		s.Step(Intent{Down: [2]bool{true, true}})

		after := s.State()
		assert.Equal(t, before.Ball.X, after.Ball.X)
		assert.Equal(t, before.Ball.Y, after.Ball.Y)
		assert.Equal(t, 200.0, after.Paddles[PlayerOne].Y)
	})

	t.Run("quit stops the loop", func(t *testing.T) {
		clock := newFakeClock()
		s := newTestSession(clock)
		before := s.State()

		clock.Advance(16 * time.Millisecond)
		ev := s.Step(Intent{Quit: true})

		assert.False(t, s.Running())
		assert.Zero(t, ev)
		assert.Equal(t, before.Ball, s.State().Ball)

		clock.Advance(16 * time.Millisecond)
		s.Step(Intent{})
		assert.False(t, s.Running(), "stopped is terminal")
		assert.Equal(t, before.Ball, s.State().Ball)
	})
}

func TestSessionNewGame(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(clock)
	first := s.State().Ball

	// Bola saindo pela direita: ponto do jogador um.
	s.state.Ball.X = 700
	clock.Advance(time.Millisecond)
	ev := s.Step(Intent{})
	assert.True(t, ev.Has(EventScoreOne))
	assert.Equal(t, Score{1, 0}, s.State().Score)
	second := s.State().Ball

	s.Step(Intent{NewGame: true})
	st := s.State()
	assert.Equal(t, Score{}, st.Score)
	assert.True(t, st.Running)
	assert.Equal(t, 200.0, st.Paddles[PlayerOne].Y)

	// O lado alternado sobrevive ao reinício.
	assert.Less(t, first.VelX, 0.0)
	assert.Greater(t, second.VelX, 0.0)
	assert.Less(t, st.Ball.VelX, 0.0)
}
