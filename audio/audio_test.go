package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"

	"github.com/wvoliveira/pong-duel/game"
)

func TestToneStream(t *testing.T) {
	rate := beep.SampleRate(44100)
	tone := NewTone(rate, 440, 10*time.Millisecond)
	assert.Equal(t, 441, tone.Len())

	samples := make([][2]float64, 400)
	n, ok := tone.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 400, n)
	for i := 0; i < n; i++ {
		assert.LessOrEqual(t, samples[i][0], 1.0)
		assert.GreaterOrEqual(t, samples[i][0], -1.0)
		assert.Equal(t, samples[i][0], samples[i][1])
	}

	n, ok = tone.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 41, n, "tail is shorter than the buffer")

	n, ok = tone.Stream(samples)
	assert.False(t, ok)
	assert.Zero(t, n)
	assert.NoError(t, tone.Err())
}

func TestToneFadesOut(t *testing.T) {
	tone := NewTone(beep.SampleRate(8000), 100, 100*time.Millisecond)
	samples := make([][2]float64, tone.Len())
	tone.Stream(samples)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			if s[0] > m {
				m = s[0]
			} else if -s[0] > m {
				m = -s[0]
			}
		}
		return m
	}
	assert.Greater(t, peak(0, 200), peak(600, 800))
}

func TestCues(t *testing.T) {
	assert.Empty(t, cues(0))
	assert.Equal(t, []cue{cueWall}, cues(game.EventWallBounce))
	assert.Equal(t, []cue{cuePaddle, cueWall}, cues(game.EventWallBounce|game.EventPaddleBounce))
	assert.Equal(t, []cue{cueScore}, cues(game.EventScoreTwo))
}

func TestPlayWithoutInit(t *testing.T) {
	p := NewPlayer()
	p.Play(game.EventScoreOne)
	p.Close()
	assert.Equal(t, 0, p.mixer.Len())
}
