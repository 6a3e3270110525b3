package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone é uma onda quadrada suave com decaimento linear, estilo bip de arcade.
type Tone struct {
	sr    beep.SampleRate
	freq  float64
	total int
	pos   int
}

func NewTone(sr beep.SampleRate, freq float64, d time.Duration) *Tone {
	return &Tone{sr: sr, freq: freq, total: sr.N(d)}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		x := float64(t.pos) / float64(t.sr)

		sample := 0.0
		sample += 0.6 * math.Sin(2*math.Pi*t.freq*x)
		sample += 0.2 * math.Sin(2*math.Pi*t.freq*3*x)

		envelope := 1 - float64(t.pos)/float64(t.total)
		sample *= envelope * 0.25

		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error { return nil }

// Len é a duração total em amostras.
func (t *Tone) Len() int { return t.total }
