package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/wvoliveira/pong-duel/game"
)

const sampleRate = beep.SampleRate(44100)

type cue struct {
	freq float64
	dur  time.Duration
}

var (
	cueWall   = cue{freq: 440, dur: 40 * time.Millisecond}
	cuePaddle = cue{freq: 660, dur: 50 * time.Millisecond}
	cueScore  = cue{freq: 220, dur: 250 * time.Millisecond}
)

// cues escolhe os sons de um passo. Ponto tem prioridade sobre quicadas.
func cues(ev game.Events) []cue {
	if _, ok := ev.Scored(); ok {
		return []cue{cueScore}
	}
	var out []cue
	if ev.Has(game.EventPaddleBounce) {
		out = append(out, cuePaddle)
	}
	if ev.Has(game.EventWallBounce) {
		out = append(out, cueWall)
	}
	return out
}

// Player toca os eventos de física na saída de áudio padrão.
// Sem Init, Play não faz nada.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Play(ev game.Events) {
	if ev == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	list := cues(ev)
	if len(list) == 0 {
		return
	}
	speaker.Lock()
	for _, c := range list {
		p.mixer.Add(NewTone(sampleRate, c.freq, c.dur))
	}
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
