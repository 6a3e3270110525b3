package game

import "time"

// Clock fornece leituras monotônicas.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Timer calcula o delta entre quadros em milissegundos. Deltas acima de max
// (pausa do depurador, travada do SO) viram zero.
type Timer struct {
	clock Clock
	max   time.Duration
	last  time.Time
	delta float64
}

func NewTimer(clock Clock, max time.Duration) *Timer {
	return &Timer{clock: clock, max: max, last: clock.Now()}
}

// Tick lê o relógio, guarda a leitura e devolve o delta usado pela física.
func (t *Timer) Tick() float64 {
	now := t.clock.Now()
	elapsed := now.Sub(t.last)
	t.last = now

	if elapsed > t.max || elapsed < 0 {
		t.delta = 0
		return 0
	}
	t.delta = float64(elapsed) / float64(time.Millisecond)
	return t.delta
}

// Delta é o último valor devolvido por Tick.
func (t *Timer) Delta() float64 { return t.delta }
