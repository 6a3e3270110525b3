package input

import (
	"fmt"

	"github.com/wvoliveira/pong-duel/configs"
	"github.com/wvoliveira/pong-duel/game"
)

// Action é o que uma tecla significa para o jogo.
type Action int

const (
	P1Up Action = iota
	P1Down
	P2Up
	P2Down
	Quit
	NewGame

	actionCount
)

var actionNames = [actionCount]string{
	P1Up:    "p1_up",
	P1Down:  "p1_down",
	P2Up:    "p2_up",
	P2Down:  "p2_down",
	Quit:    "quit",
	NewGame: "new_game",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions lista todas as ações, na ordem.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// Bindings devolve o nome da tecla configurada para cada ação.
func Bindings(k configs.Keys) map[Action]string {
	return map[Action]string{
		P1Up:    k.P1Up,
		P1Down:  k.P1Down,
		P2Up:    k.P2Up,
		P2Down:  k.P2Down,
		Quit:    k.Quit,
		NewGame: k.NewGame,
	}
}

// Source responde se a tecla de uma ação está pressionada agora.
type Source interface {
	Held(a Action) bool
}

// Reader faz a leitura por nível a cada quadro. Só NewGame é por borda,
// senão segurar a tecla reiniciaria a partida a cada quadro.
type Reader struct {
	src  Source
	prev [actionCount]bool
}

func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

func (r *Reader) Read() game.Intent {
	var now [actionCount]bool
	for a := Action(0); a < actionCount; a++ {
		now[a] = r.src.Held(a)
	}

	in := game.Intent{
		Up:      [2]bool{now[P1Up], now[P2Up]},
		Down:    [2]bool{now[P1Down], now[P2Down]},
		Quit:    now[Quit],
		NewGame: now[NewGame] && !r.prev[NewGame],
	}
	r.prev = now
	return in
}
