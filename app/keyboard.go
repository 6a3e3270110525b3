package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/pong-duel/configs"
	"github.com/wvoliveira/pong-duel/input"
)

// keyboard liga as ações às teclas do ebiten. Fechar a janela conta como Quit.
type keyboard struct {
	keys map[input.Action]ebiten.Key
}

func newKeyboard(k configs.Keys) (*keyboard, error) {
	kb := &keyboard{keys: make(map[input.Action]ebiten.Key)}
	for action, name := range input.Bindings(k) {
		if name == "" {
			continue
		}
		var key ebiten.Key
		if err := key.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("key %q for %s: %w", name, action, err)
		}
		kb.keys[action] = key
	}
	return kb, nil
}

func (kb *keyboard) Held(a input.Action) bool {
	if a == input.Quit && ebiten.IsWindowBeingClosed() {
		return true
	}
	key, ok := kb.keys[a]
	return ok && ebiten.IsKeyPressed(key)
}
