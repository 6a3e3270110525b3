package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/pong-duel/configs"
)

// Run abre a janela e bloqueia até o jogo terminar. A cadência é fixa em
// cfg.TPS(); o ebiten não compensa o tempo gasto em Update.
func Run(g ebiten.Game, cfg configs.Config, title string) error {
	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.TPS())
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
