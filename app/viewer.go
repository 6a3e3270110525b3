package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/pong-duel/configs"
	"github.com/wvoliveira/pong-duel/game"
	"github.com/wvoliveira/pong-duel/render"
	"github.com/wvoliveira/pong-duel/spectate"
)

// Viewer mostra uma partida remota. Não envia entrada nenhuma.
type Viewer struct {
	cfg  configs.Config
	feed *spectate.Feed
	quit ebiten.Key
}

func NewViewer(cfg configs.Config, feed *spectate.Feed) (*Viewer, error) {
	v := &Viewer{cfg: cfg, feed: feed, quit: -1}
	if cfg.Keys.Quit != "" {
		if err := v.quit.UnmarshalText([]byte(cfg.Keys.Quit)); err != nil {
			return nil, fmt.Errorf("quit key %q: %w", cfg.Keys.Quit, err)
		}
	}
	return v, nil
}

func (v *Viewer) Update() error {
	if ebiten.IsWindowBeingClosed() || (v.quit >= 0 && ebiten.IsKeyPressed(v.quit)) {
		return ebiten.Termination
	}
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	s, ok := v.feed.Latest()
	if !ok {
		screen.Fill(render.Background)
		drawText(screen, "waiting for game...", v.cfg.ScreenWidth/2, v.cfg.ScreenHeight/2)
		return
	}
	render.Scene(canvas{img: screen}, s)
	drawText(screen, fmt.Sprintf("%d   %d", s.Score[game.PlayerOne], s.Score[game.PlayerTwo]), v.cfg.ScreenWidth/2, 8)

	select {
	case <-v.feed.Done():
		drawText(screen, "disconnected", v.cfg.ScreenWidth/2, v.cfg.ScreenHeight-20)
	default:
		if !s.Running {
			drawText(screen, "game over", v.cfg.ScreenWidth/2, v.cfg.ScreenHeight-20)
		}
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(v.cfg.ScreenWidth), int(v.cfg.ScreenHeight)
}
