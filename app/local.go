package app

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wvoliveira/pong-duel/configs"
	"github.com/wvoliveira/pong-duel/game"
	"github.com/wvoliveira/pong-duel/input"
	"github.com/wvoliveira/pong-duel/render"
)

// Publisher recebe uma cópia do estado a cada quadro.
type Publisher interface {
	Publish(s game.State)
}

// Sounder toca os eventos de física de um quadro.
type Sounder interface {
	Play(ev game.Events)
}

type Option func(*Local)

func WithPublisher(p Publisher) Option {
	return func(l *Local) { l.publisher = p }
}

func WithSound(s Sounder) Option {
	return func(l *Local) { l.sound = s }
}

// Local é a partida de dois jogadores no mesmo teclado.
type Local struct {
	ctx       context.Context
	cfg       configs.Config
	session   *game.Session
	reader    *input.Reader
	publisher Publisher
	sound     Sounder
}

func NewLocal(ctx context.Context, cfg configs.Config, session *game.Session, opts ...Option) (*Local, error) {
	kb, err := newKeyboard(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	l := &Local{
		ctx:     ctx,
		cfg:     cfg,
		session: session,
		reader:  input.NewReader(kb),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Update roda a cada tick: entrada, tempo, física e depois os extras.
func (l *Local) Update() error {
	in := l.reader.Read()
	if l.ctx.Err() != nil {
		in.Quit = true
	}

	ev := l.session.Step(in)
	if l.publisher != nil {
		l.publisher.Publish(l.session.State())
	}
	if !l.session.Running() {
		return ebiten.Termination
	}

	if l.sound != nil {
		l.sound.Play(ev)
	}
	return nil
}

func (l *Local) Draw(screen *ebiten.Image) {
	s := l.session.State()
	render.Scene(canvas{img: screen}, s)

	if !l.cfg.ShowHUD {
		return
	}
	drawText(screen, fmt.Sprintf("%d   %d", s.Score[game.PlayerOne], s.Score[game.PlayerTwo]), l.cfg.ScreenWidth/2, 8)
	help := fmt.Sprintf("P1: %s/%s  |  P2: %s/%s  |  %s: new game",
		l.cfg.Keys.P1Up, l.cfg.Keys.P1Down, l.cfg.Keys.P2Up, l.cfg.Keys.P2Down, l.cfg.Keys.NewGame)
	drawText(screen, help, l.cfg.ScreenWidth/2, l.cfg.ScreenHeight-20)
}

func (l *Local) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(l.cfg.ScreenWidth), int(l.cfg.ScreenHeight)
}
