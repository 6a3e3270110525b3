package game

import (
	"log/slog"
	"math/rand"

	"github.com/wvoliveira/pong-duel/configs"
)

// Intent é a leitura de teclado de um quadro.
type Intent struct {
	Up, Down [2]bool
	Quit     bool
	NewGame  bool
}

// Session é dona do estado, do timer e do spawner de uma partida local.
// Não é segura para uso concorrente; quem roda o loop é o único dono.
type Session struct {
	state   State
	world   World
	timer   *Timer
	spawner *Spawner
}

func NewSession(cfg configs.Config, clock Clock, rng *rand.Rand) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	s := &Session{
		world: World{
			Width:        cfg.ScreenWidth,
			Height:       cfg.ScreenHeight,
			PaddleWidth:  cfg.PaddleWidth,
			PaddleHeight: cfg.PaddleHeight,
			PaddleInset:  cfg.PaddleInset,
			PaddleSpeed:  cfg.PaddleSpeed,
		},
		timer:   NewTimer(clock, cfg.MaxDelta),
		spawner: NewSpawner(cfg.ScreenWidth, cfg.ScreenHeight, cfg.BallSize, cfg.BallSpeed, rng),
	}
	s.state.NewGame(s.world, s.spawner)
	return s
}

func (s *Session) Running() bool { return s.state.Running }

// State devolve uma cópia; o chamador pode guardar ou enviar à vontade.
func (s *Session) State() State { return s.state }

func (s *Session) World() World { return s.world }

// NewGame reinicia a partida. O lado da próxima bola continua alternando.
func (s *Session) NewGame() {
	s.state.NewGame(s.world, s.spawner)
	slog.Info("new game")
}

// Apply transforma a intenção em velocidades. Teclas opostas se anulam.
func (s *Session) Apply(in Intent) {
	if in.NewGame {
		s.NewGame()
	}
	if in.Quit {
		s.state.Running = false
	}
	for i := range s.state.Paddles {
		p := &s.state.Paddles[i]
		p.VelY = 0
		if in.Up[i] {
			p.VelY += s.world.PaddleSpeed
		}
		if in.Down[i] {
			p.VelY -= s.world.PaddleSpeed
		}
	}
}

// Step roda um quadro: entrada, tempo e física. Parado, não faz nada.
func (s *Session) Step(in Intent) Events {
	if !s.state.Running {
		return 0
	}
	s.Apply(in)
	if !s.state.Running {
		slog.Info("quit requested")
		return 0
	}

	dt := s.timer.Tick()
	ev := s.state.UpdateBall(dt, s.world, s.spawner)
	s.state.UpdatePaddles(dt, s.world)

	if p, ok := ev.Scored(); ok {
		slog.Info("player scored", "player", p.String(), "score", s.state.Score[p])
	}
	return ev
}
