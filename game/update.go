package game

// Events registra o que aconteceu num passo de física.
type Events uint8

const (
	EventWallBounce Events = 1 << iota
	EventPaddleBounce
	EventScoreOne
	EventScoreTwo
)

func (e Events) Has(flag Events) bool { return e&flag != 0 }

// Scored devolve quem pontuou, se alguém pontuou.
func (e Events) Scored() (Player, bool) {
	switch {
	case e.Has(EventScoreOne):
		return PlayerOne, true
	case e.Has(EventScoreTwo):
		return PlayerTwo, true
	}
	return 0, false
}

// UpdateBall avança a bola em fases: movimento, ponto, paredes, raquetes.
// Depois de um ponto a bola nova não passa pelas outras fases neste passo.
func (s *State) UpdateBall(dt float64, w World, sp *Spawner) Events {
	b := &s.Ball
	b.move(dt)

	switch {
	case b.X < 0:
		s.Score[PlayerTwo]++
		s.Ball = sp.Spawn()
		return EventScoreTwo
	case b.X > w.Width:
		s.Score[PlayerOne]++
		s.Ball = sp.Spawn()
		return EventScoreOne
	}

	var ev Events

	// Só inverte quando a bola ainda está saindo, senão ela treme fora do campo.
	if (b.Y < 0 && b.VelY < 0) || (b.Y > w.Height && b.VelY > 0) {
		b.VelY = -b.VelY
		ev |= EventWallBounce
	}

	for i := range s.Paddles {
		p := &s.Paddles[i]
		if !Overlap(b.Rect, p.Rect) {
			continue
		}
		// Mesma ideia: só inverte se a bola vai na direção da raquete.
		if (p.X-b.X)*b.VelX > 0 {
			b.VelX = -b.VelX
			ev |= EventPaddleBounce
		}
	}
	return ev
}

// UpdatePaddles move as duas raquetes.
func (s *State) UpdatePaddles(dt float64, w World) {
	for i := range s.Paddles {
		s.Paddles[i].Update(dt, w.Height)
	}
}
