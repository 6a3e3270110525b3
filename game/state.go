package game

// World guarda as dimensões fixas do campo e das raquetes.
type World struct {
	Width, Height float64
	PaddleWidth   uint
	PaddleHeight  uint
	PaddleInset   float64
	PaddleSpeed   float64
}

// State é o estado completo de uma partida. É também o que vai para os
// espectadores, então todos os campos são exportados.
type State struct {
	Paddles [2]Paddle
	Ball    Ball
	Score   Score
	Running bool
}

// NewGame recoloca raquetes, zera o placar e lança uma bola nova.
func (s *State) NewGame(w World, sp *Spawner) {
	s.Paddles[PlayerOne] = Paddle{Rect: Rect{
		X: w.Width * w.PaddleInset, Y: w.Height / 2,
		W: w.PaddleWidth, H: w.PaddleHeight,
	}}
	s.Paddles[PlayerTwo] = Paddle{Rect: Rect{
		X: w.Width * (1 - w.PaddleInset), Y: w.Height / 2,
		W: w.PaddleWidth, H: w.PaddleHeight,
	}}
	s.Ball = sp.Spawn()
	s.Score = Score{}
	s.Running = true
}
