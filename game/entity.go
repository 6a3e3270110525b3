package game

// Player indexa raquetes e placar.
type Player int

const (
	PlayerOne Player = iota // esquerda
	PlayerTwo               // direita
)

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player one"
	case PlayerTwo:
		return "player two"
	}
	return "unknown player"
}

// Rect é centrado em (X, Y); o tamanho não muda depois de criado.
type Rect struct {
	X, Y float64
	W, H uint
}

// Velocidade em unidades de tela por milissegundo. Positivo sobe na tela.
type Paddle struct {
	Rect
	VelY float64
}

// Update move a raquete e mantém Y dentro de [0, height].
func (p *Paddle) Update(dt, height float64) {
	p.Y -= dt * p.VelY
	if p.Y > height {
		p.Y = height
	}
	if p.Y < 0 {
		p.Y = 0
	}
}

type Ball struct {
	Rect
	VelX, VelY float64
}

func (b *Ball) move(dt float64) {
	b.X += dt * b.VelX
	b.Y += dt * b.VelY
}

// Score só cresce durante uma partida.
type Score [2]int
