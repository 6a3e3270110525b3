package game

import (
	"math"
	"math/rand"
	"time"
)

// Spawner cria bolas no centro da tela, alternando o lado a cada chamada.
// O lado não volta ao início num novo jogo.
type Spawner struct {
	width, height float64
	size          uint
	speed         float64
	side          float64
	rng           *rand.Rand
}

func NewSpawner(width, height float64, size uint, speed float64, rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Spawner{
		width:  width,
		height: height,
		size:   size,
		speed:  speed,
		side:   1,
		rng:    rng,
	}
}

// Spawn devolve uma bola nova. O ângulo passa por atan para ficar perto da
// horizontal: atan(u)*pi/4 com u em [-pi, pi].
func (s *Spawner) Spawn() Ball {
	s.side = -s.side

	u := s.rng.Float64()*2*math.Pi - math.Pi
	angle := math.Atan(u) * math.Pi / 4

	return Ball{
		Rect: Rect{X: s.width / 2, Y: s.height / 2, W: s.size, H: s.size},
		VelX: s.speed * math.Cos(angle) * s.side,
		VelY: s.speed * math.Sin(angle) * s.side,
	}
}
