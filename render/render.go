package render

import (
	"image/color"
	"math"

	"github.com/wvoliveira/pong-duel/game"
)

var (
	Background = color.Black
	Foreground = color.White
)

// Canvas é a superfície de desenho usada por Scene.
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, w, h int, c color.Color)
}

// Pixels converte um Rect centrado para o canto superior esquerdo em pixels.
func Pixels(r game.Rect) (x, y, w, h int) {
	x = int(math.Round(r.X)) - int(r.W/2)
	y = int(math.Round(r.Y)) - int(r.H/2)
	return x, y, int(r.W), int(r.H)
}

func fill(c Canvas, r game.Rect) {
	x, y, w, h := Pixels(r)
	c.FillRect(x, y, w, h, Foreground)
}

// Scene desenha bola e raquetes. Só lê o estado.
func Scene(c Canvas, s game.State) {
	c.Clear(Background)
	fill(c, s.Ball.Rect)
	fill(c, s.Paddles[game.PlayerOne].Rect)
	fill(c, s.Paddles[game.PlayerTwo].Rect)
}
