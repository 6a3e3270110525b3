package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// canvas adapta uma *ebiten.Image para render.Canvas.
type canvas struct {
	img *ebiten.Image
}

func (c canvas) Clear(col color.Color) {
	c.img.Fill(col)
}

func (c canvas) FillRect(x, y, w, h int, col color.Color) {
	vector.FillRect(c.img, float32(x), float32(y), float32(w), float32(h), col, false)
}

var (
	hudFace  = text.NewGoXFace(basicfont.Face7x13)
	hudColor = color.RGBA{0xb0, 0xb0, 0xb0, 0xff}
)

// drawText escreve msg centrado horizontalmente em cx, com topo em y.
func drawText(screen *ebiten.Image, msg string, cx, y float64) {
	w, _ := text.Measure(msg, hudFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-w/2, y)
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, msg, hudFace, op)
}
