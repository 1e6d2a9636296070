// internal/ui/indicator.go
package ui

import (
	"image/color"

	"go-wave-brawler/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AdvanceIndicator пульсирующий знак GO после зачистки волны.
type AdvanceIndicator struct {
	X, Y   float32
	Radius float32
	Period float64
	Color  color.RGBA
}

func NewAdvanceIndicator(x, y, radius float32, period float64, clr color.RGBA) *AdvanceIndicator {
	return &AdvanceIndicator{X: x, Y: y, Radius: radius, Period: period, Color: clr}
}

// Scale текущий масштаб пульса, 1.0..1.2.
func (i *AdvanceIndicator) Scale(pulse float64) float64 {
	return 1 + 0.2*utils.Yoyo(pulse, i.Period)
}

func (i *AdvanceIndicator) Draw(screen *ebiten.Image, pulse float64) {
	scale := i.Scale(pulse)
	r := i.Radius * float32(scale)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, i.Color, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 3, color.White, true)

	// стрелка вправо
	tip := i.X + r*0.8
	vector.StrokeLine(screen, i.X-r*0.6, i.Y+r*0.45, tip, i.Y+r*0.45, 3, color.White, true)
	vector.StrokeLine(screen, tip-8, i.Y+r*0.45-6, tip, i.Y+r*0.45, 3, color.White, true)
	vector.StrokeLine(screen, tip-8, i.Y+r*0.45+6, tip, i.Y+r*0.45, 3, color.White, true)
	DrawCentered(screen, "GO", float64(i.X), float64(i.Y)+6*scale, 2*scale, color.White)
}
