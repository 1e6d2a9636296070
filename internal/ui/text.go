package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Face единственный шрифт интерфейса; крупные надписи масштабируются.
var Face = basicfont.Face7x13

// TextWidth ширина строки в пикселях при масштабе scale.
func TextWidth(s string, scale float64) float64 {
	return float64(text.BoundString(Face, s).Dx()) * scale
}

// DrawText рисует строку; y это базовая линия.
func DrawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	if scale == 1 {
		text.Draw(screen, s, Face, int(x), int(y), clr)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, Face, op)
}

// DrawCentered центрирует строку по x.
func DrawCentered(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	DrawText(screen, s, cx-TextWidth(s, scale)/2, y, scale, clr)
}

// DrawOutlined центрированный текст с обводкой в один пиксель масштаба.
func DrawOutlined(screen *ebiten.Image, s string, cx, y, scale float64, clr, outline color.Color) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawCentered(screen, s, cx+float64(dx)*scale/2, y+float64(dy)*scale/2, scale, outline)
		}
	}
	DrawCentered(screen, s, cx, y, scale, clr)
}
