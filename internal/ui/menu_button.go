// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"go-wave-brawler/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect    image.Rectangle
	Text    string
	bgColor color.RGBA
	fgColor color.RGBA
}

func NewMenuButton(rect image.Rectangle, text string) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    text,
		bgColor: config.HealthBarFill,
		fgColor: config.TextLightColor,
	}
}

func (b *MenuButton) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, b.fgColor, false)
	DrawCentered(screen, b.Text, float64(x+w/2), float64(y+h/2)+8, 2, b.fgColor)
}

// IsClicked проверяет, попадает ли точка в кнопку.
func (b *MenuButton) IsClicked(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}
