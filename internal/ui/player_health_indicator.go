// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"math"
	"strconv"

	"go-wave-brawler/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SoulBar полоса души игрока. Ниже порога LowSoul она пульсирует.
type SoulBar struct {
	X, Y          float32
	Width, Height float32
}

func NewSoulBar(x, y, width, height float32) *SoulBar {
	return &SoulBar{X: x, Y: y, Width: width, Height: height}
}

// FillColor цвет заполнения по доле души: >60% спокойный, >30% тревожный,
// ниже мигает.
func FillColor(soul, maxSoul int) color.RGBA {
	if maxSoul <= 0 {
		return config.SoulLowColor
	}
	pct := soul * 100 / maxSoul
	switch {
	case pct > 60:
		return config.SoulHighColor
	case pct > config.LowSoul:
		return config.SoulMidColor
	default:
		return config.SoulLowColor
	}
}

func (b *SoulBar) Draw(screen *ebiten.Image, soul, maxSoul int, gameTime float64) {
	vector.DrawFilledRect(screen, b.X-2, b.Y-2, b.Width+4, b.Height+4, config.HealthBarBgColor, false)

	if maxSoul > 0 && soul > 0 {
		fill := b.Width * float32(soul) / float32(maxSoul)
		clr := FillColor(soul, maxSoul)
		if soul*100/maxSoul <= config.LowSoul {
			// пульс раз в полсекунды
			clr.A = uint8(155 + 100*math.Abs(math.Sin(gameTime*math.Pi*2)))
		}
		vector.DrawFilledRect(screen, b.X, b.Y, fill, b.Height, clr, false)
		vector.DrawFilledRect(screen, b.X, b.Y, fill, b.Height/3, config.HealthBarShine, false)
	}

	DrawText(screen, "SOUL", float64(b.X)-40, float64(b.Y+b.Height)-2, 1, config.TextLightColor)
	label := strconv.Itoa(soul) + "/" + strconv.Itoa(maxSoul)
	DrawText(screen, label, float64(b.X+b.Width)+8, float64(b.Y+b.Height)-2, 1, config.TextLightColor)
}
