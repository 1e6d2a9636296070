package ui

import (
	"image/color"
	"strings"

	"go-wave-brawler/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float64
	Scale        float64
	Color        color.RGBA
	BossColor    color.RGBA
	OutlineColor color.RGBA
	// BossEvery каждая такая волна закрывает цикл и подсвечивается
	BossEvery int
}

func NewWaveIndicator(x, y, scale float64, bossEvery int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Scale:        scale,
		Color:        config.TextLightColor,
		BossColor:    config.TextAccentColor,
		OutlineColor: config.HealthBarBgColor,
		BossEvery:    bossEvery,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label текст индикатора для волны.
func (i *WaveIndicator) Label(waveNumber int) string {
	if waveNumber <= 0 {
		return ""
	}
	return "WAVE " + toRoman(waveNumber)
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	label := i.Label(waveNumber)
	if label == "" {
		return
	}
	clr := i.Color
	if i.BossEvery > 0 && waveNumber%i.BossEvery == 0 {
		clr = i.BossColor
	}
	DrawOutlined(screen, label, i.X, i.Y, i.Scale, clr, i.OutlineColor)
}
