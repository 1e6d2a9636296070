package ui

import (
	"image"
	"testing"

	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), "n=%d", n)
	}
	w := NewWaveIndicator(0, 0, 2, 10)
	assert.Equal(t, "WAVE XII", w.Label(12))
	assert.Empty(t, w.Label(0))
}

func TestSoulBarColours(t *testing.T) {
	assert.Equal(t, config.SoulHighColor, FillColor(100, 100))
	assert.Equal(t, config.SoulHighColor, FillColor(61, 100))
	assert.Equal(t, config.SoulMidColor, FillColor(60, 100))
	assert.Equal(t, config.SoulMidColor, FillColor(31, 100))
	assert.Equal(t, config.SoulLowColor, FillColor(30, 100))
	assert.Equal(t, config.SoulLowColor, FillColor(0, 0))
}

func TestAdvancePulseRange(t *testing.T) {
	ind := NewAdvanceIndicator(0, 0, 10, config.AdvancePulsePeriod, config.AdvanceColor)
	assert.InDelta(t, 1.0, ind.Scale(0), 1e-9)
	assert.InDelta(t, 1.2, ind.Scale(config.AdvancePulsePeriod), 1e-9)
	for p := 0.0; p < 3; p += 0.07 {
		s := ind.Scale(p)
		assert.GreaterOrEqual(t, s, 1.0)
		assert.LessOrEqual(t, s, 1.2+1e-9)
	}
}

func TestInfoPanelSlidesAwayDuringTransition(t *testing.T) {
	ecs := entity.NewECS(config.DefaultTuning())
	p := NewInfoPanel()
	home := p.currentX

	ecs.Section.Transitioning = true
	for i := 0; i < 100; i++ {
		p.Update(ecs)
	}
	assert.Equal(t, float64(config.ScreenWidth), p.currentX)

	ecs.Section.Transitioning = false
	for i := 0; i < 100; i++ {
		p.Update(ecs)
	}
	assert.Equal(t, home, p.currentX)

	ecs.Player.Kills = 7
	lines := p.Lines(ecs)
	assert.Equal(t, "KILLS  7", lines[0])
	assert.Contains(t, lines[2], "SEC 1/5")
}

func TestMenuButtonHit(t *testing.T) {
	b := NewMenuButton(image.Rect(10, 10, 110, 50), "MENU")
	assert.True(t, b.IsClicked(10, 10))
	assert.True(t, b.IsClicked(109, 49))
	assert.False(t, b.IsClicked(110, 50))
}
