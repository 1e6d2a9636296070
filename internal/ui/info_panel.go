// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"math"

	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth     = 190
	panelHeight    = 74
	panelMargin    = 12
	animationSpeed = 10.0
	lineHeight     = 18
)

// InfoPanel счётчики забега в правом верхнем углу. Пока идёт смена секции
// панель уезжает за край экрана.
type InfoPanel struct {
	currentX float64
	targetX  float64
}

func NewInfoPanel() *InfoPanel {
	x := float64(config.ScreenWidth - panelWidth - panelMargin)
	return &InfoPanel{currentX: x, targetX: x}
}

func (p *InfoPanel) Update(ecs *entity.ECS) {
	if ecs.Section.Transitioning {
		p.targetX = config.ScreenWidth
	} else {
		p.targetX = float64(config.ScreenWidth - panelWidth - panelMargin)
	}
	if p.currentX != p.targetX {
		diff := p.targetX - p.currentX
		if math.Abs(diff) < animationSpeed {
			p.currentX = p.targetX
		} else {
			p.currentX += math.Copysign(animationSpeed, diff)
		}
	}
}

// Lines строки панели.
func (p *InfoPanel) Lines(ecs *entity.ECS) []string {
	wave := 0
	remaining := 0
	if ecs.Wave != nil {
		wave = ecs.Wave.Number
		remaining = ecs.Wave.EnemiesRemaining
	}
	return []string{
		fmt.Sprintf("KILLS  %d", ecs.Player.Kills),
		fmt.Sprintf("SIRE   %d", ecs.Player.Currency),
		fmt.Sprintf("WAVE %d  LEFT %d  SEC %d/%d", wave, remaining, ecs.Section.Current+1, ecs.Section.Total),
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if p.currentX >= config.ScreenWidth {
		return
	}
	x := float32(p.currentX)
	vector.DrawFilledRect(screen, x, panelMargin, panelWidth, panelHeight, config.PauseOverlayColor, false)
	vector.StrokeRect(screen, x, panelMargin, panelWidth, panelHeight, 1, config.RoadStripeColor, false)
	for i, line := range p.Lines(ecs) {
		DrawText(screen, line, p.currentX+10, float64(panelMargin+20+i*lineHeight), 1, config.TextLightColor)
	}
}
