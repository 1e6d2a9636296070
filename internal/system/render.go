// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/defs"
	"go-wave-brawler/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const roadStripeSpacing = 240.0

// RenderSystem рисует мир. Состояние только читает.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime float64) {
	ox, oy := s.shakeOffset(gameTime)

	s.drawRoad(screen, ox, oy)

	// Тени под предметами рисуются раньше всего остального
	for _, id := range s.ecs.DropIDs() {
		if shadow, ok := s.ecs.Shadows[id]; ok {
			vector.DrawFilledRect(screen, float32(shadow.X+ox-10), float32(shadow.Y+oy-3), 20, 6, config.ShadowColor, true)
		}
	}
	for _, id := range s.ecs.DropIDs() {
		drop, ok := s.ecs.Drops[id]
		pos := s.ecs.Positions[id]
		if !ok || pos == nil {
			continue
		}
		s.drawDrop(screen, drop, pos.X+ox, pos.Y+oy)
	}

	for _, id := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemies[id]
		pos := s.ecs.Positions[id]
		if !ok || pos == nil {
			continue
		}
		_, flashing := s.ecs.DamageFlashes[id]
		s.drawEnemy(screen, enemy, pos.X+ox, pos.Y+oy, flashing)
	}

	for _, id := range s.ecs.ProjectileIDs() {
		if _, ok := s.ecs.Projectiles[id]; !ok {
			continue
		}
		if pos := s.ecs.Positions[id]; pos != nil {
			vector.DrawFilledCircle(screen, float32(pos.X+ox), float32(pos.Y+oy), config.ProjectileRadius, config.ProjectileColor, true)
		}
	}

	s.drawPlayer(screen, ox, oy)
}

// shakeOffset смещение камеры, затухающее вместе с таймером тряски.
func (s *RenderSystem) shakeOffset(gameTime float64) (float64, float64) {
	shake := s.ecs.Effects.Shake
	if shake <= 0 {
		return 0, 0
	}
	amp := config.ShakeIntensity * config.ScreenWidth * shake / config.ShakeDuration
	return math.Sin(gameTime*91) * amp, math.Cos(gameTime*77) * amp
}

func (s *RenderSystem) drawRoad(screen *ebiten.Image, ox, oy float64) {
	screen.Fill(config.SkyColor)
	top := float32(config.RoadTop - config.PlayerRadius + oy)
	height := float32(config.RoadBottom-config.RoadTop) + 2*config.PlayerRadius
	vector.DrawFilledRect(screen, 0, top, config.ScreenWidth, height, config.RoadColor, false)

	// Разметка привязана к плиткам фона, поэтому едет вместе с ними
	mid := float32((config.RoadTop+config.RoadBottom)/2 + oy)
	bg := s.ecs.Background
	for _, tileX := range bg.Tiles {
		start := math.Max(tileX, -roadStripeSpacing)
		first := tileX + math.Ceil((start-tileX)/roadStripeSpacing)*roadStripeSpacing
		for x := first; x < tileX+bg.TileWidth && x < config.ScreenWidth; x += roadStripeSpacing {
			vector.DrawFilledRect(screen, float32(x+ox), mid-2, roadStripeSpacing/2, 4, config.RoadStripeColor, false)
		}
	}
}

func (s *RenderSystem) drawDrop(screen *ebiten.Image, drop *component.Drop, x, y float64) {
	clr := config.CurrencyColor
	if drop.Kind == defs.DropHealth {
		clr = config.HealthDropColor
	}
	// Вращение передаём сжатием по горизонтали
	w := float32(config.DropRadius * math.Abs(math.Cos(drop.Angle*math.Pi/180)))
	if w < 2 {
		w = 2
	}
	vector.DrawFilledRect(screen, float32(x)-w, float32(y-config.DropRadius), 2*w, 2*config.DropRadius, clr, true)
}

func (s *RenderSystem) drawEnemy(screen *ebiten.Image, enemy *component.Enemy, x, y float64, flashing bool) {
	def := defs.Enemy(enemy.Type)
	radius := float32(config.EnemyRadius * def.Visuals.RadiusFactor)
	var clr color.Color = def.Visuals.Color.Color()
	switch {
	case enemy.Dead():
		c := def.Visuals.Color.Color()
		c.A = 110
		clr = c
	case flashing:
		clr = config.HurtFlashColor
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), radius, clr, true)

	// Замах в сторону взгляда
	if enemy.State == component.EnemyAttacking {
		dir := float32(1)
		if enemy.FacingLeft {
			dir = -1
		}
		vector.StrokeLine(screen, float32(x), float32(y), float32(x)+dir*(radius+14), float32(y)-6, 4, clr, true)
	}
	if !enemy.Dead() {
		drawEnemyHealthBar(screen, enemy, float32(x), float32(y)-radius-12)
	}
}

// drawEnemyHealthBar полоса на 8 делений; у сильных волн она просто полная.
func drawEnemyHealthBar(screen *ebiten.Image, enemy *component.Enemy, cx, top float32) {
	w, h := float32(config.EnemyHealthBarW), float32(config.EnemyHealthBarH)
	left := cx - w/2
	vector.DrawFilledRect(screen, left-1, top-1, w+2, h+2, config.HealthBarBgColor, false)

	maxBars := enemy.MaxBars
	if maxBars <= 0 || maxBars > config.EnemyHealthBarMax {
		maxBars = config.EnemyHealthBarMax
	}
	bars := enemy.Bars
	if bars > maxBars {
		bars = maxBars
	}
	fill := w * float32(bars) / float32(maxBars)
	vector.DrawFilledRect(screen, left, top, fill, h, config.HealthBarFill, false)
	vector.DrawFilledRect(screen, left, top, fill, h/3, config.HealthBarShine, false)
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, ox, oy float64) {
	p := s.ecs.Player
	pos := s.ecs.PlayerPosition()
	x, y := float32(pos.X+ox), float32(pos.Y+oy)

	if p.JumpOffset > 0 {
		vector.DrawFilledRect(screen, x-14, float32(pos.Y+p.JumpOffset+oy)+config.PlayerRadius-3, 28, 6, config.ShadowColor, true)
	}
	if !p.Alive() {
		// лежит на дороге
		vector.DrawFilledRect(screen, x-config.PlayerRadius, y, 2*config.PlayerRadius, config.PlayerRadius/2, config.PlayerDeadColor, true)
		return
	}
	vector.DrawFilledCircle(screen, x, y, config.PlayerRadius, config.PlayerColor, true)

	dir := float32(1)
	if p.FacingLeft {
		dir = -1
	}
	reach := float32(config.PlayerRadius + 4)
	if p.State == component.PlayerAttacking {
		reach += 14
	}
	vector.StrokeLine(screen, x, y-8, x+dir*reach, y-8, 4, config.PlayerColor, true)
}
