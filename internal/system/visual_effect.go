// internal/system/visual_effect.go
package system

import (
	"go-wave-brawler/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами: вспышки урона,
// тряска камеры, вспышка экрана, пульсация указателя вперёд.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.DamageFlashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.DamageFlashes, id)
		}
	}

	fx := s.ecs.Effects
	fx.Shake = decay(fx.Shake, deltaTime)
	fx.Flash = decay(fx.Flash, deltaTime)
	if fx.ShowAdvance {
		fx.AdvancePulse += deltaTime
	} else {
		fx.AdvancePulse = 0
	}
}

func decay(timer, deltaTime float64) float64 {
	timer -= deltaTime
	if timer < 0 {
		return 0
	}
	return timer
}
