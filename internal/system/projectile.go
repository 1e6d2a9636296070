// internal/system/projectile.go
package system

import (
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/entity"
	"go-wave-brawler/internal/utils"

	"github.com/rs/zerolog"
)

// ProjectileSystem двигает снаряды и разрешает попадания по врагам
type ProjectileSystem struct {
	ecs     *entity.ECS
	tuning  config.Tuning
	enemies *EnemySystem
	log     zerolog.Logger
}

func NewProjectileSystem(ecs *entity.ECS, tuning config.Tuning, enemies *EnemySystem, log zerolog.Logger) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:     ecs,
		tuning:  tuning,
		enemies: enemies,
		log:     log.With().Str("system", "projectile").Logger(),
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	levelWidth := s.tuning.LevelWidth()
	for _, id := range s.ecs.ProjectileIDs() {
		if _, ok := s.ecs.Projectiles[id]; !ok {
			continue
		}
		pos, vel := s.ecs.Positions[id], s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			s.log.Debug().Uint64("projectile", uint64(id)).Msg("projectile without position, removing")
			s.ecs.RemoveProjectile(id)
			continue
		}
		pos.X += vel.X * deltaTime
		if pos.X < 0 || pos.X > levelWidth {
			s.ecs.RemoveProjectile(id)
		}
	}
	s.resolveHits()
}

// resolveHits каждый снаряд бьёт не больше одного врага за тик: первого
// живого в порядке появления.
func (s *ProjectileSystem) resolveHits() {
	for _, id := range s.ecs.ProjectileIDs() {
		if _, ok := s.ecs.Projectiles[id]; !ok {
			continue
		}
		pos := s.ecs.Positions[id]
		for _, enemyID := range s.ecs.EnemyIDs() {
			enemy, ok := s.ecs.Enemies[enemyID]
			if !ok || enemy.Dead() {
				continue
			}
			enemyPos, ok := s.ecs.Positions[enemyID]
			if !ok {
				continue
			}
			if utils.Distance(pos.X, pos.Y, enemyPos.X, enemyPos.Y) < s.tuning.HitRadius {
				s.ecs.RemoveProjectile(id)
				s.enemies.Hit(enemyID, 1)
				break
			}
		}
	}
}
