package system

import (
	"math"

	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/defs"
	"go-wave-brawler/internal/entity"
	"go-wave-brawler/internal/event"
	"go-wave-brawler/internal/timer"
	"go-wave-brawler/internal/types"
	"go-wave-brawler/internal/utils"

	"github.com/rs/zerolog"
)

// EnemySystem ИИ врагов: преследование, ближняя атака, смерть и дроп.
type EnemySystem struct {
	ecs             *entity.ECS
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
	timers          *timer.Queue
	rng             *utils.PRNGService
	player          *PlayerSystem
	drops           *DropSystem
	loot            defs.LootTable
	log             zerolog.Logger
}

func NewEnemySystem(ecs *entity.ECS, tuning config.Tuning, eventDispatcher *event.Dispatcher, timers *timer.Queue, rng *utils.PRNGService, player *PlayerSystem, drops *DropSystem, log zerolog.Logger) *EnemySystem {
	return &EnemySystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		timers:          timers,
		rng:             rng,
		player:          player,
		drops:           drops,
		loot:            defs.EnemyLootTable(tuning),
		log:             log.With().Str("system", "enemy").Logger(),
	}
}

func (s *EnemySystem) Update(deltaTime float64) {
	if !s.ecs.Player.Alive() {
		return
	}
	target := s.ecs.PlayerPosition()
	for _, id := range s.ecs.EnemyIDs() {
		enemy, ok := s.ecs.Enemies[id]
		if !ok || enemy.Dead() {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			s.log.Debug().Uint64("enemy", uint64(id)).Msg("enemy without position skipped")
			continue
		}

		if enemy.State.Chasing() {
			angle := math.Atan2(target.Y-pos.Y, target.X-pos.X)
			pos.X += math.Cos(angle) * enemy.Speed * deltaTime
			pos.Y += math.Sin(angle) * enemy.Speed * deltaTime
			enemy.FacingLeft = pos.X > target.X
		}

		dist := utils.Distance(pos.X, pos.Y, target.X, target.Y)
		if dist < s.tuning.MeleeRange && enemy.State != component.EnemyAttacking {
			s.startAttack(id, enemy)
		}
	}
}

// startAttack урон наносится в конце замаха, а не в начале.
func (s *EnemySystem) startAttack(id types.EntityID, enemy *component.Enemy) {
	if !setEnemyState(s.log, id, enemy, component.EnemyAttacking) {
		return
	}
	s.timers.After(s.tuning.EnemyAttackDuration, id, func() {
		s.finishAttack(id)
	})
}

func (s *EnemySystem) finishAttack(id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok || enemy.Dead() {
		return
	}
	if s.ecs.Player.Alive() {
		s.player.TakeDamage(enemy.Damage)
	}
	setEnemyState(s.log, id, enemy, component.EnemyWalking)
}

// Hit наносит урон врагу. Возвращает false, если цели уже нет или она
// мертва: повторное смертельное попадание ничего не делает.
func (s *EnemySystem) Hit(id types.EntityID, damage int) bool {
	enemy, ok := s.ecs.Enemies[id]
	if !ok || enemy.Dead() {
		return false
	}
	pos := s.ecs.Positions[id]
	enemy.Bars = ApplyDamage(enemy.Bars, damage)
	s.ecs.DamageFlashes[id] = &component.DamageFlash{Timer: config.HurtFlashTime, Duration: config.HurtFlashTime}
	if pos != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: event.EntityData{ID: id, X: pos.X, Y: pos.Y}})
	}

	if enemy.Bars <= 0 {
		s.kill(id, enemy)
		return true
	}
	// Замах, начатый до попадания, доигрывается
	if enemy.State == component.EnemyAttacking {
		return true
	}
	if setEnemyState(s.log, id, enemy, component.EnemyHurt) {
		s.timers.After(s.tuning.HurtRecover, id, func() {
			if e, ok := s.ecs.Enemies[id]; ok && e.State == component.EnemyHurt {
				setEnemyState(s.log, id, e, component.EnemyWalking)
			}
		})
	}
	return true
}

// kill переводит врага в Dead сразу; из мира он уходит после анимации смерти.
func (s *EnemySystem) kill(id types.EntityID, enemy *component.Enemy) {
	if !setEnemyState(s.log, id, enemy, component.EnemyDead) {
		return
	}
	s.timers.CancelOwner(id)
	if pos, ok := s.ecs.Positions[id]; ok {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDying, Data: event.EntityData{ID: id, X: pos.X, Y: pos.Y}})
	}
	s.timers.After(s.tuning.EnemyDeathDuration, id, func() {
		s.remove(id)
	})
}

// remove убирает врага, засчитывает убийство, бросает дроп и проверяет,
// не закончилась ли волна.
func (s *EnemySystem) remove(id types.EntityID) {
	enemy, ok := s.ecs.Enemies[id]
	if !ok {
		return
	}
	var x, y float64
	if pos, ok := s.ecs.Positions[id]; ok {
		x, y = pos.X, pos.Y
	}
	s.ecs.RemoveEnemy(id)
	s.timers.CancelOwner(id)

	s.ecs.Player.Kills++
	s.drops.Spawn(s.rng.RollDrop(s.loot), x, y)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EntityData{ID: id, X: x, Y: y}})

	wave := s.ecs.Wave
	if wave == nil || wave.Number != enemy.Wave {
		s.log.Debug().Uint64("enemy", uint64(id)).Int("wave", enemy.Wave).Msg("killed enemy from another wave")
		return
	}
	if wave.EnemiesRemaining > 0 {
		wave.EnemiesRemaining--
	}
	if wave.EnemiesRemaining == 0 && !wave.Cleared {
		wave.Cleared = true
		s.ecs.Effects.ShowAdvance = true
		s.log.Info().Int("wave", wave.Number).Int("kills", s.ecs.Player.Kills).Msg("wave cleared")
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Wave: wave.Number, Section: s.ecs.Section.Current}})
	}
}
