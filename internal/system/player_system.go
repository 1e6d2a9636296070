// internal/system/player_system.go
package system

import (
	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/entity"
	"go-wave-brawler/internal/event"
	"go-wave-brawler/internal/interfaces"
	"go-wave-brawler/internal/timer"
	"go-wave-brawler/internal/utils"

	"github.com/rs/zerolog"
)

// PlayerSystem управляет игроком: движение, прыжок, атака, душа и смерть.
type PlayerSystem struct {
	ecs             *entity.ECS
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
	timers          *timer.Queue
	game            interfaces.GameContext
	log             zerolog.Logger

	lastInput    component.Input
	jumpBaseY    float64
	deathElapsed float64
}

func NewPlayerSystem(ecs *entity.ECS, tuning config.Tuning, eventDispatcher *event.Dispatcher, timers *timer.Queue, game interfaces.GameContext, log zerolog.Logger) *PlayerSystem {
	return &PlayerSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		timers:          timers,
		game:            game,
		log:             log.With().Str("system", "player").Logger(),
	}
}

func (s *PlayerSystem) Update(deltaTime float64, in component.Input) {
	p := s.ecs.Player
	pos := s.ecs.PlayerPosition()
	if !p.Alive() {
		s.updateDeath(deltaTime)
		return
	}
	s.lastInput = in

	speed := s.tuning.WalkSpeed
	if in.Run {
		speed = s.tuning.RunSpeed
	}

	// Во время атаки ввод движения игнорируется. Во время смены секции
	// X игрока ведёт анимация сдвига.
	if p.State != component.PlayerAttacking {
		if !s.ecs.Section.Transitioning {
			if in.Left {
				pos.X -= speed * deltaTime
				p.FacingLeft = true
			} else if in.Right {
				pos.X += speed * deltaTime
				p.FacingLeft = false
			}
		}
		dy := 0.0
		if in.Up {
			dy = -speed * deltaTime
		} else if in.Down {
			dy = speed * deltaTime
		}
		if p.State == component.PlayerJumping {
			s.jumpBaseY = utils.Clamp(s.jumpBaseY+dy, s.tuning.RoadTop, s.tuning.RoadBottom)
		} else {
			pos.Y += dy
		}
	}
	if pos.X < 0 {
		pos.X = 0
	}

	if p.State == component.PlayerJumping {
		s.updateJump(deltaTime)
	} else {
		pos.Y = utils.Clamp(pos.Y, s.tuning.RoadTop, s.tuning.RoadBottom)
	}

	if !p.State.Busy() {
		setPlayerState(s.log, p, locomotionFor(in))
	}

	if in.Jump {
		s.startJump()
	}
	if in.Attack {
		s.startAttack()
	}
}

// startJump не срабатывает, если игрок уже прыгает или атакует.
func (s *PlayerSystem) startJump() {
	p := s.ecs.Player
	if p.State.Busy() {
		return
	}
	if !setPlayerState(s.log, p, component.PlayerJumping) {
		return
	}
	s.jumpBaseY = s.ecs.PlayerPosition().Y
	p.JumpElapsed = 0
	p.JumpOffset = 0
}

// updateJump вверх с замедлением, вниз с ускорением, потом приземление.
func (s *PlayerSystem) updateJump(deltaTime float64) {
	p := s.ecs.Player
	pos := s.ecs.PlayerPosition()
	half := s.tuning.JumpHalfTime
	p.JumpElapsed += deltaTime

	switch {
	case p.JumpElapsed < half:
		p.JumpOffset = s.tuning.JumpHeight * utils.SineOut(p.JumpElapsed/half)
	case p.JumpElapsed < 2*half:
		p.JumpOffset = s.tuning.JumpHeight * (1 - utils.SineIn((p.JumpElapsed-half)/half))
	default:
		p.JumpOffset = 0
		p.JumpElapsed = 0
		pos.Y = s.jumpBaseY
		setPlayerState(s.log, p, locomotionFor(s.lastInput))
		return
	}
	pos.Y = s.jumpBaseY - p.JumpOffset
}

// startAttack фиксирует игрока на AttackDuration. Снаряд вылетает в
// момент удара, если атака к тому времени не прервана.
func (s *PlayerSystem) startAttack() {
	p := s.ecs.Player
	if p.State.Busy() {
		return
	}
	if !setPlayerState(s.log, p, component.PlayerAttacking) {
		return
	}
	owner := s.ecs.PlayerID
	s.timers.After(s.tuning.AttackImpactDelay, owner, func() {
		if s.ecs.Player.State == component.PlayerAttacking {
			s.fireProjectile()
		}
	})
	s.timers.After(s.tuning.AttackDuration, owner, func() {
		if s.ecs.Player.State == component.PlayerAttacking {
			setPlayerState(s.log, s.ecs.Player, locomotionFor(s.lastInput))
		}
	})
}

func (s *PlayerSystem) fireProjectile() {
	p := s.ecs.Player
	pos := s.ecs.PlayerPosition()
	offsetX := s.tuning.ProjectileOffsetX
	speed := s.tuning.ProjectileSpeed
	if p.FacingLeft {
		offsetX, speed = -offsetX, -speed
	}
	x, y := pos.X+offsetX, pos.Y+s.tuning.ProjectileOffsetY
	id := s.ecs.AddProjectile(x, y, speed, &component.Projectile{Owner: s.ecs.PlayerID, FacingLeft: p.FacingLeft})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.EntityData{ID: id, X: x, Y: y}})
}

// TakeDamage единственный путь, которым душа уменьшается. После смерти
// повторные удары ничего не делают.
func (s *PlayerSystem) TakeDamage(amount int) {
	p := s.ecs.Player
	if !p.Alive() || p.Soul <= 0 {
		return
	}
	before := p.Soul
	p.Soul = ApplyDamage(p.Soul, amount)
	s.ecs.Effects.Shake = config.ShakeDuration
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.SoulData{Soul: p.Soul, Delta: p.Soul - before}})
	if p.Soul == 0 {
		s.die()
	}
}

// Heal поднимает душу, не выше максимума.
func (s *PlayerSystem) Heal(amount int) {
	p := s.ecs.Player
	if !p.Alive() {
		return
	}
	before := p.Soul
	p.Soul = ApplyHeal(p.Soul, amount, s.tuning.MaxSoul)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHealed, Data: event.SoulData{Soul: p.Soul, Delta: p.Soul - before}})
}

// die однократный и необратимый переход в Dead. Прерванный прыжок
// опускает игрока на дорогу.
func (s *PlayerSystem) die() {
	p := s.ecs.Player
	wasJumping := p.State == component.PlayerJumping
	if !setPlayerState(s.log, p, component.PlayerDead) {
		return
	}
	if wasJumping {
		s.ecs.PlayerPosition().Y = s.jumpBaseY
		p.JumpOffset = 0
	}
	s.deathElapsed = 0
	s.timers.CancelOwner(s.ecs.PlayerID)
	s.log.Info().Int("kills", p.Kills).Int("wave", s.waveNumber()).Msg("player soul reached zero")
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})

	total := s.tuning.PlayerDeathDuration + s.tuning.DeathFadeDuration
	s.timers.After(total, s.ecs.PlayerID, func() {
		s.ecs.Effects.DeathFade = 1
		s.game.EndSession()
	})
}

// updateDeath ведёт затемнение после того, как доиграла анимация смерти.
func (s *PlayerSystem) updateDeath(deltaTime float64) {
	s.deathElapsed += deltaTime
	fadeStart := s.tuning.PlayerDeathDuration
	if s.deathElapsed <= fadeStart || s.tuning.DeathFadeDuration <= 0 {
		return
	}
	s.ecs.Effects.DeathFade = utils.Clamp((s.deathElapsed-fadeStart)/s.tuning.DeathFadeDuration, 0, 1)
}

func (s *PlayerSystem) waveNumber() int {
	if s.ecs.Wave == nil {
		return 0
	}
	return s.ecs.Wave.Number
}
