package system

import (
	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/types"

	"github.com/rs/zerolog"
)

// ApplyDamage возвращает здоровье после урона, не ниже нуля.
func ApplyDamage(health, damage int) int {
	if damage < 0 {
		damage = 0
	}
	health -= damage
	if health < 0 {
		health = 0
	}
	return health
}

// ApplyHeal возвращает здоровье после лечения, не выше max.
func ApplyHeal(health, amount, max int) int {
	if amount < 0 {
		amount = 0
	}
	health += amount
	if health > max {
		health = max
	}
	return health
}

// setEnemyState меняет состояние по таблице переходов. Недопустимый
// переход пропускается и пишется в debug-лог.
func setEnemyState(log zerolog.Logger, id types.EntityID, e *component.Enemy, to component.EnemyState) bool {
	if e.State == to {
		return true
	}
	if !e.State.CanTransition(to) {
		log.Debug().Uint64("enemy", uint64(id)).Stringer("from", e.State).Stringer("to", to).Msg("enemy transition refused")
		return false
	}
	e.State = to
	return true
}

// setPlayerState то же самое для игрока.
func setPlayerState(log zerolog.Logger, p *component.Player, to component.PlayerState) bool {
	if p.State == to {
		return true
	}
	if !p.State.CanTransition(to) {
		log.Debug().Stringer("from", p.State).Stringer("to", to).Msg("player transition refused")
		return false
	}
	p.State = to
	return true
}

// locomotionFor выбирает состояние движения по зажатым клавишам.
func locomotionFor(in component.Input) component.PlayerState {
	switch {
	case !in.Moving():
		return component.PlayerIdle
	case in.Run:
		return component.PlayerRunning
	default:
		return component.PlayerWalking
	}
}
