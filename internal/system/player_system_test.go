package system

import (
	"testing"

	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerWalksRunsAndClamps(t *testing.T) {
	w := newWorld(t)
	pos := w.ecs.PlayerPosition()
	startX := pos.X

	w.tick(0.5, component.Input{Right: true})
	assert.InDelta(t, startX+60, pos.X, 1e-9)
	assert.Equal(t, component.PlayerWalking, w.ecs.Player.State)

	w.tick(0.5, component.Input{Right: true, Run: true})
	assert.InDelta(t, startX+160, pos.X, 1e-9)
	assert.Equal(t, component.PlayerRunning, w.ecs.Player.State)

	w.tick(5, component.Input{Left: true, Down: true})
	assert.Equal(t, 0.0, pos.X)
	assert.Equal(t, w.tuning.RoadBottom, pos.Y)
	assert.True(t, w.ecs.Player.FacingLeft)

	w.tick(5, component.Input{Up: true})
	assert.Equal(t, w.tuning.RoadTop, pos.Y)

	w.tick(0.1, component.Input{})
	assert.Equal(t, component.PlayerIdle, w.ecs.Player.State)
}

func TestPlayerHeldBackUntilWaveCleared(t *testing.T) {
	w := newWorld(t)
	w.spawn.StartWave(1)
	pos := w.ecs.PlayerPosition()
	pos.X = 990

	w.tick(1, component.Input{Right: true, Run: true})
	assert.Equal(t, w.tuning.ForwardTrigger, pos.X)
	assert.False(t, w.ecs.Section.Transitioning)
}

func TestJumpArcAndLanding(t *testing.T) {
	w := newWorld(t)
	pos := w.ecs.PlayerPosition()
	baseY := pos.Y

	w.tick(0.01, component.Input{Jump: true})
	require.Equal(t, component.PlayerJumping, w.ecs.Player.State)

	// повторный прыжок и атака в воздухе игнорируются
	w.tick(0.1, component.Input{Jump: true, Attack: true})
	w.tick(0.1, component.Input{})
	w.tick(0.1, component.Input{})
	assert.Equal(t, component.PlayerJumping, w.ecs.Player.State)
	assert.InDelta(t, baseY-w.tuning.JumpHeight, pos.Y, 1e-6)
	assert.Equal(t, 0, w.events[event.ProjectileFired])

	w.tick(0.31, component.Input{})
	assert.Equal(t, component.PlayerIdle, w.ecs.Player.State)
	assert.Equal(t, baseY, pos.Y)
	assert.Equal(t, 0.0, w.ecs.Player.JumpOffset)
}

func TestJumpCarriesVerticalMove(t *testing.T) {
	w := newWorld(t)
	pos := w.ecs.PlayerPosition()

	w.tick(0.01, component.Input{Jump: true})
	w.tick(0.5, component.Input{Up: true})
	w.tick(0.2, component.Input{})
	assert.Equal(t, component.PlayerIdle, w.ecs.Player.State)
	assert.InDelta(t, w.tuning.RoadBottom-60, pos.Y, 1e-6)
}

func TestAttackFiresOnceAtImpact(t *testing.T) {
	w := newWorld(t)
	pos := w.ecs.PlayerPosition()
	startX := pos.X

	w.tick(0.01, component.Input{Attack: true})
	require.Equal(t, component.PlayerAttacking, w.ecs.Player.State)
	assert.Equal(t, 0, w.events[event.ProjectileFired])

	// удар не прерывается ни движением, ни повторным нажатием
	w.tick(0.1, component.Input{Right: true, Attack: true, Jump: true})
	assert.Equal(t, startX, pos.X)
	assert.Equal(t, component.PlayerAttacking, w.ecs.Player.State)

	w.tick(0.25, component.Input{})
	require.Equal(t, 1, w.events[event.ProjectileFired])
	ids := w.ecs.ProjectileIDs()
	require.Len(t, ids, 1)
	assert.Equal(t, w.tuning.ProjectileSpeed, w.ecs.Velocities[ids[0]].X)
	assert.Equal(t, pos.Y+w.tuning.ProjectileOffsetY, w.ecs.Positions[ids[0]].Y)

	w.tick(0.2, component.Input{})
	assert.Equal(t, component.PlayerIdle, w.ecs.Player.State)
	assert.Equal(t, 1, w.events[event.ProjectileFired])
}

func TestAttackFacingLeftFiresLeft(t *testing.T) {
	w := newWorld(t)
	w.ecs.PlayerPosition().X = 500
	w.tick(0.1, component.Input{Left: true})
	w.tick(0.01, component.Input{Attack: true})
	w.run(0.35)

	ids := w.ecs.ProjectileIDs()
	require.Len(t, ids, 1)
	assert.Less(t, w.ecs.Velocities[ids[0]].X, 0.0)
}

func TestPlayerDiesExactlyOnce(t *testing.T) {
	w := newWorld(t)
	w.ecs.Player.Soul = 10

	w.player.TakeDamage(10)
	assert.Equal(t, 0, w.ecs.Player.Soul)
	assert.Equal(t, component.PlayerDead, w.ecs.Player.State)
	assert.Equal(t, 1, w.events[event.PlayerDied])
	assert.Equal(t, config.ShakeDuration, w.ecs.Effects.Shake)

	w.player.TakeDamage(10)
	w.player.Heal(25)
	assert.Equal(t, 0, w.ecs.Player.Soul)
	assert.Equal(t, 1, w.events[event.PlayerDied])
	assert.Equal(t, 1, w.events[event.PlayerDamaged])
	assert.Equal(t, 0, w.events[event.PlayerHealed])

	// ввод мёртвому не нужен
	pos := w.ecs.PlayerPosition()
	x := pos.X
	w.tick(0.5, component.Input{Right: true, Attack: true})
	assert.Equal(t, x, pos.X)
	assert.Equal(t, 0, w.game.ended)

	w.run(1.6)
	assert.Equal(t, 1, w.game.ended)
	assert.Equal(t, 1.0, w.ecs.Effects.DeathFade)
	w.run(1)
	assert.Equal(t, 1, w.game.ended)
}

func TestDeathCancelsPendingAttack(t *testing.T) {
	w := newWorld(t)
	w.tick(0.01, component.Input{Attack: true})
	w.player.TakeDamage(100)
	w.run(0.6)
	assert.Equal(t, 0, w.events[event.ProjectileFired])
	assert.Equal(t, component.PlayerDead, w.ecs.Player.State)
}

func TestDeathFadeRamps(t *testing.T) {
	w := newWorld(t)
	w.player.TakeDamage(100)
	w.run(w.tuning.PlayerDeathDuration)
	assert.InDelta(t, 0.0, w.ecs.Effects.DeathFade, 1e-6)
	w.run(w.tuning.DeathFadeDuration / 2)
	assert.InDelta(t, 0.5, w.ecs.Effects.DeathFade, 0.02)
}
