package app

import (
	"context"
	"errors"
	"testing"

	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/event"
	"go-wave-brawler/internal/interfaces"
	"go-wave-brawler/internal/sink"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, s interfaces.ResultSink) *Game {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 7
	g, err := NewGame(Options{Tuning: tuning, Account: "guest-test", Sink: s, Logger: zerolog.Nop()})
	require.NoError(t, err)
	return g
}

func runFor(g *Game, seconds float64) {
	for elapsed := 0.0; elapsed < seconds-1e-9; elapsed += 0.01 {
		g.Update(0.01, component.Input{})
	}
}

func TestNewGameRejectsBadTuning(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.WaveLength = 0
	_, err := NewGame(Options{Tuning: tuning, Logger: zerolog.Nop()})
	assert.ErrorContains(t, err, "invalid tuning")
}

func TestNewGameStartsFirstWave(t *testing.T) {
	g := newTestGame(t, nil)
	require.NotNil(t, g.ECS.Wave)
	assert.Equal(t, 1, g.WaveNumber())
	assert.Equal(t, 0, g.ECS.LiveEnemies())

	g.Update(0.01, component.Input{})
	assert.Equal(t, 1, g.ECS.LiveEnemies())
	assert.InDelta(t, 0.01, g.ECS.GameTime, 1e-12)
	assert.False(t, g.Over())
	assert.Nil(t, g.Result())
}

func TestSessionEndsOnceAndSubmitsResult(t *testing.T) {
	mem := sink.NewMemory()
	g := newTestGame(t, mem)
	ended := 0
	g.EventDispatcher.Subscribe(event.SessionEnded, event.ListenerFunc(func(event.Event) { ended++ }))

	g.Update(0.01, component.Input{})
	g.ECS.Player.Kills = 3
	g.ECS.Player.Currency = 1
	g.PlayerSystem.TakeDamage(g.Tuning.MaxSoul)
	require.False(t, g.ECS.Player.Alive())

	runFor(g, g.Tuning.PlayerDeathDuration)
	assert.False(t, g.Over())
	runFor(g, g.Tuning.DeathFadeDuration+0.05)
	require.True(t, g.Over())

	results := mem.Results()
	require.Len(t, results, 1)
	r := results[0]
	assert.NotEmpty(t, r.SessionID)
	assert.Equal(t, "guest-test", r.Account)
	assert.Equal(t, 3, r.Kills)
	assert.Equal(t, 1, r.WaveReached)
	assert.Equal(t, 1, r.CurrencyEarned)
	assert.False(t, r.EndedAt.IsZero())
	assert.Equal(t, &r, g.Result())

	g.EndSession()
	runFor(g, 1)
	assert.Len(t, mem.Results(), 1)
	assert.Equal(t, 1, ended)
}

type failingSink struct{ calls int }

func (f *failingSink) Submit(context.Context, interfaces.SessionResult) error {
	f.calls++
	return errors.New("storage offline")
}

func TestSinkFailureStillEndsSession(t *testing.T) {
	s := &failingSink{}
	g := newTestGame(t, s)
	g.EndSession()
	assert.True(t, g.Over())
	assert.NotNil(t, g.Result())
	assert.Equal(t, 1, s.calls)
}

func TestCloseDropsPendingSpawns(t *testing.T) {
	g := newTestGame(t, nil)
	g.StartWave(5)
	g.Update(0.01, component.Input{})
	require.Equal(t, 1, g.ECS.LiveEnemies())
	require.Greater(t, g.Timers.Len(), 0)

	g.Close()
	assert.Equal(t, 0, g.Timers.Len())
	assert.Equal(t, 0, g.ECS.LiveEnemies())

	runFor(g, 10)
	assert.Equal(t, 0, g.ECS.LiveEnemies())
	assert.InDelta(t, 0.01, g.ECS.GameTime, 1e-12)

	g.StartWave(2)
	assert.Equal(t, 5, g.WaveNumber())
}

func TestWaveAdvancesThroughSection(t *testing.T) {
	g := newTestGame(t, nil)
	g.Update(0.01, component.Input{})
	id := g.ECS.EnemyIDs()[0]

	g.EnemySystem.Hit(id, 1)
	g.EnemySystem.Hit(id, 1)
	runFor(g, g.Tuning.EnemyDeathDuration+0.05)
	require.True(t, g.ECS.Wave.Cleared)

	g.ECS.PlayerPosition().X = g.Tuning.ForwardTrigger
	runFor(g, g.Tuning.TransitionTime+0.1)
	assert.Equal(t, 2, g.WaveNumber())
	assert.Equal(t, 1, g.ECS.Section.Current)
	assert.False(t, g.ECS.Wave.Cleared)
	assert.Equal(t, 1, g.ECS.Player.Kills)
}
