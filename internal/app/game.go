// internal/app/game.go
package app

import (
	"context"
	"fmt"
	"time"

	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/entity"
	"go-wave-brawler/internal/event"
	"go-wave-brawler/internal/interfaces"
	"go-wave-brawler/internal/system"
	"go-wave-brawler/internal/timer"
	"go-wave-brawler/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultSubmitTimeout = 3 * time.Second

// Options параметры новой сессии.
type Options struct {
	Tuning  config.Tuning
	Account string
	Sink    interfaces.ResultSink
	Logger  zerolog.Logger
	// SubmitTimeout ограничивает отправку результата; 0 значит 3 секунды.
	SubmitTimeout time.Duration
}

// Game holds one play session: the world, the timer queue and the systems
// that advance them in a fixed order.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Timers          *timer.Queue
	Rng             *utils.PRNGService
	Tuning          config.Tuning

	PlayerSystem       *system.PlayerSystem
	EnemySystem        *system.EnemySystem
	SpawnSystem        *system.SpawnSystem
	ProjectileSystem   *system.ProjectileSystem
	DropSystem         *system.DropSystem
	SectionSystem      *system.SectionSystem
	VisualEffectSystem *system.VisualEffectSystem
	RenderSystem       *system.RenderSystem

	account       string
	sink          interfaces.ResultSink
	submitTimeout time.Duration
	log           zerolog.Logger

	over   bool
	closed bool
	result *interfaces.SessionResult
}

// NewGame builds a session and starts wave 1. The first enemy appears on
// the first Update.
func NewGame(opts Options) (*Game, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	timeout := opts.SubmitTimeout
	if timeout <= 0 {
		timeout = defaultSubmitTimeout
	}

	ecs := entity.NewECS(opts.Tuning)
	eventDispatcher := event.NewDispatcher()
	timers := timer.NewQueue()
	rng := utils.NewPRNGService(opts.Tuning.Seed)
	log := opts.Logger.With().Str("account", opts.Account).Logger()

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Timers:          timers,
		Rng:             rng,
		Tuning:          opts.Tuning,
		account:         opts.Account,
		sink:            opts.Sink,
		submitTimeout:   timeout,
		log:             log,
	}
	g.PlayerSystem = system.NewPlayerSystem(ecs, opts.Tuning, eventDispatcher, timers, g, log)
	g.DropSystem = system.NewDropSystem(ecs, opts.Tuning, eventDispatcher, g.PlayerSystem, log)
	g.EnemySystem = system.NewEnemySystem(ecs, opts.Tuning, eventDispatcher, timers, rng, g.PlayerSystem, g.DropSystem, log)
	g.SpawnSystem = system.NewSpawnSystem(ecs, opts.Tuning, eventDispatcher, timers, rng, log)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, opts.Tuning, g.EnemySystem, log)
	g.SectionSystem = system.NewSectionSystem(ecs, opts.Tuning, eventDispatcher, g, log)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.RenderSystem = system.NewRenderSystem(ecs)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.PlayerDied, listener)
	eventDispatcher.Subscribe(event.WaveCleared, listener)

	log.Info().Int64("seed", opts.Tuning.Seed).Msg("session started")
	g.StartWave(1)
	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		// Новые враги больше не нужны; уже идущие таймеры смерти доиграют
		l.game.log.Info().Int("pending_timers", l.game.Timers.Len()).Msg("player died, waiting for death sequence")
	case event.WaveCleared:
		if data, ok := e.Data.(event.WaveData); ok {
			l.game.log.Debug().Int("wave", data.Wave).Int("currency", l.game.ECS.Player.Currency).Msg("advance unlocked")
		}
	}
}

// Update advances the simulation by one tick. Timers due by the new time
// run first, then player, enemies, projectiles, drops and sections.
func (g *Game) Update(deltaTime float64, in component.Input) {
	if g.closed || g.over {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			g.log.Error().Interface("panic", r).Float64("time", g.ECS.GameTime).Msg("tick aborted")
		}
	}()
	if deltaTime < 0 {
		deltaTime = 0
	}

	g.ECS.GameTime += deltaTime
	g.Timers.Advance(deltaTime)
	if g.over {
		return
	}

	g.PlayerSystem.Update(deltaTime, in)
	if g.ECS.Player.Alive() {
		g.EnemySystem.Update(deltaTime)
		g.ProjectileSystem.Update(deltaTime)
		g.DropSystem.Update(deltaTime)
	}
	g.SectionSystem.Update(deltaTime)
	g.VisualEffectSystem.Update(deltaTime)
	g.ECS.Compact()
}

// StartWave реализует interfaces.GameContext.
func (g *Game) StartWave(waveNumber int) {
	if g.closed {
		return
	}
	g.SpawnSystem.StartWave(waveNumber)
}

// EndSession реализует interfaces.GameContext: собирает итог и отдаёт его
// наружу. Повторные вызовы ничего не делают.
func (g *Game) EndSession() {
	if g.over {
		return
	}
	g.over = true

	result := interfaces.SessionResult{
		SessionID:      uuid.NewString(),
		Account:        g.account,
		Kills:          g.ECS.Player.Kills,
		WaveReached:    g.WaveNumber(),
		CurrencyEarned: g.ECS.Player.Currency,
		EndedAt:        time.Now().UTC(),
	}
	g.result = &result

	if g.sink != nil {
		ctx, cancel := context.WithTimeout(context.Background(), g.submitTimeout)
		defer cancel()
		if err := g.sink.Submit(ctx, result); err != nil {
			g.log.Error().Err(err).Str("session", result.SessionID).Msg("failed to submit session result")
		}
	}

	g.log.Info().
		Str("session", result.SessionID).
		Int("kills", result.Kills).
		Int("wave", result.WaveReached).
		Int("currency", result.CurrencyEarned).
		Msg("session ended")
	g.EventDispatcher.Dispatch(event.Event{Type: event.SessionEnded, Data: result})
}

// Close снимает все ожидающие таймеры и убирает сущности. Вызывается при
// выходе из сцены; после него Update ничего не делает.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	dropped := g.Timers.Len()
	g.Timers.Clear()
	g.ECS.ClearEntities()
	g.log.Debug().Int("dropped_timers", dropped).Msg("session closed")
}

// Over true после EndSession.
func (g *Game) Over() bool {
	return g.over
}

// Result итог сессии; nil, пока она не закончилась.
func (g *Game) Result() *interfaces.SessionResult {
	return g.result
}

func (g *Game) WaveNumber() int {
	if g.ECS.Wave == nil {
		return 0
	}
	return g.ECS.Wave.Number
}
