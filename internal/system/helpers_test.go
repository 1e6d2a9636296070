package system

import (
	"testing"

	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/entity"
	"go-wave-brawler/internal/event"
	"go-wave-brawler/internal/timer"
	"go-wave-brawler/internal/utils"

	"github.com/rs/zerolog"
)

var allEvents = []event.EventType{
	event.WaveStarted, event.EnemySpawned, event.EnemyHit, event.EnemyKilled,
	event.EnemyDying, event.WaveCleared, event.ProjectileFired, event.PlayerDamaged,
	event.PlayerHealed, event.PlayerDied, event.DropSpawned, event.DropCollected,
	event.SectionTransitionStarted, event.SectionAdvanced,
}

type fakeGame struct {
	spawn   *SpawnSystem
	started []int
	ended   int
}

func (f *fakeGame) StartWave(n int) {
	f.started = append(f.started, n)
	if f.spawn != nil {
		f.spawn.StartWave(n)
	}
}

func (f *fakeGame) EndSession() { f.ended++ }

// world собирает системы так же, как app.Game, но без хоста.
type world struct {
	tuning      config.Tuning
	ecs         *entity.ECS
	timers      *timer.Queue
	dispatcher  *event.Dispatcher
	game        *fakeGame
	player      *PlayerSystem
	enemies     *EnemySystem
	spawn       *SpawnSystem
	projectiles *ProjectileSystem
	drops       *DropSystem
	sections    *SectionSystem
	effects     *VisualEffectSystem
	events      map[event.EventType]int
}

func newWorld(t *testing.T) *world {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 42

	log := zerolog.Nop()
	w := &world{
		tuning:     tuning,
		ecs:        entity.NewECS(tuning),
		timers:     timer.NewQueue(),
		dispatcher: event.NewDispatcher(),
		game:       &fakeGame{},
		events:     make(map[event.EventType]int),
	}
	rng := utils.NewPRNGService(tuning.Seed)
	w.player = NewPlayerSystem(w.ecs, tuning, w.dispatcher, w.timers, w.game, log)
	w.drops = NewDropSystem(w.ecs, tuning, w.dispatcher, w.player, log)
	w.enemies = NewEnemySystem(w.ecs, tuning, w.dispatcher, w.timers, rng, w.player, w.drops, log)
	w.spawn = NewSpawnSystem(w.ecs, tuning, w.dispatcher, w.timers, rng, log)
	w.projectiles = NewProjectileSystem(w.ecs, tuning, w.enemies, log)
	w.sections = NewSectionSystem(w.ecs, tuning, w.dispatcher, w.game, log)
	w.effects = NewVisualEffectSystem(w.ecs)

	for _, et := range allEvents {
		et := et
		w.dispatcher.Subscribe(et, event.ListenerFunc(func(event.Event) { w.events[et]++ }))
	}
	return w
}

func (w *world) tick(dt float64, in component.Input) {
	w.ecs.GameTime += dt
	w.timers.Advance(dt)
	w.player.Update(dt, in)
	if w.ecs.Player.Alive() {
		w.enemies.Update(dt)
		w.projectiles.Update(dt)
		w.drops.Update(dt)
	}
	w.sections.Update(dt)
	w.effects.Update(dt)
	w.ecs.Compact()
}

// run крутит пустой ввод мелкими шагами, пока не пройдёт seconds.
func (w *world) run(seconds float64) {
	const step = 0.01
	for elapsed := 0.0; elapsed < seconds-1e-9; elapsed += step {
		w.tick(step, component.Input{})
	}
}

// addEnemy ставит врага без участия спавнера.
func (w *world) addEnemy(x, y float64, bars int, state component.EnemyState) *component.Enemy {
	e := &component.Enemy{Type: 1, Bars: bars, MaxBars: bars, Speed: 40, Damage: 10, State: state, Wave: 1}
	w.ecs.AddEnemy(x, y, e)
	return e
}
