// internal/system/wave.go
package system

import (
	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/defs"
	"go-wave-brawler/internal/entity"
	"go-wave-brawler/internal/event"
	"go-wave-brawler/internal/timer"
	"go-wave-brawler/internal/utils"

	"github.com/rs/zerolog"
)

// SpawnSystem запускает волны: считает параметры и расставляет спавн по таймерам.
type SpawnSystem struct {
	ecs             *entity.ECS
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
	timers          *timer.Queue
	rng             *utils.PRNGService
	log             zerolog.Logger
}

func NewSpawnSystem(ecs *entity.ECS, tuning config.Tuning, eventDispatcher *event.Dispatcher, timers *timer.Queue, rng *utils.PRNGService, log zerolog.Logger) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		timers:          timers,
		rng:             rng,
		log:             log.With().Str("system", "wave").Logger(),
	}
}

// StartWave заменяет текущую волну на волну n. i-й враг появляется через
// i*SpawnInterval, первый сразу на следующем тике.
func (s *SpawnSystem) StartWave(n int) *component.Wave {
	def := defs.WaveFor(n, s.tuning)
	wave := &component.Wave{
		Number:           def.Number,
		Index:            def.Index,
		Cycle:            def.Cycle,
		Bars:             def.Bars,
		Speed:            def.Speed,
		Damage:           def.Damage,
		EnemiesRemaining: def.Index,
	}
	s.ecs.Wave = wave
	s.ecs.Effects.ShowAdvance = false

	s.log.Info().
		Int("wave", wave.Number).
		Int("enemies", wave.Index).
		Int("cycle", wave.Cycle).
		Int("bars", wave.Bars).
		Float64("speed", wave.Speed).
		Int("damage", wave.Damage).
		Msg("wave started")
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: wave.Number, Section: s.ecs.Section.Current}})

	for i := 0; i < wave.Index; i++ {
		s.timers.After(float64(i)*s.tuning.SpawnInterval, timer.NoOwner, func() {
			s.spawnEnemy(wave)
		})
	}
	return wave
}

func (s *SpawnSystem) spawnEnemy(wave *component.Wave) {
	if s.ecs.Wave != wave {
		s.log.Debug().Int("wave", wave.Number).Msg("spawn for replaced wave dropped")
		return
	}
	if !s.ecs.Player.Alive() || wave.Spawned >= wave.Index {
		return
	}

	enemyType := defs.EnemyType(s.rng.Between(1, s.tuning.EnemyTypes))
	x := s.tuning.SectionWidth - s.tuning.SpawnInsetX
	y := float64(s.rng.Between(int(s.tuning.RoadTop), int(s.tuning.RoadBottom)))

	id := s.ecs.AddEnemy(x, y, &component.Enemy{
		Type:       enemyType,
		Bars:       wave.Bars,
		MaxBars:    wave.Bars,
		Speed:      wave.Speed,
		Damage:     wave.Damage,
		State:      component.EnemyIdle,
		Wave:       wave.Number,
		FacingLeft: true,
	})
	wave.Spawned++

	// постоять, потом идти к игроку
	s.timers.After(s.tuning.EnemySpawnIdle, id, func() {
		if e, ok := s.ecs.Enemies[id]; ok && e.State == component.EnemyIdle {
			setEnemyState(s.log, id, e, component.EnemyWalking)
		}
	})

	s.log.Debug().Uint64("enemy", uint64(id)).Str("type", defs.Enemy(enemyType).Name).Float64("y", y).Msg("enemy spawned")
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EntityData{ID: id, X: x, Y: y}})
}
