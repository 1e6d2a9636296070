package system

import (
	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/defs"
	"go-wave-brawler/internal/entity"
	"go-wave-brawler/internal/event"
	"go-wave-brawler/internal/types"
	"go-wave-brawler/internal/utils"

	"github.com/rs/zerolog"
)

// DropSystem анимирует выпавшие предметы и выдаёт их игроку при касании.
type DropSystem struct {
	ecs             *entity.ECS
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
	player          *PlayerSystem
	log             zerolog.Logger
}

func NewDropSystem(ecs *entity.ECS, tuning config.Tuning, eventDispatcher *event.Dispatcher, player *PlayerSystem, log zerolog.Logger) *DropSystem {
	return &DropSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		player:          player,
		log:             log.With().Str("system", "drop").Logger(),
	}
}

// Spawn кладёт предмет в точку смерти врага. DropNone ничего не создаёт.
func (s *DropSystem) Spawn(kind defs.DropKind, x, y float64) types.EntityID {
	if kind == defs.DropNone {
		return 0
	}
	id := s.ecs.AddDrop(x, y, &component.Drop{Kind: kind})
	s.log.Debug().Uint64("drop", uint64(id)).Str("kind", string(kind)).Msg("drop spawned")
	s.eventDispatcher.Dispatch(event.Event{Type: event.DropSpawned, Data: event.DropData{ID: id, Kind: kind, X: x, Y: y}})
	return id
}

func (s *DropSystem) Update(deltaTime float64) {
	target := s.ecs.PlayerPosition()
	for _, id := range s.ecs.DropIDs() {
		drop, ok := s.ecs.Drops[id]
		if !ok {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveDrop(id)
			continue
		}

		drop.Age += deltaTime
		pos.Y = drop.BaseY - config.DropFloatHeight*utils.Yoyo(drop.Age, config.DropFloatPeriod)
		drop.Angle = utils.NormalizeDegrees(drop.Age / config.DropSpinPeriod * 360)
		if shadow, ok := s.ecs.Shadows[id]; ok {
			shadow.X = pos.X
			shadow.Y = drop.BaseY + config.DropShadowOffset
		}

		if !s.ecs.Player.Alive() {
			continue
		}
		if utils.Distance(pos.X, pos.Y, target.X, target.Y) < s.tuning.PickupRadius {
			s.collect(id, drop, pos)
		}
	}
}

// collect предмет исчезает сразу, так что второй раз его не подобрать.
func (s *DropSystem) collect(id types.EntityID, drop *component.Drop, pos *component.Position) {
	x, y := pos.X, pos.Y
	s.ecs.RemoveDrop(id)
	switch drop.Kind {
	case defs.DropCurrency:
		s.ecs.Player.Currency++
	case defs.DropHealth:
		s.player.Heal(s.tuning.HealthRestore)
	}
	s.log.Debug().Uint64("drop", uint64(id)).Str("kind", string(drop.Kind)).Int("soul", s.ecs.Player.Soul).Msg("drop collected")
	s.eventDispatcher.Dispatch(event.Event{Type: event.DropCollected, Data: event.DropData{ID: id, Kind: drop.Kind, X: x, Y: y}})
}
