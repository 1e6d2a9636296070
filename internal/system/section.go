package system

import (
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/entity"
	"go-wave-brawler/internal/event"
	"go-wave-brawler/internal/interfaces"
	"go-wave-brawler/internal/utils"

	"github.com/rs/zerolog"
)

// SectionSystem держит игрока у правого края до зачистки волны и
// прокручивает мир на следующую секцию.
type SectionSystem struct {
	ecs             *entity.ECS
	tuning          config.Tuning
	eventDispatcher *event.Dispatcher
	game            interfaces.GameContext
	log             zerolog.Logger
}

func NewSectionSystem(ecs *entity.ECS, tuning config.Tuning, eventDispatcher *event.Dispatcher, game interfaces.GameContext, log zerolog.Logger) *SectionSystem {
	return &SectionSystem{
		ecs:             ecs,
		tuning:          tuning,
		eventDispatcher: eventDispatcher,
		game:            game,
		log:             log.With().Str("system", "section").Logger(),
	}
}

func (s *SectionSystem) Update(deltaTime float64) {
	section := s.ecs.Section
	if section.Transitioning {
		s.advance(deltaTime)
		return
	}

	wave := s.ecs.Wave
	pos := s.ecs.PlayerPosition()
	trigger := s.tuning.ForwardTrigger
	if wave == nil || !wave.Cleared {
		if pos.X > trigger {
			pos.X = trigger
		}
		return
	}
	if pos.X >= trigger && s.ecs.Player.Alive() {
		s.begin()
	}
}

// begin переход стартует ровно один раз: флаг снимается только в конце анимации.
func (s *SectionSystem) begin() {
	section := s.ecs.Section
	section.Transitioning = true
	section.Elapsed = 0
	section.Shifted = 0
	section.Current = (section.Current + 1) % section.Total

	s.ecs.Effects.ShowAdvance = false
	s.ecs.Effects.Flash = config.FlashDuration
	s.ecs.PlayerPosition().X = s.tuning.ForwardTrigger

	s.log.Info().Int("wave", s.ecs.Wave.Number).Int("section", section.Current).Msg("section transition started")
	s.eventDispatcher.Dispatch(event.Event{Type: event.SectionTransitionStarted, Data: event.WaveData{Wave: s.ecs.Wave.Number, Section: section.Current}})
}

// advance сдвигает весь мир на приращение сглаженного прогресса за тик.
func (s *SectionSystem) advance(deltaTime float64) {
	section := s.ecs.Section
	section.Elapsed += deltaTime

	progress := 1.0
	if s.tuning.TransitionTime > 0 {
		progress = utils.Clamp(section.Elapsed/s.tuning.TransitionTime, 0, 1)
	}
	target := s.tuning.SectionWidth * utils.SineInOut(progress)
	delta := target - section.Shifted
	section.Shifted = target

	s.shift(delta)

	if progress >= 1 {
		s.finish()
	}
}

func (s *SectionSystem) shift(delta float64) {
	if delta == 0 {
		return
	}
	for _, pos := range s.ecs.Positions {
		pos.X -= delta
	}
	for _, shadow := range s.ecs.Shadows {
		shadow.X -= delta
	}

	bg := s.ecs.Background
	bg.Tiles[0] -= delta
	bg.Tiles[1] -= delta
	if bg.Tiles[0] <= -bg.TileWidth {
		bg.Tiles[0] = bg.Tiles[1] + bg.TileWidth
	}
	if bg.Tiles[1] <= -bg.TileWidth {
		bg.Tiles[1] = bg.Tiles[0] + bg.TileWidth
	}
}

func (s *SectionSystem) finish() {
	section := s.ecs.Section
	section.Transitioning = false
	section.Elapsed = 0
	section.Shifted = 0

	next := 1
	if s.ecs.Wave != nil {
		s.ecs.Wave.Cleared = false
		next = s.ecs.Wave.Number + 1
	}
	s.game.StartWave(next)
	s.log.Info().Int("wave", next).Int("section", section.Current).Msg("section advanced")
	s.eventDispatcher.Dispatch(event.Event{Type: event.SectionAdvanced, Data: event.WaveData{Wave: next, Section: section.Current}})
}
