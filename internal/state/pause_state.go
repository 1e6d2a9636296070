// internal/state/pause_state.go
package state

import (
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сессию: симуляция не получает тиков, таймеры стоят.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if pauseRequested() {
		s.stateMachine.SetState(s.previousState)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.previousState.Quit()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	drawOverlay(screen, config.PauseOverlayColor)

	cx := float64(config.ScreenWidth) / 2
	ui.DrawOutlined(screen, "PAUSED", cx, float64(config.ScreenHeight)/2, 4, config.TextLightColor, config.HealthBarBgColor)
	ui.DrawCentered(screen, "P / Esc / F9 resume   Q quit to menu", cx, float64(config.ScreenHeight)/2+40, 1, config.TextLightColor)
}

func (s *PauseState) Exit() {}
