// internal/state/menu_state.go
package state

import (
	"image"

	"go-wave-brawler/internal/app"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран: аккаунт и кнопка начала забега.
type MenuState struct {
	sm     *StateMachine
	opts   app.Options
	start  *ui.MenuButton
	errMsg string
}

func NewMenuState(sm *StateMachine, opts app.Options) *MenuState {
	w, h := 240, 56
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight/2 + 40
	return &MenuState{
		sm:    sm,
		opts:  opts,
		start: ui.NewMenuButton(image.Rect(x, y, x+w, y+h), "START"),
	}
}

func (m *MenuState) Enter() {
	m.errMsg = ""
}

func (m *MenuState) Update(deltaTime float64) {
	startPressed := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		startPressed = startPressed || m.start.IsClicked(x, y)
	}
	if !startPressed {
		return
	}
	gs, err := NewGameState(m.sm, m.opts)
	if err != nil {
		m.opts.Logger.Error().Err(err).Msg("failed to start session")
		m.errMsg = err.Error()
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := float64(config.ScreenWidth) / 2
	ui.DrawOutlined(screen, "BLOOD ROAD", cx, float64(config.ScreenHeight)/2-80, 5, config.TextAccentColor, config.HealthBarBgColor)
	ui.DrawCentered(screen, "account: "+m.opts.Account, cx, float64(config.ScreenHeight)/2-20, 1, config.TextLightColor)
	m.start.Draw(screen)
	ui.DrawCentered(screen, "arrows/WASD move  shift run  space jump  . or J attack  P pause", cx, float64(config.ScreenHeight)-60, 1, config.TextLightColor)
	if m.errMsg != "" {
		ui.DrawCentered(screen, m.errMsg, cx, float64(config.ScreenHeight)-30, 1, config.TextAccentColor)
	}
}

func (m *MenuState) Exit() {}
