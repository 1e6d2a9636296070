package state

import (
	"fmt"
	"image"
	"time"

	"go-wave-brawler/internal/app"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/interfaces"
	"go-wave-brawler/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverState итоги забега; клик или Enter возвращает в меню.
type GameOverState struct {
	sm        *StateMachine
	result    interfaces.SessionResult
	opts      app.Options
	menu      *ui.MenuButton
	enteredAt time.Time
}

func NewGameOverState(sm *StateMachine, result interfaces.SessionResult, opts app.Options) *GameOverState {
	w, h := 240, 56
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight/2 + 120
	return &GameOverState{
		sm:     sm,
		result: result,
		opts:   opts,
		menu:   ui.NewMenuButton(image.Rect(x, y, x+w, y+h), "MENU"),
	}
}

func (s *GameOverState) Enter() {
	s.enteredAt = time.Now()
}

// Lines строки итогов в порядке вывода.
func (s *GameOverState) Lines() []string {
	return []string{
		fmt.Sprintf("account   %s", s.result.Account),
		fmt.Sprintf("kills     %d", s.result.Kills),
		fmt.Sprintf("wave      %d", s.result.WaveReached),
		fmt.Sprintf("sire      %d", s.result.CurrencyEarned),
	}
}

func (s *GameOverState) Update(deltaTime float64) {
	// Клик, которым добивали врага, не должен сразу закрыть экран
	if time.Since(s.enteredAt) < config.ClickCooldown*time.Millisecond {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewMenuState(s.sm, s.opts))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	cx := float64(config.ScreenWidth) / 2
	ui.DrawOutlined(screen, "YOU PERISHED", cx, float64(config.ScreenHeight)/2-110, 5, config.TextAccentColor, config.HealthBarBgColor)
	for i, line := range s.Lines() {
		ui.DrawCentered(screen, line, cx, float64(config.ScreenHeight)/2-30+float64(i)*28, 2, config.TextLightColor)
	}
	s.menu.Draw(screen)
}

func (s *GameOverState) Exit() {}
