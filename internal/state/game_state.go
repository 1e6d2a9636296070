// internal/state/game_state.go
package state

import (
	"image/color"

	"go-wave-brawler/internal/app"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	opts          app.Options
	soulBar       *ui.SoulBar
	waveIndicator *ui.WaveIndicator
	advance       *ui.AdvanceIndicator
	infoPanel     *ui.InfoPanel
}

func NewGameState(sm *StateMachine, opts app.Options) (*GameState, error) {
	gameLogic, err := app.NewGame(opts)
	if err != nil {
		return nil, err
	}
	return &GameState{
		sm:            sm,
		game:          gameLogic,
		opts:          opts,
		soulBar:       ui.NewSoulBar(config.SoulBarX, config.SoulBarY, config.SoulBarWidth, config.SoulBarHeight),
		waveIndicator: ui.NewWaveIndicator(float64(config.ScreenWidth)/2, 60, 3, opts.Tuning.WaveLength),
		advance:       ui.NewAdvanceIndicator(config.AdvanceIndicatorX, config.AdvanceIndicatorY, config.AdvanceIndicatorRadius, config.AdvancePulsePeriod, config.AdvanceColor),
		infoPanel:     ui.NewInfoPanel(),
	}, nil
}

// Game текущая сессия.
func (g *GameState) Game() *app.Game {
	return g.game
}

// Enter ничего не делает: возврат из паузы продолжает ту же сессию.
func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if pauseRequested() && g.game.ECS.Player.Alive() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime, readInput())
	g.infoPanel.Update(g.game.ECS)

	if g.game.Over() {
		result := g.game.Result()
		g.game.Close()
		g.sm.SetState(NewGameOverState(g.sm, *result, g.opts))
	}
}

// Quit закрывает сессию без результата (выход в меню из паузы).
func (g *GameState) Quit() {
	g.game.Close()
	g.sm.SetState(NewMenuState(g.sm, g.opts))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	ecs := g.game.ECS
	g.game.RenderSystem.Draw(screen, ecs.GameTime)

	g.soulBar.Draw(screen, ecs.Player.Soul, g.game.Tuning.MaxSoul, ecs.GameTime)
	if ecs.Wave != nil {
		g.waveIndicator.Draw(screen, ecs.Wave.Number)
	}
	if ecs.Effects.ShowAdvance {
		g.advance.Draw(screen, ecs.Effects.AdvancePulse)
	}
	g.infoPanel.Draw(screen, ecs)

	if flash := ecs.Effects.Flash; flash > 0 {
		a := uint8(77 * flash / config.FlashDuration)
		drawOverlay(screen, color.RGBA{a, a, a, a})
	}
	if fade := ecs.Effects.DeathFade; fade > 0 {
		drawOverlay(screen, color.RGBA{0, 0, 0, uint8(255 * fade)})
	}
}

// Exit ничего не закрывает: переход в паузу тоже вызывает Exit.
func (g *GameState) Exit() {}

func drawOverlay(screen *ebiten.Image, clr color.RGBA) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, clr, false)
}
