package state

import (
	"go-wave-brawler/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// readInput снимает клавиатуру: стрелки или WASD, Shift бег, пробел
// прыжок, точка или J удар.
func readInput() component.Input {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return component.Input{
		Left:   pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:  pressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:     pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:   pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Run:    pressed(ebiten.KeyShift),
		Jump:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Attack: inpututil.IsKeyJustPressed(ebiten.KeyPeriod) || inpututil.IsKeyJustPressed(ebiten.KeyJ),
	}
}

func pauseRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
