// internal/interfaces/game_context.go
package interfaces

// GameContext то, что системы могут попросить у игры, не импортируя app.
type GameContext interface {
	StartWave(waveNumber int)
	EndSession()
}
