// internal/component/player.go
package component

// Player хранит симуляционное состояние игрока. Позиция лежит в общей
// карте Positions под PlayerID.
type Player struct {
	State      PlayerState
	FacingLeft bool
	Soul       int // здоровье, 0..MaxSoul
	Kills      int
	Currency   int

	// Прыжок: высота отсчитывается от линии, с которой прыгнули
	JumpElapsed float64
	JumpOffset  float64
}

// Alive true, пока игрок не перешёл в Dead.
func (p *Player) Alive() bool {
	return p.State != PlayerDead
}
