package component

import "go-wave-brawler/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Type       defs.EnemyType
	Bars       int     // оставшиеся очки здоровья
	MaxBars    int     // для полосы здоровья
	Speed      float64 // единиц в секунду
	Damage     int     // урон по игроку в конце удара
	State      EnemyState
	Wave       int // номер волны, которая его породила
	FacingLeft bool
}

// Dead true после смертельного попадания, даже пока играет анимация смерти.
func (e *Enemy) Dead() bool {
	return e.State == EnemyDead
}
