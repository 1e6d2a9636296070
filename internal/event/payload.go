package event

import (
	"go-wave-brawler/internal/defs"
	"go-wave-brawler/internal/types"
)

// EntityData событие про конкретную сущность и её положение.
type EntityData struct {
	ID   types.EntityID
	X, Y float64
}

// WaveData номер волны и секции.
type WaveData struct {
	Wave    int
	Section int
}

// SoulData здоровье игрока после изменения.
type SoulData struct {
	Soul  int
	Delta int
}

// DropData выпавший или подобранный предмет.
type DropData struct {
	ID   types.EntityID
	Kind defs.DropKind
	X, Y float64
}
