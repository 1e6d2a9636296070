package component

import "go-wave-brawler/internal/defs"

// Drop подбираемый предмет, выпавший из врага.
type Drop struct {
	Kind  defs.DropKind
	BaseY float64 // линия, вокруг которой предмет покачивается
	Age   float64 // фаза анимации покачивания и вращения
	Angle float64 // градусы, 0..360
}

// Shadow тень под предметом, следует за его X и базовой линией.
type Shadow struct {
	X, Y float64
}
