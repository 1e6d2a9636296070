// component/movement.go
package component

// Position компонент позиции. Общий для всех сущностей, поэтому сдвиг
// уровня при смене секции проходит по одной карте.
type Position struct {
	X, Y float64
}

// Velocity компонент скорости по горизонтали (снаряды)
type Velocity struct {
	X float64
}
