// internal/defs/enemies.go
package defs

import "image/color"

// EnemyType is one of the fixed zombie variants, numbered from 1.
type EnemyType int

// EnemyDefinition holds the static data for one enemy variant.
type EnemyDefinition struct {
	ID      EnemyType `yaml:"id"`
	Name    string    `yaml:"name"`
	Visuals Visuals   `yaml:"visuals"`
}

// Visuals contains parameters for rendering an enemy.
type Visuals struct {
	Color        RGBA    `yaml:"color"`
	RadiusFactor float64 `yaml:"radius_factor"`
}

// RGBA is a colour written in YAML as [r, g, b, a].
type RGBA [4]uint8

// Color converts to the image/color type the renderer uses.
func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// EnemyLibrary is the set of loaded enemy definitions, keyed by type.
var EnemyLibrary map[EnemyType]EnemyDefinition
