// internal/defs/types.go
package defs

// DropKind defines what a drop gives the player on pickup.
type DropKind string

const (
	DropNone     DropKind = ""
	DropCurrency DropKind = "CURRENCY" // rare token drop
	DropHealth   DropKind = "HEALTH"   // soul restore
)
