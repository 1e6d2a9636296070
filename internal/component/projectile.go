// internal/component/projectile.go
package component

import "go-wave-brawler/internal/types"

// Projectile представляет летящий сгусток крови.
type Projectile struct {
	Owner      types.EntityID
	FacingLeft bool
}
