// internal/entity/ecs.go
package entity

import (
	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/types"
)

// ECS единственное изменяемое состояние симуляции. Рендер его читает,
// меняют только системы.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	Drops         map[types.EntityID]*component.Drop
	Shadows       map[types.EntityID]*component.Shadow
	DamageFlashes map[types.EntityID]*component.DamageFlash

	PlayerID   types.EntityID
	Player     *component.Player
	Wave       *component.Wave
	Section    *component.Section
	Background *component.Background
	Effects    *component.ScreenEffects

	// Порядок вставки. Удаление помечает запись (удаляет из карт),
	// а Compact вычищает порядок в конце тика.
	enemyOrder      []types.EntityID
	projectileOrder []types.EntityID
	dropOrder       []types.EntityID
}

func NewECS(tuning config.Tuning) *ECS {
	ecs := &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Drops:         make(map[types.EntityID]*component.Drop),
		Shadows:       make(map[types.EntityID]*component.Shadow),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		Section: &component.Section{
			Total: tuning.TotalSections,
		},
		Background: &component.Background{
			Tiles:     [2]float64{0, tuning.BackgroundTile},
			TileWidth: tuning.BackgroundTile,
		},
		Effects: &component.ScreenEffects{},
	}
	ecs.PlayerID = ecs.NewEntity()
	ecs.Positions[ecs.PlayerID] = &component.Position{X: config.PlayerStartX, Y: tuning.RoadBottom}
	ecs.Player = &component.Player{State: component.PlayerIdle, Soul: tuning.MaxSoul}
	return ecs
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// PlayerPosition позиция игрока; всегда существует.
func (ecs *ECS) PlayerPosition() *component.Position {
	return ecs.Positions[ecs.PlayerID]
}

func (ecs *ECS) AddEnemy(x, y float64, enemy *component.Enemy) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Enemies[id] = enemy
	ecs.enemyOrder = append(ecs.enemyOrder, id)
	return id
}

func (ecs *ECS) AddProjectile(x, y, vx float64, proj *component.Projectile) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{X: vx}
	ecs.Projectiles[id] = proj
	ecs.projectileOrder = append(ecs.projectileOrder, id)
	return id
}

func (ecs *ECS) AddDrop(x, y float64, drop *component.Drop) types.EntityID {
	id := ecs.NewEntity()
	drop.BaseY = y
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Drops[id] = drop
	ecs.Shadows[id] = &component.Shadow{X: x, Y: y + config.DropShadowOffset}
	ecs.dropOrder = append(ecs.dropOrder, id)
	return id
}

func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Enemies, id)
	delete(ecs.DamageFlashes, id)
}

func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Projectiles, id)
}

func (ecs *ECS) RemoveDrop(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Drops, id)
	delete(ecs.Shadows, id)
}

// EnemyIDs живые и ещё не вычищенные враги в порядке появления.
// Вызывающий обязан проверять наличие в Enemies: запись могла быть
// удалена раньше в этом же тике.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return ecs.enemyOrder
}

func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return ecs.projectileOrder
}

func (ecs *ECS) DropIDs() []types.EntityID {
	return ecs.dropOrder
}

// Compact убирает из порядка помеченные на удаление сущности.
func (ecs *ECS) Compact() {
	ecs.enemyOrder = filterLive(ecs.enemyOrder, func(id types.EntityID) bool {
		_, ok := ecs.Enemies[id]
		return ok
	})
	ecs.projectileOrder = filterLive(ecs.projectileOrder, func(id types.EntityID) bool {
		_, ok := ecs.Projectiles[id]
		return ok
	})
	ecs.dropOrder = filterLive(ecs.dropOrder, func(id types.EntityID) bool {
		_, ok := ecs.Drops[id]
		return ok
	})
}

func filterLive(ids []types.EntityID, alive func(types.EntityID) bool) []types.EntityID {
	kept := ids[:0]
	for _, id := range ids {
		if alive(id) {
			kept = append(kept, id)
		}
	}
	// не держим хвост старого массива
	for i := len(kept); i < len(ids); i++ {
		ids[i] = 0
	}
	return kept
}

// LiveEnemies считает врагов, ещё не убранных из мира (включая умирающих).
func (ecs *ECS) LiveEnemies() int {
	return len(ecs.Enemies)
}

// ClearEntities убирает всех врагов, снаряды и дропы (выход из сцены).
func (ecs *ECS) ClearEntities() {
	for _, id := range ecs.enemyOrder {
		ecs.RemoveEnemy(id)
	}
	for _, id := range ecs.projectileOrder {
		ecs.RemoveProjectile(id)
	}
	for _, id := range ecs.dropOrder {
		ecs.RemoveDrop(id)
	}
	ecs.Compact()
}
