package entity

import (
	"testing"

	"go-wave-brawler/internal/component"
	"go-wave-brawler/internal/config"
	"go-wave-brawler/internal/defs"
	"go-wave-brawler/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewECSCreatesPlayer(t *testing.T) {
	ecs := NewECS(config.DefaultTuning())
	require.NotNil(t, ecs.Player)
	assert.Equal(t, 100, ecs.Player.Soul)
	assert.Equal(t, component.PlayerIdle, ecs.Player.State)
	pos := ecs.PlayerPosition()
	require.NotNil(t, pos)
	assert.Equal(t, config.PlayerStartX, pos.X)
	assert.Equal(t, 5, ecs.Section.Total)
	assert.Equal(t, [2]float64{0, 7335}, ecs.Background.Tiles)
}

func TestEntityOrderSurvivesMarkThenFilter(t *testing.T) {
	ecs := NewECS(config.DefaultTuning())
	a := ecs.AddEnemy(10, 0, &component.Enemy{Bars: 2})
	b := ecs.AddEnemy(20, 0, &component.Enemy{Bars: 2})
	c := ecs.AddEnemy(30, 0, &component.Enemy{Bars: 2})
	assert.Less(t, a, b)
	assert.Less(t, b, c)

	ecs.RemoveEnemy(b)
	// помеченный враг остаётся в порядке до Compact
	assert.Equal(t, []types.EntityID{a, b, c}, ecs.EnemyIDs())
	_, ok := ecs.Enemies[b]
	assert.False(t, ok)
	_, ok = ecs.Positions[b]
	assert.False(t, ok)

	ecs.Compact()
	assert.Equal(t, []types.EntityID{a, c}, ecs.EnemyIDs())
	assert.Equal(t, 2, ecs.LiveEnemies())
}

func TestProjectilesAndDrops(t *testing.T) {
	ecs := NewECS(config.DefaultTuning())
	p := ecs.AddProjectile(5, 6, -300, &component.Projectile{Owner: ecs.PlayerID})
	assert.Equal(t, -300.0, ecs.Velocities[p].X)

	d := ecs.AddDrop(100, 200, &component.Drop{Kind: defs.DropHealth})
	assert.Equal(t, 200.0, ecs.Drops[d].BaseY)
	assert.Equal(t, component.Shadow{X: 100, Y: 212}, *ecs.Shadows[d])

	ecs.RemoveProjectile(p)
	ecs.RemoveDrop(d)
	ecs.Compact()
	assert.Empty(t, ecs.ProjectileIDs())
	assert.Empty(t, ecs.DropIDs())
	assert.Empty(t, ecs.Shadows)
	assert.Empty(t, ecs.Velocities)
}

func TestClearEntitiesKeepsPlayer(t *testing.T) {
	ecs := NewECS(config.DefaultTuning())
	ecs.AddEnemy(1, 1, &component.Enemy{})
	ecs.AddProjectile(1, 1, 300, &component.Projectile{})
	ecs.AddDrop(1, 1, &component.Drop{Kind: defs.DropCurrency})

	ecs.ClearEntities()
	assert.Empty(t, ecs.EnemyIDs())
	assert.Empty(t, ecs.ProjectileIDs())
	assert.Empty(t, ecs.DropIDs())
	assert.Len(t, ecs.Positions, 1)
	assert.NotNil(t, ecs.PlayerPosition())
}
