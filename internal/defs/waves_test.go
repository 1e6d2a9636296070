package defs

import (
	"os"
	"path/filepath"
	"testing"

	"go-wave-brawler/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveForScaling(t *testing.T) {
	tu := config.DefaultTuning()
	tests := []struct {
		wave   int
		index  int
		cycle  int
		bars   int
		speed  float64
		damage int
	}{
		{wave: 1, index: 1, cycle: 0, bars: 2, speed: 40, damage: 10},
		{wave: 7, index: 7, cycle: 0, bars: 2, speed: 40, damage: 10},
		{wave: 10, index: 10, cycle: 0, bars: 2, speed: 40, damage: 10},
		{wave: 11, index: 1, cycle: 1, bars: 4, speed: 50, damage: 20},
		{wave: 20, index: 10, cycle: 1, bars: 4, speed: 50, damage: 20},
		{wave: 21, index: 1, cycle: 2, bars: 8, speed: 60, damage: 40},
		{wave: 45, index: 5, cycle: 4, bars: 32, speed: 80, damage: 160},
	}
	for _, tt := range tests {
		w := WaveFor(tt.wave, tu)
		assert.Equal(t, tt.index, w.Index, "index for wave %d", tt.wave)
		assert.Equal(t, tt.cycle, w.Cycle, "cycle for wave %d", tt.wave)
		assert.Equal(t, tt.bars, w.Bars, "bars for wave %d", tt.wave)
		assert.InDelta(t, tt.speed, w.Speed, 1e-9, "speed for wave %d", tt.wave)
		assert.Equal(t, tt.damage, w.Damage, "damage for wave %d", tt.wave)
	}
}

func TestWaveForInvariantsOverManyWaves(t *testing.T) {
	tu := config.DefaultTuning()
	for n := 1; n <= 200; n++ {
		w := WaveFor(n, tu)
		require.GreaterOrEqual(t, w.Index, 1)
		require.LessOrEqual(t, w.Index, 10)
		require.GreaterOrEqual(t, w.Cycle, 0)
		assert.Equal(t, tu.BaseBars*(1<<w.Cycle), w.Bars)
		assert.Equal(t, tu.BaseDamage*(1<<w.Cycle), w.Damage)
		assert.InDelta(t, tu.BaseSpeed*(1+0.25*float64(w.Cycle)), w.Speed, 1e-9)
		assert.Equal(t, w, WaveFor(n, tu), "wave %d must be deterministic", n)
	}
}

func TestWaveForClampsBelowOne(t *testing.T) {
	tu := config.DefaultTuning()
	assert.Equal(t, WaveFor(1, tu).Bars, WaveFor(0, tu).Bars)
	assert.Equal(t, 1, WaveFor(-3, tu).Index)
}

func TestLootTableResolve(t *testing.T) {
	lt := EnemyLootTable(config.DefaultTuning())
	assert.Equal(t, DropCurrency, lt.Resolve(1))
	assert.Equal(t, DropCurrency, lt.Resolve(5))
	assert.Equal(t, DropHealth, lt.Resolve(6))
	assert.Equal(t, DropHealth, lt.Resolve(55))
	assert.Equal(t, DropNone, lt.Resolve(56))
	assert.Equal(t, DropNone, lt.Resolve(1000))
}

func TestEmbeddedEnemyLibrary(t *testing.T) {
	require.Len(t, EnemyLibrary, 4)
	for id := EnemyType(1); id <= 4; id++ {
		def, ok := EnemyLibrary[id]
		require.True(t, ok, "type %d", id)
		assert.NotEmpty(t, def.Name)
		assert.Equal(t, uint8(255), def.Visuals.Color.Color().A)
	}
	assert.Equal(t, EnemyLibrary[1], Enemy(99))
}

func TestLoadEnemyDefinitions(t *testing.T) {
	saved := EnemyLibrary
	t.Cleanup(func() { EnemyLibrary = saved })

	path := filepath.Join(t.TempDir(), "enemies.yaml")
	data := "enemies:\n  - id: 1\n    name: Test\n    visuals:\n      color: [1, 2, 3, 255]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	require.NoError(t, LoadEnemyDefinitions(path))
	require.Len(t, EnemyLibrary, 1)
	assert.Equal(t, 1.0, EnemyLibrary[1].Visuals.RadiusFactor)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("enemies: []\n"), 0o644))
	assert.Error(t, LoadEnemyDefinitions(empty))
}
