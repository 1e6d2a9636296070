package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningMatchesGameConstants(t *testing.T) {
	tu := DefaultTuning()
	require.NoError(t, tu.Validate())

	assert.Equal(t, 2, tu.BaseBars)
	assert.Equal(t, 40.0, tu.BaseSpeed)
	assert.Equal(t, 10, tu.BaseDamage)
	assert.Equal(t, 2.0, tu.SpawnInterval)
	assert.Equal(t, 1024.0, tu.SectionWidth)
	assert.Equal(t, 5, tu.TotalSections)
	assert.Equal(t, 0.5, tu.AttackDuration)
	assert.Equal(t, 40.0, tu.MeleeRange)
	assert.Equal(t, 30.0, tu.HitRadius)
	assert.Equal(t, 40.0, tu.PickupRadius)
	assert.Equal(t, 25, tu.HealthRestore)
	assert.Equal(t, 5120.0, tu.LevelWidth())
}

func TestLoadTuningOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 42\ntotal_sections: 3\nmelee_range: 55\n"), 0o644))

	tu, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), tu.Seed)
	assert.Equal(t, 3, tu.TotalSections)
	assert.Equal(t, 55.0, tu.MeleeRange)
	assert.Equal(t, 1024.0, tu.SectionWidth)
}

func TestLoadTuningEmptyPathReturnsDefaults(t *testing.T) {
	tu, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tu)
}

func TestLoadTuningErrors(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("total_sections: 0\n"), 0o644))
	_, err = LoadTuning(bad)
	assert.ErrorContains(t, err, "total_sections")

	garbage := filepath.Join(t.TempDir(), "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte("seed: [unterminated"), 0o644))
	_, err = LoadTuning(garbage)
	assert.Error(t, err)
}
