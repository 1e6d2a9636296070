package defs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/enemies.yaml
var embeddedEnemiesYAML []byte

type enemyDataset struct {
	Enemies []EnemyDefinition `yaml:"enemies"`
}

func init() {
	lib, err := parseEnemyDefinitions(embeddedEnemiesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded enemy definitions are broken: %v", err))
	}
	EnemyLibrary = lib
}

// LoadEnemyDefinitions reads an enemy definition file and replaces the
// EnemyLibrary with its contents.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	lib, err := parseEnemyDefinitions(file)
	if err != nil {
		return err
	}
	EnemyLibrary = lib
	return nil
}

// Enemy returns the definition for a type, falling back to type 1 so that a
// bad type never leaves an enemy without visuals.
func Enemy(t EnemyType) EnemyDefinition {
	if def, ok := EnemyLibrary[t]; ok {
		return def
	}
	return EnemyLibrary[1]
}

func parseEnemyDefinitions(data []byte) (map[EnemyType]EnemyDefinition, error) {
	var ds enemyDataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	if len(ds.Enemies) == 0 {
		return nil, fmt.Errorf("enemy definitions are empty")
	}
	lib := make(map[EnemyType]EnemyDefinition, len(ds.Enemies))
	for _, def := range ds.Enemies {
		if def.ID < 1 {
			return nil, fmt.Errorf("enemy %q has invalid id %d", def.Name, def.ID)
		}
		if def.Visuals.RadiusFactor <= 0 {
			def.Visuals.RadiusFactor = 1
		}
		lib[def.ID] = def
	}
	if _, ok := lib[1]; !ok {
		return nil, fmt.Errorf("enemy definitions must include id 1")
	}
	return lib, nil
}
