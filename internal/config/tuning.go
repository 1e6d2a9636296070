package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every numeric constant the simulation reads at runtime.
// Durations are in seconds, distances in world units.
type Tuning struct {
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`

	// Combat math
	BaseBars   int     `yaml:"base_bars"`
	BaseSpeed  float64 `yaml:"base_speed"`
	BaseDamage int     `yaml:"base_damage"`
	WaveLength int     `yaml:"wave_length"`

	// Spawning
	SpawnInterval  float64 `yaml:"spawn_interval"`
	SpawnInsetX    float64 `yaml:"spawn_inset_x"`
	EnemySpawnIdle float64 `yaml:"enemy_spawn_idle"`
	EnemyTypes     int     `yaml:"enemy_types"`

	// Level
	SectionWidth   float64 `yaml:"section_width"`
	TotalSections  int     `yaml:"total_sections"`
	ForwardTrigger float64 `yaml:"forward_trigger"`
	TransitionTime float64 `yaml:"transition_time"`
	BackgroundTile float64 `yaml:"background_tile"`
	RoadTop        float64 `yaml:"road_top"`
	RoadBottom     float64 `yaml:"road_bottom"`

	// Player
	MaxSoul             int     `yaml:"max_soul"`
	WalkSpeed           float64 `yaml:"walk_speed"`
	RunSpeed            float64 `yaml:"run_speed"`
	JumpHeight          float64 `yaml:"jump_height"`
	JumpHalfTime        float64 `yaml:"jump_half_time"`
	AttackDuration      float64 `yaml:"attack_duration"`
	AttackImpactDelay   float64 `yaml:"attack_impact_delay"`
	ProjectileSpeed     float64 `yaml:"projectile_speed"`
	ProjectileOffsetX   float64 `yaml:"projectile_offset_x"`
	ProjectileOffsetY   float64 `yaml:"projectile_offset_y"`
	PlayerDeathDuration float64 `yaml:"player_death_duration"`
	DeathFadeDuration   float64 `yaml:"death_fade_duration"`

	// Enemies
	MeleeRange          float64 `yaml:"melee_range"`
	EnemyAttackDuration float64 `yaml:"enemy_attack_duration"`
	EnemyDeathDuration  float64 `yaml:"enemy_death_duration"`
	HurtRecover         float64 `yaml:"hurt_recover"`
	HitRadius           float64 `yaml:"hit_radius"`

	// Drops
	PickupRadius   float64 `yaml:"pickup_radius"`
	DropRollMax    int     `yaml:"drop_roll_max"`
	CurrencyWeight int     `yaml:"currency_weight"`
	HealthWeight   int     `yaml:"health_weight"`
	HealthRestore  int     `yaml:"health_restore"`
}

// DefaultTuning returns the stock game values.
func DefaultTuning() Tuning {
	return Tuning{
		LogLevel: "info",

		BaseBars:   2,
		BaseSpeed:  40,
		BaseDamage: 10,
		WaveLength: 10,

		SpawnInterval:  2.0,
		SpawnInsetX:    50,
		EnemySpawnIdle: 1.0,
		EnemyTypes:     4,

		SectionWidth:   1024,
		TotalSections:  5,
		ForwardTrigger: 1000,
		TransitionTime: 1.0,
		BackgroundTile: 7335,
		RoadTop:        RoadTop,
		RoadBottom:     RoadBottom,

		MaxSoul:             100,
		WalkSpeed:           120,
		RunSpeed:            200,
		JumpHeight:          80,
		JumpHalfTime:        0.3,
		AttackDuration:      0.5,
		AttackImpactDelay:   0.3,
		ProjectileSpeed:     300,
		ProjectileOffsetX:   30,
		ProjectileOffsetY:   -30,
		PlayerDeathDuration: 1.0,
		DeathFadeDuration:   1.0,

		MeleeRange:          40,
		EnemyAttackDuration: 0.6,
		EnemyDeathDuration:  0.8,
		HurtRecover:         0.3,
		HitRadius:           30,

		PickupRadius:   40,
		DropRollMax:    1000,
		CurrencyWeight: 5,
		HealthWeight:   50,
		HealthRestore:  25,
	}
}

// LevelWidth is the full scrollable width projectiles may travel in.
func (t Tuning) LevelWidth() float64 {
	return float64(t.TotalSections) * t.SectionWidth
}

// Validate reports the first value that would break the simulation.
func (t Tuning) Validate() error {
	switch {
	case t.BaseBars <= 0:
		return fmt.Errorf("base_bars must be positive, got %d", t.BaseBars)
	case t.WaveLength <= 0:
		return fmt.Errorf("wave_length must be positive, got %d", t.WaveLength)
	case t.EnemyTypes <= 0:
		return fmt.Errorf("enemy_types must be positive, got %d", t.EnemyTypes)
	case t.TotalSections <= 0:
		return fmt.Errorf("total_sections must be positive, got %d", t.TotalSections)
	case t.SectionWidth <= 0:
		return fmt.Errorf("section_width must be positive, got %v", t.SectionWidth)
	case t.RoadTop > t.RoadBottom:
		return fmt.Errorf("road_top %v is below road_bottom %v", t.RoadTop, t.RoadBottom)
	case t.MaxSoul <= 0:
		return fmt.Errorf("max_soul must be positive, got %d", t.MaxSoul)
	case t.AttackImpactDelay > t.AttackDuration:
		return fmt.Errorf("attack_impact_delay %v exceeds attack_duration %v", t.AttackImpactDelay, t.AttackDuration)
	case t.DropRollMax <= 0 || t.CurrencyWeight+t.HealthWeight > t.DropRollMax:
		return fmt.Errorf("drop weights %d+%d do not fit roll range %d", t.CurrencyWeight, t.HealthWeight, t.DropRollMax)
	}
	return nil
}

// LoadTuning reads a YAML file on top of the defaults. Keys missing from the
// file keep their default value. An empty path returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return t, nil
}
