package defs

import "go-wave-brawler/internal/config"

// WaveDefinition is the fully derived description of one wave. It depends
// only on the wave number and the tuning it was computed with.
type WaveDefinition struct {
	Number           int
	Index            int // enemies to spawn, 1..WaveLength
	Cycle            int // difficulty tier, +1 every WaveLength waves
	HealthMultiplier int
	DamageMultiplier int
	SpeedMultiplier  float64
	Bars             int
	Speed            float64
	Damage           int
}

// WaveIndex returns ((n-1) mod length)+1.
func WaveIndex(n, length int) int {
	if n < 1 {
		n = 1
	}
	return (n-1)%length + 1
}

// WaveCycle returns floor((n-1)/length).
func WaveCycle(n, length int) int {
	if n < 1 {
		n = 1
	}
	return (n - 1) / length
}

// WaveFor computes enemy count and per-enemy stats for wave n. Health and
// damage double every cycle, speed grows by a quarter of the base.
func WaveFor(n int, t config.Tuning) WaveDefinition {
	if n < 1 {
		n = 1
	}
	index := WaveIndex(n, t.WaveLength)
	cycle := WaveCycle(n, t.WaveLength)
	pow := 1 << cycle
	speedMult := 1 + 0.25*float64(cycle)
	return WaveDefinition{
		Number:           n,
		Index:            index,
		Cycle:            cycle,
		HealthMultiplier: pow,
		DamageMultiplier: pow,
		SpeedMultiplier:  speedMult,
		Bars:             t.BaseBars * pow,
		Speed:            t.BaseSpeed * speedMult,
		Damage:           t.BaseDamage * pow,
	}
}
