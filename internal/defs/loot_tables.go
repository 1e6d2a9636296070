// internal/defs/loot_tables.go
package defs

import "go-wave-brawler/internal/config"

// LootEntry is one row of a drop table. Weight is out of LootTable.RollMax.
type LootEntry struct {
	Kind   DropKind `yaml:"kind"`
	Weight int      `yaml:"weight"`
}

// LootTable describes what an enemy leaves behind on death. A roll is a
// uniform integer in [1, RollMax]; entries claim consecutive ranges in
// order and anything past the last range drops nothing.
type LootTable struct {
	RollMax int         `yaml:"roll_max"`
	Entries []LootEntry `yaml:"entries"`
}

// EnemyLootTable builds the death drop table: currency first, then health.
func EnemyLootTable(t config.Tuning) LootTable {
	return LootTable{
		RollMax: t.DropRollMax,
		Entries: []LootEntry{
			{Kind: DropCurrency, Weight: t.CurrencyWeight},
			{Kind: DropHealth, Weight: t.HealthWeight},
		},
	}
}

// Resolve maps a roll in [1, RollMax] onto a drop kind.
func (lt LootTable) Resolve(roll int) DropKind {
	upto := 0
	for _, entry := range lt.Entries {
		upto += entry.Weight
		if roll <= upto {
			return entry.Kind
		}
	}
	return DropNone
}
