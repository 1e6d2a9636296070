package event

const (
	WaveStarted              EventType = "WaveStarted"  // Data: WaveData
	EnemySpawned             EventType = "EnemySpawned" // Data: EntityData
	EnemyHit                 EventType = "EnemyHit"     // Data: EntityData
	EnemyKilled              EventType = "EnemyKilled"  // Data: EntityData, после анимации смерти
	EnemyDying               EventType = "EnemyDying"   // Data: EntityData, сразу после смертельного попадания
	WaveCleared              EventType = "WaveCleared"  // Data: WaveData
	ProjectileFired          EventType = "ProjectileFired"
	PlayerDamaged            EventType = "PlayerDamaged" // Data: SoulData
	PlayerHealed             EventType = "PlayerHealed"  // Data: SoulData
	PlayerDied               EventType = "PlayerDied"
	DropSpawned              EventType = "DropSpawned"   // Data: DropData
	DropCollected            EventType = "DropCollected" // Data: DropData
	SectionTransitionStarted EventType = "SectionTransitionStarted"
	SectionAdvanced          EventType = "SectionAdvanced" // Data: WaveData
	SessionEnded             EventType = "SessionEnded"    // Data: interfaces.SessionResult
)
