package component

// PlayerState явное состояние игрока вместо набора флагов.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalking
	PlayerRunning
	PlayerJumping
	PlayerAttacking
	PlayerDead
)

func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerWalking:
		return "walking"
	case PlayerRunning:
		return "running"
	case PlayerJumping:
		return "jumping"
	case PlayerAttacking:
		return "attacking"
	case PlayerDead:
		return "dead"
	default:
		return "unknown"
	}
}

var locomotion = []PlayerState{PlayerIdle, PlayerWalking, PlayerRunning}

// PlayerTransitions таблица допустимых переходов. Прыжок и атака взаимно
// исключают друг друга, из Dead выхода нет.
var PlayerTransitions = map[PlayerState][]PlayerState{
	PlayerIdle:      append(locomotion, PlayerJumping, PlayerAttacking, PlayerDead),
	PlayerWalking:   append(locomotion, PlayerJumping, PlayerAttacking, PlayerDead),
	PlayerRunning:   append(locomotion, PlayerJumping, PlayerAttacking, PlayerDead),
	PlayerJumping:   append(locomotion, PlayerDead),
	PlayerAttacking: append(locomotion, PlayerDead),
	PlayerDead:      nil,
}

// CanTransition проверяет переход по таблице.
func (s PlayerState) CanTransition(to PlayerState) bool {
	for _, allowed := range PlayerTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Busy true, если прыжок или атака не дают выбирать анимацию движения.
func (s PlayerState) Busy() bool {
	return s == PlayerJumping || s == PlayerAttacking
}

// EnemyState явное состояние врага.
type EnemyState int

const (
	EnemyIdle EnemyState = iota
	EnemyWalking
	EnemyHurt
	EnemyAttacking
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyWalking:
		return "walking"
	case EnemyHurt:
		return "hurt"
	case EnemyAttacking:
		return "attacking"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

// EnemyTransitions таблица допустимых переходов врага. Dead терминальное.
var EnemyTransitions = map[EnemyState][]EnemyState{
	EnemyIdle:      {EnemyWalking, EnemyAttacking, EnemyHurt, EnemyDead},
	EnemyWalking:   {EnemyAttacking, EnemyHurt, EnemyDead},
	EnemyHurt:      {EnemyWalking, EnemyAttacking, EnemyDead},
	EnemyAttacking: {EnemyWalking, EnemyDead},
	EnemyDead:      nil,
}

// CanTransition проверяет переход по таблице.
func (s EnemyState) CanTransition(to EnemyState) bool {
	for _, allowed := range EnemyTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Chasing true для состояний, в которых враг идёт к игроку.
func (s EnemyState) Chasing() bool {
	return s == EnemyIdle || s == EnemyWalking || s == EnemyHurt
}
