// internal/utils/prng.go
package utils

import (
	"go-wave-brawler/internal/defs"
	"math/rand"
	"time"
)

// PRNGService обёртка над генератором случайных чисел, чтобы вся
// симуляция брала случайность из одного (при желании засеянного) источника.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Between возвращает случайное целое в диапазоне [min, max] включительно.
func (s *PRNGService) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// RollDrop бросает кубик [1, RollMax] и сверяет результат с таблицей.
func (s *PRNGService) RollDrop(table defs.LootTable) defs.DropKind {
	if table.RollMax <= 0 {
		return defs.DropNone
	}
	return table.Resolve(s.Between(1, table.RollMax))
}
