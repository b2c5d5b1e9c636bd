// internal/utils/prng.go
package utils

import (
	"math/rand"
	"sync"
	"time"
)

// PRNGService оборачивает генератор случайных чисел, чтобы выбор
// запасных текстов советника был воспроизводим при заданном сиде.
// Безопасен для вызова из нескольких горутин.
type PRNGService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Choose returns a random element of items, or "" when items is empty.
func (s *PRNGService) Choose(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[s.Intn(len(items))]
}
