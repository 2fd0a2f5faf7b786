package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/riskgauge/backend/internal/models"
	"github.com/riskgauge/backend/internal/risk"
)

// MemoryRiskStore is a process-local RiskStore for tests. It is safe for
// concurrent use.
type MemoryRiskStore struct {
	mu     sync.RWMutex
	nextID uint
	rows   []models.Risk
	now    func() time.Time
}

func NewMemoryRiskStore() *MemoryRiskStore {
	return &MemoryRiskStore{now: time.Now}
}

func (s *MemoryRiskStore) Append(ctx context.Context, r *models.Risk) (uint, error) {
	if err := ctx.Err(); err != nil {
		return 0, &StorageError{Op: "append", Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	row := *r
	row.ID = s.nextID
	row.Hint = ""
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.now()
	}
	s.rows = append(s.rows, row)

	r.ID = row.ID
	r.CreatedAt = row.CreatedAt
	return row.ID, nil
}

func (s *MemoryRiskStore) List(ctx context.Context, min risk.Level) ([]models.Risk, error) {
	if err := ctx.Err(); err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	levels := levelsFor(min)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Risk, 0, len(s.rows))
	for i := len(s.rows) - 1; i >= 0; i-- {
		row := s.rows[i]
		if min != "" && !slices.Contains(levels, row.Level) {
			continue
		}
		row.Hint = risk.Hint(row.Level)
		out = append(out, row)
	}
	return out, nil
}
