package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskgauge/backend/internal/database"
	"github.com/riskgauge/backend/internal/models"
	"github.com/riskgauge/backend/internal/risk"
)

func newGormStore(t *testing.T) *GormRiskStore {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "risks.db"))
	require.NoError(t, err)
	s := NewGormRiskStore(db)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return s
}

func stores(t *testing.T) map[string]RiskStore {
	return map[string]RiskStore{
		"gorm":   newGormStore(t),
		"memory": NewMemoryRiskStore(),
	}
}

func mustRisk(t *testing.T, asset string, likelihood, impact int) *models.Risk {
	t.Helper()
	a, err := risk.Evaluate(risk.Input{Asset: asset, Threat: "threat", Likelihood: likelihood, Impact: impact})
	require.NoError(t, err)
	return models.NewRisk(a)
}

// seed appends one record per level: Low(1), Medium(2), High(3), Critical(4).
func seed(t *testing.T, s RiskStore) {
	t.Helper()
	ctx := context.Background()
	for _, r := range []*models.Risk{
		mustRisk(t, "low", 1, 1),
		mustRisk(t, "medium", 3, 4),
		mustRisk(t, "high", 3, 5),
		mustRisk(t, "critical", 5, 5),
	} {
		_, err := s.Append(ctx, r)
		require.NoError(t, err)
	}
}

func assets(rs []models.Risk) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Asset
	}
	return out
}

func TestRiskStore_AppendAssignsIncreasingIDs(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := mustRisk(t, "a", 1, 1)
			id1, err := s.Append(ctx, first)
			require.NoError(t, err)
			assert.Equal(t, id1, first.ID)

			id2, err := s.Append(ctx, mustRisk(t, "b", 2, 2))
			require.NoError(t, err)
			assert.Greater(t, id2, id1)
			assert.Positive(t, id1)
		})
	}
}

func TestRiskStore_ListNewestFirstRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			seed(t, s)

			in := mustRisk(t, "DB Server", 4, 5)
			id, err := s.Append(ctx, in)
			require.NoError(t, err)

			got, err := s.List(ctx, "")
			require.NoError(t, err)
			require.Len(t, got, 5)

			newest := got[0]
			assert.Equal(t, id, newest.ID)
			assert.Equal(t, "DB Server", newest.Asset)
			assert.Equal(t, "threat", newest.Threat)
			assert.Equal(t, 4, newest.Likelihood)
			assert.Equal(t, 5, newest.Impact)
			assert.Equal(t, 20, newest.Score)
			assert.Equal(t, risk.LevelCritical, newest.Level)
			assert.Equal(t, risk.Hint(risk.LevelCritical), newest.Hint)
			assert.False(t, newest.CreatedAt.IsZero())

			for i := 1; i < len(got); i++ {
				assert.Greater(t, got[i-1].ID, got[i].ID)
			}
		})
	}
}

func TestRiskStore_ListMinLevel(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			seed(t, s)

			tests := []struct {
				min  risk.Level
				want []string
			}{
				{"", []string{"critical", "high", "medium", "low"}},
				{risk.LevelLow, []string{"critical", "high", "medium", "low"}},
				{risk.LevelMedium, []string{"critical", "high", "medium"}},
				{risk.LevelHigh, []string{"critical", "high"}},
				{risk.LevelCritical, []string{"critical"}},
			}
			for _, tt := range tests {
				got, err := s.List(ctx, tt.min)
				require.NoError(t, err)
				assert.Equal(t, tt.want, assets(got), "min=%q", tt.min)
			}
		})
	}
}

func TestRiskStore_UnknownLevelMatchesNothing(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, s)
			got, err := s.List(context.Background(), risk.Level("Severe"))
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestRiskStore_ListIsIdempotent(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			seed(t, s)
			first, err := s.List(ctx, risk.LevelMedium)
			require.NoError(t, err)
			second, err := s.List(ctx, risk.LevelMedium)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestRiskStore_ConcurrentAppendsNeverReuseIDs(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			const workers, perWorker = 8, 5
			ctx := context.Background()

			var (
				mu  sync.Mutex
				ids = map[uint]bool{}
				wg  sync.WaitGroup
			)
			for w := 0; w < workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < perWorker; i++ {
						id, err := s.Append(ctx, mustRisk(t, "x", 2, 3))
						if !assert.NoError(t, err) {
							return
						}
						mu.Lock()
						assert.False(t, ids[id], "id %d reused", id)
						ids[id] = true
						mu.Unlock()
					}
				}()
			}
			wg.Wait()

			assert.Len(t, ids, workers*perWorker)
			all, err := s.List(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, workers*perWorker)
		})
	}
}

func TestGormRiskStore_FailedAppendLeavesNothingVisible(t *testing.T) {
	s := newGormStore(t)
	ctx := context.Background()

	// Consistent score/level but outside the column CHECK constraint.
	bad := &models.Risk{Asset: "a", Threat: "t", Likelihood: 6, Impact: 1, Score: 6, Level: risk.LevelMedium}
	id, err := s.Append(ctx, bad)
	require.Error(t, err)
	assert.Zero(t, id)
	assert.Zero(t, bad.ID)

	var se *StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "append", se.Op)

	got, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGormRiskStore_ClosedDatabaseSurfacesStorageError(t *testing.T) {
	s := newGormStore(t)
	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = s.Append(context.Background(), mustRisk(t, "a", 1, 1))
	var se *StorageError
	assert.ErrorAs(t, err, &se)

	_, err = s.List(context.Background(), "")
	assert.ErrorAs(t, err, &se)
}

func TestGormRiskStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "risks.db")
	db, err := database.Connect(path)
	require.NoError(t, err)
	s := NewGormRiskStore(db)
	require.NoError(t, s.Migrate())
	_, err = s.Append(context.Background(), mustRisk(t, "persisted", 2, 2))
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	require.NoError(t, sqlDB.Close())

	db2, err := database.Connect(path)
	require.NoError(t, err)
	defer func() {
		sqlDB, _ := db2.DB()
		sqlDB.Close()
	}()
	got, err := NewGormRiskStore(db2).List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"persisted"}, assets(got))
}

func TestMemoryRiskStore_CanceledContext(t *testing.T) {
	s := NewMemoryRiskStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Append(ctx, mustRisk(t, "a", 1, 1))
	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, context.Canceled)
}
