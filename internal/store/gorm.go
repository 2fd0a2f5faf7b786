package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/riskgauge/backend/internal/models"
	"github.com/riskgauge/backend/internal/risk"
)

// GormRiskStore keeps risks in the "risks" table.
type GormRiskStore struct {
	db *gorm.DB
}

func NewGormRiskStore(db *gorm.DB) *GormRiskStore {
	return &GormRiskStore{db: db}
}

// Migrate creates or updates the risks table.
func (s *GormRiskStore) Migrate() error {
	if err := s.db.AutoMigrate(&models.Risk{}); err != nil {
		return &StorageError{Op: "migrate", Err: err}
	}
	return nil
}

func (s *GormRiskStore) Append(ctx context.Context, r *models.Risk) (uint, error) {
	r.ID = 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(r).Error
	})
	if err != nil {
		r.ID = 0
		return 0, &StorageError{Op: "append", Err: err}
	}
	return r.ID, nil
}

func (s *GormRiskStore) List(ctx context.Context, min risk.Level) ([]models.Risk, error) {
	q := s.db.WithContext(ctx).Order("id desc")
	if min != "" {
		levels := levelsFor(min)
		if len(levels) == 0 {
			return []models.Risk{}, nil
		}
		names := make([]string, len(levels))
		for i, l := range levels {
			names[i] = string(l)
		}
		q = q.Where("level IN ?", names)
	}

	risks := []models.Risk{}
	if err := q.Find(&risks).Error; err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return risks, nil
}
