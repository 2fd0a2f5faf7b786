// Package store persists evaluated risks in an append-only log.
package store

import (
	"context"
	"fmt"

	"github.com/riskgauge/backend/internal/models"
	"github.com/riskgauge/backend/internal/risk"
)

// RiskStore is the narrow persistence contract for risk records.
type RiskStore interface {
	// Append persists r and sets r.ID to a fresh id greater than any
	// previously assigned. On error nothing is visible to List.
	Append(ctx context.Context, r *models.Risk) (uint, error)
	// List returns records newest first. A zero min returns everything;
	// otherwise only records ranked at or above min.
	List(ctx context.Context, min risk.Level) ([]models.Risk, error)
}

// StorageError wraps a backing store fault.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("risk store %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// levelsFor resolves the filter to the set of matching levels; nil means no filter.
func levelsFor(min risk.Level) []risk.Level {
	if min == "" {
		return nil
	}
	return risk.AtLeast(min)
}
