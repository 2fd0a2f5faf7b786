package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/riskgauge/backend/internal/risk"
)

// Risk is a persisted, append-only risk assessment. Hint is never stored;
// it is filled in from Level whenever a row is loaded.
type Risk struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Asset      string     `json:"asset" gorm:"not null"`
	Threat     string     `json:"threat" gorm:"not null"`
	Likelihood int        `json:"likelihood" gorm:"not null;check:likelihood BETWEEN 1 AND 5"`
	Impact     int        `json:"impact" gorm:"not null;check:impact BETWEEN 1 AND 5"`
	Score      int        `json:"score" gorm:"not null"`
	Level      risk.Level `json:"level" gorm:"not null;index"`
	Hint       string     `json:"hint" gorm:"-"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewRisk builds an unsaved row from an evaluated assessment.
func NewRisk(a risk.Assessment) *Risk {
	return &Risk{
		Asset:      a.Asset,
		Threat:     a.Threat,
		Likelihood: a.Likelihood,
		Impact:     a.Impact,
		Score:      a.Score,
		Level:      a.Level,
		Hint:       a.Hint(),
	}
}

// BeforeCreate refuses rows whose derived columns disagree with their inputs.
func (r *Risk) BeforeCreate(tx *gorm.DB) error {
	if r.Score != r.Likelihood*r.Impact {
		return fmt.Errorf("risk score %d does not match %d*%d", r.Score, r.Likelihood, r.Impact)
	}
	if want := risk.Classify(r.Score); r.Level != want {
		return fmt.Errorf("risk level %q does not match score %d (want %q)", r.Level, r.Score, want)
	}
	return nil
}

// AfterFind recomputes the advisory hint from the stored level.
func (r *Risk) AfterFind(tx *gorm.DB) error {
	r.Hint = risk.Hint(r.Level)
	return nil
}
