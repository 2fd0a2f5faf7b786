package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/riskgauge/backend/internal/logger"
	"github.com/riskgauge/backend/internal/metrics"
	"github.com/riskgauge/backend/internal/models"
	"github.com/riskgauge/backend/internal/risk"
	"github.com/riskgauge/backend/internal/store"
	"github.com/riskgauge/backend/internal/util"
)

var ErrInvalidLevelFilter = errors.New("invalid level filter")

type RiskService struct {
	store  store.RiskStore
	strict bool
}

// NewRiskService builds the service over s. With strictFilter set, List
// rejects unrecognized level filters instead of ignoring them.
func NewRiskService(s store.RiskStore, strictFilter bool) *RiskService {
	return &RiskService{store: s, strict: strictFilter}
}

// Assess validates and scores in, then appends the result. Validation
// errors are returned before the store is touched.
func (s *RiskService) Assess(ctx context.Context, in risk.Input) (*models.Risk, error) {
	a, err := risk.Evaluate(in)
	if err != nil {
		var ve *risk.ValidationError
		if errors.As(err, &ve) {
			metrics.IncValidationFailure(ve.Kind)
		}
		return nil, err
	}

	row := models.NewRisk(a)
	if _, err := s.store.Append(ctx, row); err != nil {
		metrics.IncStorageError("append")
		logger.WithFields(logrus.Fields{
			"asset": util.Truncate(util.SanitizeForLog(a.Asset), 100),
			"level": a.Level,
		}).WithError(err).Error("failed to store risk")
		return nil, err
	}

	metrics.IncAssessment(string(row.Level))
	logger.WithFields(logrus.Fields{
		"id":    row.ID,
		"score": row.Score,
		"level": row.Level,
	}).Debug("risk assessed")
	return row, nil
}

// List returns stored risks newest first. An empty filter returns
// everything, as does an unrecognized one unless the service is strict.
func (s *RiskService) List(ctx context.Context, levelFilter string) ([]models.Risk, error) {
	var min risk.Level
	if levelFilter != "" {
		l, ok := risk.ParseLevel(levelFilter)
		switch {
		case ok:
			min = l
		case s.strict:
			return nil, ErrInvalidLevelFilter
		}
	}

	risks, err := s.store.List(ctx, min)
	if err != nil {
		metrics.IncStorageError("list")
		logger.Log().WithError(err).Error("failed to list risks")
		return nil, err
	}
	return risks, nil
}
