// Package risk scores and classifies risk submissions. Everything here is
// pure: no I/O, and the same input always yields the same Assessment.
package risk

import (
	"encoding/json"
	"errors"
	"strings"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Validation failure kinds.
const (
	KindMissingFields = "missing_fields"
	KindInvalidRange  = "invalid_range"
)

// ValidationError reports a client input fault.
type ValidationError struct {
	Kind string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingFields:
		return "All fields (asset, threat, likelihood, impact) are required"
	case KindInvalidRange:
		return "Invalid range: Likelihood and Impact must be 1-5"
	default:
		return "invalid risk submission"
	}
}

// Is matches any ValidationError with the same Kind.
func (e *ValidationError) Is(target error) bool {
	var ve *ValidationError
	if !errors.As(target, &ve) {
		return false
	}
	return ve.Kind == e.Kind
}

var (
	ErrMissingFields = &ValidationError{Kind: KindMissingFields}
	ErrInvalidRange  = &ValidationError{Kind: KindInvalidRange}
)

// Input is a raw submission. Likelihood and Impact hold whatever the caller
// decoded: json.Number, a Go integer, or nil when absent. Any other type,
// float64 included, fails range validation; decode with UseNumber.
type Input struct {
	Asset      string
	Threat     string
	Likelihood any
	Impact     any
}

// Assessment is a validated, scored submission.
type Assessment struct {
	Asset      string
	Threat     string
	Likelihood int
	Impact     int
	Score      int
	Level      Level
}

// Hint returns the advisory text for the assessment's level.
func (a Assessment) Hint() string { return Hint(a.Level) }

// Evaluate validates in and computes its score and level.
func Evaluate(in Input) (Assessment, error) {
	asset := strings.TrimSpace(in.Asset)
	threat := strings.TrimSpace(in.Threat)
	if asset == "" || threat == "" || in.Likelihood == nil || in.Impact == nil {
		return Assessment{}, ErrMissingFields
	}

	likelihood, ok := rating(in.Likelihood)
	if !ok {
		return Assessment{}, ErrInvalidRange
	}
	impact, ok := rating(in.Impact)
	if !ok {
		return Assessment{}, ErrInvalidRange
	}

	score := likelihood * impact
	return Assessment{
		Asset:      asset,
		Threat:     threat,
		Likelihood: likelihood,
		Impact:     impact,
		Score:      score,
		Level:      Classify(score),
	}, nil
}

// rating accepts only integers within [MinRating, MaxRating]. Floats (even
// 3.0), numeric strings and booleans are rejected.
func rating(v any) (int, bool) {
	var n int64
	switch t := v.(type) {
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case json.Number:
		s := t.String()
		if strings.ContainsAny(s, ".eE") {
			return 0, false
		}
		i, err := t.Int64()
		if err != nil {
			return 0, false
		}
		n = i
	default:
		return 0, false
	}
	if n < MinRating || n > MaxRating {
		return 0, false
	}
	return int(n), true
}
