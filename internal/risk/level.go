package risk

// Level is the coarse severity classification of a score.
type Level string

const (
	LevelLow      Level = "Low"
	LevelMedium   Level = "Medium"
	LevelHigh     Level = "High"
	LevelCritical Level = "Critical"
)

// Levels lists every recognized level in ascending severity.
var Levels = []Level{LevelLow, LevelMedium, LevelHigh, LevelCritical}

const noRecommendation = "No recommendation available"

// Classify maps a score to its level. Each bound is inclusive.
func Classify(score int) Level {
	switch {
	case score <= 5:
		return LevelLow
	case score <= 12:
		return LevelMedium
	case score <= 18:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// Hint returns the advisory text for a level.
func Hint(l Level) string {
	switch l {
	case LevelLow:
		return "Monitor and review periodically"
	case LevelMedium:
		return "Implement additional security monitoring"
	case LevelHigh:
		return "Recommend NIST PR.AC-7: Rate Limiting"
	case LevelCritical:
		return "Recommend Strong Access Control and Monitoring"
	default:
		return noRecommendation
	}
}

// Rank orders levels Low=1 .. Critical=4. Unknown levels rank 0.
func Rank(l Level) int {
	for i, known := range Levels {
		if l == known {
			return i + 1
		}
	}
	return 0
}

// ParseLevel matches s exactly (case-sensitive) against the known levels.
func ParseLevel(s string) (Level, bool) {
	l := Level(s)
	return l, Rank(l) > 0
}

// AtLeast returns the levels whose rank is >= min's, in ascending order.
func AtLeast(min Level) []Level {
	r := Rank(min)
	if r == 0 {
		return nil
	}
	out := make([]Level, len(Levels)-r+1)
	copy(out, Levels[r-1:])
	return out
}
