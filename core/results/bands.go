package results

// Band is a discrete score classification.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// ScoreBand classifies a 0-100 score. Boundaries are inclusive: 80 is high,
// 60 is medium. Each score field is banded against its own value.
func ScoreBand(score float64) Band {
	switch {
	case score >= 80:
		return BandHigh
	case score >= 60:
		return BandMedium
	default:
		return BandLow
	}
}

// RiskBand is a discrete AI-dependency classification.
type RiskBand string

const (
	RiskHigh     RiskBand = "high risk"
	RiskModerate RiskBand = "moderate"
	RiskLow      RiskBand = "low risk"
)

// DependencyBand classifies an AI-dependency score. Boundaries are exclusive
// on the lower side: 50 is still moderate, 30 is still low risk.
func DependencyBand(score float64) RiskBand {
	switch {
	case score > 50:
		return RiskHigh
	case score > 30:
		return RiskModerate
	default:
		return RiskLow
	}
}
