package ranking

import "talentrank/internal/candidate"

type confidenceTier struct {
	level     string
	threshold float64
	label     string
}

var confidenceTiers = []confidenceTier{
	{"Low", 25, "Needs More Information"},
	{"Medium", 50, "Potential Match"},
	{"High", 75, "Strong Match"},
	{"Very High", 90, "Excellent Match"},
}

// ConfidenceFor calibrates how trustworthy a score is given data
// completeness. The score is discounted by the completeness ratio and the
// highest tier whose threshold is met applies; anything below the lowest
// threshold is Low.
func ConfidenceFor(score, completeness int) candidate.Confidence {
	adjusted := float64(score) * float64(completeness) / 100

	for i := len(confidenceTiers) - 1; i >= 0; i-- {
		if adjusted >= confidenceTiers[i].threshold {
			return candidate.Confidence{
				Level:    confidenceTiers[i].level,
				Label:    confidenceTiers[i].label,
				Adjusted: adjusted,
			}
		}
	}

	return candidate.Confidence{
		Level:    confidenceTiers[0].level,
		Label:    confidenceTiers[0].label,
		Adjusted: adjusted,
	}
}
