package ranking

import (
	"math"

	"talentrank/internal/candidate"
)

// Weighted presence checks used to estimate how much usable information a
// record carries. Weights sum to 100.
var completenessChecks = []struct {
	weight  int
	present func(r *candidate.Record) bool
}{
	{20, func(r *candidate.Record) bool { return r.Title != "" }},
	{20, func(r *candidate.Record) bool { return r.Company != "" }},
	{10, func(r *candidate.Record) bool { return r.Location != "" }},
	{15, func(r *candidate.Record) bool { return r.Experience > 0 }},
	{10, func(r *candidate.Record) bool { return r.Email != "" }},
	{5, func(r *candidate.Record) bool { return r.ProfileURL != "" }},
	{10, func(r *candidate.Record) bool { return len(r.Skills) > 0 }},
	{10, func(r *candidate.Record) bool { return len(r.History) > 0 }},
}

// Completeness returns the percentage of available field weight present on
// the record, rounded to the nearest integer. Always within [0,100].
func Completeness(r *candidate.Record) int {
	score := 0
	total := 0
	for _, check := range completenessChecks {
		total += check.weight
		if check.present(r) {
			score += check.weight
		}
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
