package ranking

import (
	"regexp"
	"strings"

	"talentrank/internal/industry"
)

// SeniorityLevel is one entry of the fixed, ordered career-stage scale.
// MinYears/MaxYears describe the typical experience range; Weight orders
// levels when several year ranges overlap.
type SeniorityLevel struct {
	Level    string
	MinYears float64
	MaxYears float64
	Weight   int
}

// SeniorityLevels is the cross-industry scale, in declaration order. The
// experience fallback keeps the level with the strictly highest weight whose
// lower bound is met, so at equal weight the earlier entry wins.
var SeniorityLevels = []SeniorityLevel{
	{"Entry", 0, 2, 1},
	{"Junior", 1, 3, 2},
	{"Mid-Level", 3, 6, 3},
	{"Senior", 5, 10, 4},
	{"Lead", 7, 15, 5},
	{"Manager", 5, 15, 5},
	{"Director", 10, 20, 6},
	{"VP", 12, 25, 7},
	{"Executive", 15, 30, 8},
}

var (
	// C-suite tokens are word-bounded so "cto" does not match inside "director".
	executivePattern = regexp.MustCompile(`(?i)\b(chief|cxo|c-level|ceo|cto|cfo|coo|president)\b`)
	vpPattern        = regexp.MustCompile(`(?i)vp|vice president`)
	directorPattern  = regexp.MustCompile(`(?i)director|head of`)
	managerPattern   = regexp.MustCompile(`(?i)manager|management`)
	assistantPattern = regexp.MustCompile(`(?i)assistant|associate`)
	leadPattern      = regexp.MustCompile(`(?i)lead|principal|staff`)
)

// Seniority classifies a candidate's career stage. Title language takes
// priority over the experience-derived level; with no title signal the
// highest-weight experience bucket applies, defaulting to Mid-Level.
func Seniority(experience float64, title string, profile *industry.Profile) string {
	fallback := ""
	if experience > 0 {
		weight := 0
		for _, level := range SeniorityLevels {
			if experience >= level.MinYears && (fallback == "" || level.Weight > weight) {
				fallback = level.Level
				weight = level.Weight
			}
		}
	}

	if title != "" {
		titleLower := strings.ToLower(title)

		switch {
		case executivePattern.MatchString(titleLower):
			return "Executive"
		case vpPattern.MatchString(titleLower):
			return "VP"
		case directorPattern.MatchString(titleLower):
			return "Director"
		case managerPattern.MatchString(titleLower) && !assistantPattern.MatchString(titleLower):
			return "Manager"
		case leadPattern.MatchString(titleLower):
			return "Lead"
		case containsAny(titleLower, profile.SeniorityTerms):
			return "Senior"
		case containsAny(titleLower, profile.JuniorTerms):
			if experience > 3 {
				return "Mid-Level"
			}
			return "Junior"
		}
	}

	if fallback == "" {
		return "Mid-Level"
	}
	return fallback
}
