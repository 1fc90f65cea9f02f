package ranking

import (
	"fmt"
	"strconv"
	"strings"

	"talentrank/internal/candidate"
)

const (
	maxSummaryEmployers = 2
	maxSummarySkills    = 4
)

// One fixed phrasing per seniority level.
var seniorityPhrases = map[string]string{
	"Executive": "Executive leader with significant strategic experience.",
	"VP":        "Senior leader with extensive management experience.",
	"Director":  "Experienced director with team and departmental leadership skills.",
	"Manager":   "Experienced manager with team leadership capabilities.",
	"Lead":      "Technical leader with strong domain expertise.",
	"Senior":    "Senior professional with deep industry knowledge.",
	"Mid-Level": "Mid-level professional with practical expertise.",
	"Junior":    "Developing professional with foundational skills.",
	"Entry":     "Entry-level professional building initial experience.",
}

// Summary builds the deterministic template-based candidate summary. It is
// always produced and serves as the guaranteed fallback when AI enhancement
// is absent or fails; the closing sentence always carries the numeric score.
func Summary(r *candidate.Record, skills []string, seniority string, confidence candidate.Confidence, details candidate.ScoreDetails) string {
	var parts []string

	if role := rolePart(r); role != "" {
		parts = append(parts, role)
	}

	if seniority != "" {
		phrase, ok := seniorityPhrases[seniority]
		if !ok {
			phrase = "Professional with relevant industry experience."
		}
		parts = append(parts, phrase)
	}

	if history := historyPart(r.History); history != "" {
		parts = append(parts, history)
	}

	if len(skills) > 0 {
		shown := skills
		suffix := ""
		if len(shown) > maxSummarySkills {
			shown = shown[:maxSummarySkills]
			suffix = " and more"
		}
		parts = append(parts, fmt.Sprintf("Key skills include %s%s.", strings.Join(shown, ", "), suffix))
	}

	parts = append(parts, fmt.Sprintf("%s (%d/100).", confidence.Label, details.Total))

	return strings.Join(parts, " ")
}

func rolePart(r *candidate.Record) string {
	switch {
	case r.Experience > 0:
		part := fmt.Sprintf("%s+ years of experience", formatYears(r.Experience))
		if r.Title != "" && r.Company != "" {
			part += fmt.Sprintf(", currently as %s at %s", r.Title, r.Company)
		} else if r.Title != "" {
			part += fmt.Sprintf(" as %s", r.Title)
		}
		return part + "."
	case r.Title != "" && r.Company != "":
		return fmt.Sprintf("Currently %s at %s.", r.Title, r.Company)
	case r.Title != "":
		return fmt.Sprintf("Current role: %s.", r.Title)
	}
	return ""
}

func historyPart(history []candidate.Employment) string {
	var employers []string
	for _, entry := range history {
		if entry.Company == "" || containsFold(employers, entry.Company) {
			continue
		}
		employers = append(employers, entry.Company)
		if len(employers) == maxSummaryEmployers {
			break
		}
	}

	if len(employers) == 0 {
		return ""
	}

	part := "Past experience includes "
	if len(employers) == 1 {
		part += fmt.Sprintf("work at %s", employers[0])
	} else {
		part += fmt.Sprintf("roles at %s", strings.Join(employers, " and "))
	}

	if len(history) > len(employers) {
		part += " among others"
	}

	return part + "."
}

func formatYears(experience float64) string {
	return strconv.FormatFloat(experience, 'f', -1, 64)
}
