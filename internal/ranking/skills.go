package ranking

import (
	"strings"

	"talentrank/internal/industry"
)

// NormalizeSkills merges the supplied skills with skills and specializations
// inferred from the title. The result is deduplicated case-insensitively with
// the original insertion order preserved.
func NormalizeSkills(skills []string, title string, profile *industry.Profile) []string {
	merged := make([]string, 0, len(skills))
	merged = append(merged, skills...)

	if title != "" {
		titleLower := strings.ToLower(title)

		for _, skill := range profile.CommonSkills {
			if strings.Contains(titleLower, strings.ToLower(skill)) && !containsFold(merged, skill) {
				merged = append(merged, skill)
			}
		}

		for _, spec := range profile.Specializations {
			for _, keyword := range spec.Keywords {
				if strings.Contains(titleLower, strings.ToLower(keyword)) {
					merged = append(merged, spec.Name)
					break
				}
			}
		}
	}

	seen := make(map[string]bool, len(merged))
	unique := make([]string, 0, len(merged))
	for _, skill := range merged {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, trimmed)
	}

	return unique
}

func containsFold(list []string, target string) bool {
	for _, item := range list {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}
