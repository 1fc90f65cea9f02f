package ranking

import (
	"regexp"
	"strings"

	"talentrank/internal/candidate"
	"talentrank/internal/industry"
)

const maxSkillTags = 5

var (
	remotePattern     = regexp.MustCompile(`(?i)remote`)
	regionTokens      = []string{"usa", "us", "uk", "canada", "europe", "apac", "asia", "australia"}
	locationSplit     = regexp.MustCompile(`,|\s+`)
	nonAlphanumeric   = regexp.MustCompile(`[^a-z0-9]+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Tags derives the deduplicated descriptor set for a candidate: seniority,
// remote/region hints, matched specializations, employer reputation, key
// skills, provenance, and the detected industry. Insertion order is kept;
// duplicates across sources collapse to one tag.
func Tags(r *candidate.Record, skills []string, profile *industry.Profile, seniority, industryKey string) []string {
	var tags []string
	seen := make(map[string]bool)

	add := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	if seniority != "" {
		add(whitespacePattern.ReplaceAllString(strings.ToLower(seniority), "-"))
	}

	if remotePattern.MatchString(r.Location) || remotePattern.MatchString(r.Title) {
		add("remote")
	}

	if r.Location != "" {
		locationLower := strings.ToLower(r.Location)
		parts := make(map[string]bool)
		for _, part := range locationSplit.Split(locationLower, -1) {
			parts[strings.TrimSpace(part)] = true
		}
		for _, region := range regionTokens {
			if parts[region] || strings.Contains(locationLower, region) {
				add(region)
			}
		}
	}

	if r.Title != "" {
		titleLower := strings.ToLower(r.Title)
		for _, spec := range profile.Specializations {
			for _, keyword := range spec.Keywords {
				if strings.Contains(titleLower, strings.ToLower(keyword)) {
					add(spec.Name)
					break
				}
			}
		}
	}

	if r.Company != "" && containsAny(strings.ToLower(r.Company), profile.TopCompanies) {
		add("top-company")
	}

	for i, skill := range skills {
		if i == maxSkillTags {
			break
		}
		add(kebabCase(skill))
	}

	if r.Source != "" {
		add(strings.ToLower(r.Source))
	}

	add(industryKey)

	return tags
}

func kebabCase(s string) string {
	tag := nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(tag, "-")
}
