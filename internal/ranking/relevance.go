package ranking

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	tokenSplit   = regexp.MustCompile(`\W+`)
	yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s+years?(?:\s+of)?\s+experience`)
)

// TextRelevance estimates lexical overlap between two free-text strings as
// the Jaccard similarity of their token sets. Tokens shorter than three
// characters are discarded. Returns 0 when either input is empty.
func TextRelevance(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	intersection := 0
	union := make(map[string]bool, len(tokensA)+len(tokensB))
	for token := range tokensA {
		union[token] = true
		if tokensB[token] {
			intersection++
		}
	}
	for token := range tokensB {
		union[token] = true
	}

	return float64(intersection) / float64(len(union))
}

func tokenize(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, token := range tokenSplit.Split(strings.ToLower(text), -1) {
		if len(token) > 2 {
			tokens[token] = true
		}
	}
	return tokens
}

// jobRelevance blends title relevance, skill overlap with the description,
// and experience fit into a single [0,1] relevance estimate.
func jobRelevance(title string, skills []string, experience float64, jobDescription string) float64 {
	if jobDescription == "" {
		return 0
	}

	titleRelevance := 0.0
	if title != "" {
		titleRelevance = TextRelevance(title, jobDescription)
	}

	descriptionLower := strings.ToLower(jobDescription)
	skillsRelevance := 0.0
	if len(skills) > 0 {
		matched := 0
		for _, skill := range skills {
			if strings.Contains(descriptionLower, strings.ToLower(skill)) {
				matched++
			}
		}
		skillsRelevance = float64(matched) / float64(len(skills))
	}

	return titleRelevance*0.4 + skillsRelevance*0.4 + experienceRelevance(experience, jobDescription)*0.2
}

// experienceRelevance scores experience against a "<N>+ years experience"
// requirement parsed from the description. Without a detected requirement it
// falls back to a coarse 3-year heuristic.
func experienceRelevance(experience float64, jobDescription string) float64 {
	required := requiredYears(jobDescription)

	if required > 0 && experience > 0 {
		if experience >= required {
			return 1.0
		}
		return experience / required
	}

	if experience > 3 {
		return 0.7
	}
	return 0.3
}

func requiredYears(jobDescription string) float64 {
	match := yearsPattern.FindStringSubmatch(jobDescription)
	if match == nil {
		return 0
	}

	years, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return float64(years)
}
