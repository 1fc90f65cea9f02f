package industry

import "strings"

// Detect infers the best-matching industry from candidate titles and an
// optional job description. Each profile is scored by how many of its
// keywords occur in the combined lowercase corpus; ties keep catalog order
// and a corpus with no matches falls back to the default industry.
func (c *Catalog) Detect(titles []string, jobDescription string) string {
	parts := make([]string, 0, len(titles)+1)
	for _, title := range titles {
		if title != "" {
			parts = append(parts, title)
		}
	}
	parts = append(parts, jobDescription)
	corpus := strings.ToLower(strings.Join(parts, " "))

	best := ""
	bestMatches := 0
	for _, profile := range c.Profiles {
		matches := 0
		for _, keyword := range profile.Keywords {
			if strings.Contains(corpus, strings.ToLower(keyword)) {
				matches++
			}
		}
		if matches > bestMatches {
			best = profile.Key
			bestMatches = matches
		}
	}

	if bestMatches == 0 {
		return DefaultKey
	}
	return best
}
