package ranking

import (
	"math"
	"regexp"
	"strings"

	"talentrank/internal/candidate"
	"talentrank/internal/industry"
)

// Sub-score caps. The clamped sum of all seven is the total score.
const (
	experienceCap  = 25
	titleCap       = 20
	companyCap     = 15
	skillsCap      = 20
	jobFitCap      = 15
	contactInfoCap = 10
	dataQualityCap = 10
)

var prestigePattern = regexp.MustCompile(`(?i)global|worldwide|international|leading|top`)

// Options are the recognized ranking parameters supplied by the caller.
type Options struct {
	JobDescription     string
	Industry           string
	RequiredExperience float64
	RequiredSkills     []string
}

// Score combines seven capped sub-scores into ScoreDetails. The calculation
// is fully deterministic: identical inputs always produce identical output.
func Score(r *candidate.Record, skills []string, completeness int, profile *industry.Profile, opts Options) candidate.ScoreDetails {
	details := candidate.ScoreDetails{
		Experience:  experienceScore(r.Experience, profile, opts.RequiredExperience),
		Title:       titleScore(r.Title, profile, opts.JobDescription),
		Company:     companyScore(r.Company, profile),
		Skills:      skillsScore(skills, profile, opts.RequiredSkills),
		ContactInfo: contactInfoScore(r.Email, r.ConnectionDegree),
		DataQuality: roundedTenth(completeness),
	}

	if opts.JobDescription != "" {
		details.JobFit = clamp(round(jobRelevance(r.Title, skills, r.Experience, opts.JobDescription)*jobFitCap), jobFitCap)
	} else {
		details.JobFit = roundedTenth(completeness)
	}

	sum := details.Experience +
		details.Title +
		details.Company +
		details.Skills +
		details.JobFit +
		details.ContactInfo +
		details.DataQuality
	details.Total = clamp(sum, 100)

	return details
}

func experienceScore(experience float64, profile *industry.Profile, required float64) int {
	if experience <= 0 {
		return 0
	}

	base := math.Min(experience*2, 20)
	score := round(base * profile.ExperienceMultiplier)

	if required > 0 && experience >= required {
		score += 5
	}

	return clamp(score, experienceCap)
}

func titleScore(title string, profile *industry.Profile, jobDescription string) int {
	if title == "" {
		return 0
	}

	titleLower := strings.ToLower(title)
	score := 5

	switch {
	case containsAny(titleLower, profile.SeniorityTerms):
		score += 10
	case strings.Contains(titleLower, "manager") || strings.Contains(titleLower, "director"):
		score += 8
	case strings.Contains(titleLower, "specialist") || strings.Contains(titleLower, "analyst"):
		score += 5
	case containsAny(titleLower, profile.JuniorTerms):
		score += 3
	}

	if jobDescription != "" {
		score += round(TextRelevance(title, jobDescription) * 5)
	}

	return clamp(score, titleCap)
}

func companyScore(company string, profile *industry.Profile) int {
	if company == "" {
		return 0
	}

	companyLower := strings.ToLower(company)
	score := 5

	if containsAny(companyLower, profile.TopCompanies) {
		score += 10
	}
	if prestigePattern.MatchString(company) {
		score += 3
	}

	return clamp(score, companyCap)
}

func skillsScore(skills []string, profile *industry.Profile, required []string) int {
	if len(skills) == 0 {
		return 0
	}

	score := len(skills)
	if score > 5 {
		score = 5
	}

	if len(required) > 0 {
		matched := 0
		for _, want := range required {
			wantLower := strings.ToLower(want)
			for _, skill := range skills {
				if strings.Contains(strings.ToLower(skill), wantLower) {
					matched++
					break
				}
			}
		}
		if matched > 0 {
			score += round(float64(matched) / float64(len(required)) * 15)
		}
	} else if len(profile.CommonSkills) > 0 {
		matched := 0
		for _, skill := range skills {
			skillLower := strings.ToLower(skill)
			for _, common := range profile.CommonSkills {
				if strings.Contains(strings.ToLower(common), skillLower) {
					matched++
					break
				}
			}
		}
		if matched > 0 {
			score += clamp(matched*2, 10)
		}
	}

	return clamp(score, skillsCap)
}

func contactInfoScore(email, connectionDegree string) int {
	score := 0
	if strings.Contains(email, "@") {
		score += 5
	}
	if strings.Contains(connectionDegree, "1st") {
		score += 2
	}
	return clamp(score, contactInfoCap)
}

// roundedTenth maps a 0-100 completeness percentage onto a 0-10 score.
func roundedTenth(completeness int) int {
	return clamp(round(float64(completeness)/10), dataQualityCap)
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
