package candidate

import (
	"encoding/json"
	"fmt"
	"os"
)

// ScoreDetails carries the seven weighted sub-scores and their total.
// Every sub-score is non-negative and individually capped; Total is the
// clamped sum, always within [0,100].
type ScoreDetails struct {
	Experience  int `json:"experienceScore"`
	Title       int `json:"titleScore"`
	Company     int `json:"companyScore"`
	Skills      int `json:"skillsScore"`
	JobFit      int `json:"jobFitScore"`
	ContactInfo int `json:"contactInfoScore"`
	DataQuality int `json:"dataQualityScore"`
	Total       int `json:"score"`
}

// Confidence is the calibrated trust tier for a score given how complete the
// underlying record was. Adjusted keeps the raw score*completeness product
// for transparency.
type Confidence struct {
	Level    string  `json:"level"`
	Label    string  `json:"label"`
	Adjusted float64 `json:"adjustedScore"`
}

// Ranked is the enriched, immutable output produced for one input Record.
// Only Summary may be replaced afterwards, by the optional AI enhancement.
type Ranked struct {
	Name             string       `json:"name"`
	Title            string       `json:"title,omitempty"`
	Company          string       `json:"company,omitempty"`
	Location         string       `json:"location,omitempty"`
	Experience       float64      `json:"experience,omitempty"`
	Email            string       `json:"email,omitempty"`
	ProfileURL       string       `json:"linkedin,omitempty"`
	Source           string       `json:"source,omitempty"`
	ConnectionDegree string       `json:"connectionDegree,omitempty"`
	ExternalID       string       `json:"apolloId,omitempty"`
	History          []Employment `json:"experienceDetails,omitempty"`

	Score            int          `json:"score"`
	Details          ScoreDetails `json:"scoreDetails"`
	Seniority        string       `json:"seniorityLevel"`
	Confidence       Confidence   `json:"confidenceLevel"`
	Skills           []string     `json:"skills,omitempty"`
	Tags             []string     `json:"tags,omitempty"`
	DataCompleteness int          `json:"dataCompleteness"`
	Summary          string       `json:"summary"`
}

type RankedList struct {
	Items []*Ranked
}

func (r *RankedList) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Items)
}

// Top returns at most n highest-ranked candidates. The list is already
// sorted, so this is a plain prefix.
func (r *RankedList) Top(n int) []*Ranked {
	if r == nil || n <= 0 {
		return nil
	}
	if n > len(r.Items) {
		n = len(r.Items)
	}
	return r.Items[:n]
}

// ReportBySeniority groups the ranked candidates by seniority level for a
// quick operator overview.
func (r *RankedList) ReportBySeniority() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, c := range r.Items {
		report[c.Seniority] = append(report[c.Seniority], map[string]string{
			"name":       c.Name,
			"title":      c.Title,
			"company":    c.Company,
			"score":      fmt.Sprintf("%d/100", c.Score),
			"confidence": c.Confidence.Label,
			"summary":    c.Summary,
		})
	}
	return report
}

func (r *RankedList) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "candidates_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Items); err != nil {
		return "", err
	}
	return file.Name(), nil
}
