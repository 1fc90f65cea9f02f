package candidate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Record is a raw candidate as delivered by the sourcing collaborator.
// Every field except Name may be absent or loosely typed, so records are
// decoded with a weakly-typed decoder and zero values act as defaults.
type Record struct {
	Name             string       `json:"name"`
	Title            string       `json:"title,omitempty"`
	Company          string       `json:"company,omitempty"`
	Location         string       `json:"location,omitempty"`
	Experience       float64      `json:"experience,omitempty"`
	Email            string       `json:"email,omitempty"`
	ProfileURL       string       `json:"linkedin,omitempty" mapstructure:"linkedin"`
	Skills           []string     `json:"skills,omitempty"`
	History          []Employment `json:"experienceDetails,omitempty" mapstructure:"experienceDetails"`
	ConnectionDegree string       `json:"connectionDegree,omitempty" mapstructure:"connectionDegree"`
	Source           string       `json:"source,omitempty"`
	ExternalID       string       `json:"apolloId,omitempty" mapstructure:"apolloId"`
}

// Employment is a single structured entry of a candidate's work history.
type Employment struct {
	Title     string `json:"title,omitempty"`
	Company   string `json:"company,omitempty"`
	StartDate string `json:"startDate,omitempty" mapstructure:"startDate"`
	EndDate   string `json:"endDate,omitempty" mapstructure:"endDate"`
}

type Candidates struct {
	Items []*Record
}

func (c *Candidates) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// Decode converts loosely typed candidate objects into Records. Unknown keys
// are ignored and missing or mistyped optional fields fall back to zero values.
func Decode(items []map[string]any) (*Candidates, error) {
	var records []*Record

	cfg := &mapstructure.DecoderConfig{
		Result:           &records,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("decode candidate records: %w", err)
	}

	return &Candidates{Items: records}, nil
}

// LoadFile reads a JSON array of candidate objects from path.
func LoadFile(path string) (*Candidates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading candidates file: %w", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing candidates file %q: %w", path, err)
	}

	return Decode(items)
}
