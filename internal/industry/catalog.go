package industry

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultKey is the profile used whenever detection finds nothing or a lookup
// key is unknown.
const DefaultKey = "tech"

//go:embed catalog.yaml
var embeddedCatalog []byte

// Profile holds the static heuristic vocabulary for one market vertical.
// Profiles are loaded once at startup and never mutated.
type Profile struct {
	Key                  string           `yaml:"key"`
	Keywords             []string         `yaml:"keywords"`
	TopCompanies         []string         `yaml:"top-companies"`
	ExperienceMultiplier float64          `yaml:"experience-multiplier"`
	SeniorityTerms       []string         `yaml:"seniority-terms"`
	JuniorTerms          []string         `yaml:"junior-terms"`
	Specializations      []Specialization `yaml:"specializations"`
	CommonSkills         []string         `yaml:"common-skills"`
}

// Specialization maps one specialization name to the title keywords that
// indicate it. Kept as an ordered list so detection and tagging stay
// deterministic.
type Specialization struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Catalog is an ordered, immutable set of industry profiles.
type Catalog struct {
	Profiles []*Profile `yaml:"industries"`
}

// Default parses the embedded catalog. The embedded document is validated by
// tests, so a parse failure here is a programming error.
func Default() *Catalog {
	catalog, err := parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded industry catalog is invalid: %v", err))
	}
	return catalog
}

// LoadFile reads a catalog override from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading industry catalog: %w", err)
	}

	catalog, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing industry catalog %q: %w", path, err)
	}
	return catalog, nil
}

func parse(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, err
	}

	if len(catalog.Profiles) == 0 {
		return nil, fmt.Errorf("catalog contains no industries")
	}

	seen := make(map[string]bool, len(catalog.Profiles))
	for _, profile := range catalog.Profiles {
		if profile.Key == "" {
			return nil, fmt.Errorf("catalog contains an industry without a key")
		}
		if seen[profile.Key] {
			return nil, fmt.Errorf("duplicate industry key %q", profile.Key)
		}
		seen[profile.Key] = true

		if profile.ExperienceMultiplier <= 0 {
			profile.ExperienceMultiplier = 1.0
		}
	}

	if catalog.lookup(DefaultKey) == nil {
		return nil, fmt.Errorf("catalog is missing the default %q industry", DefaultKey)
	}

	return &catalog, nil
}

// Get returns the profile for key, falling back to the default profile when
// the key is unknown or empty.
func (c *Catalog) Get(key string) *Profile {
	if profile := c.lookup(key); profile != nil {
		return profile
	}
	return c.lookup(DefaultKey)
}

func (c *Catalog) lookup(key string) *Profile {
	for _, profile := range c.Profiles {
		if profile.Key == key {
			return profile
		}
	}
	return nil
}

// Keys returns the industry keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Profiles))
	for _, profile := range c.Profiles {
		keys = append(keys, profile.Key)
	}
	return keys
}
