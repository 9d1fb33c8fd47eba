package domain

import (
	"fmt"

	"github.com/gemspell/gemspell/internal/domain/spell"
)

// DefaultMaxSuggestions caps how many alternatives a dependency offense
// carries. Source offenses are not capped; the source vocabulary is tiny.
const DefaultMaxSuggestions = 5

// Config holds lint settings loaded from .gemspell.yaml. In a loaded file
// a zero value means "not set"; the loader fills those from defaults, so
// the effective config a session runs with is always fully populated.
type Config struct {
	MaxDistance    int      `yaml:"max_distance"    json:"max_distance"`
	MaxSuggestions int      `yaml:"max_suggestions" json:"max_suggestions"`
	Jobs           int      `yaml:"jobs"            json:"jobs"`
	ExtraGems      []string `yaml:"extra_gems"      json:"extra_gems,omitempty"`
	ExtraSources   []string `yaml:"extra_sources"   json:"extra_sources,omitempty"`
	Wordlist       string   `yaml:"wordlist"        json:"wordlist,omitempty"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		MaxDistance:    spell.DefaultMaxDistance,
		MaxSuggestions: DefaultMaxSuggestions,
		Jobs:           1,
	}
}

// Validate checks a loaded config for invalid values and returns a
// descriptive error. Zero values pass: they mean the field was omitted.
func (c Config) Validate() error {
	if c.MaxDistance < 0 || c.MaxDistance > 5 {
		return fmt.Errorf("max_distance %d out of range (must be between 1 and 5)", c.MaxDistance)
	}
	if c.MaxSuggestions < 0 {
		return fmt.Errorf("max_suggestions must be >= 1 (got %d)", c.MaxSuggestions)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be >= 1 (got %d)", c.Jobs)
	}
	for i, g := range c.ExtraGems {
		if g == "" {
			return fmt.Errorf("extra_gems[%d] must not be empty", i)
		}
	}
	for i, s := range c.ExtraSources {
		if s == "" {
			return fmt.Errorf("extra_sources[%d] must not be empty", i)
		}
	}
	return nil
}

