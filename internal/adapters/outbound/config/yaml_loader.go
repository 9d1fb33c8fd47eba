package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gemspell/gemspell/internal/domain"
)

// FileName is the per-project configuration file .gemspell.yaml.
const FileName = ".gemspell.yaml"

// YAMLLoader reads .gemspell.yaml and merges it over the defaults.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .gemspell.yaml from dir. Returns DefaultConfig when the
// file does not exist; a file that exists but fails to parse or validate
// is an error, never silently ignored.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	cfg, err := l.LoadFile(filepath.Join(dir, FileName))
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads an explicit config file path. Unlike Load, a missing
// file is an error: the caller asked for that exact file.
func (l *YAMLLoader) LoadFile(path string) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Validate the raw input before merging so the error points at what
	// the user actually wrote.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", path, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// mergeConfig overlays the set fields of override onto base. List fields
// append rather than replace: extra words extend the bundled vocabulary,
// they never hide it.
func mergeConfig(base, override domain.Config) domain.Config {
	result := base

	if override.MaxDistance != 0 {
		result.MaxDistance = override.MaxDistance
	}
	if override.MaxSuggestions != 0 {
		result.MaxSuggestions = override.MaxSuggestions
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Wordlist != "" {
		result.Wordlist = override.Wordlist
	}
	result.ExtraGems = append(result.ExtraGems, override.ExtraGems...)
	result.ExtraSources = append(result.ExtraSources, override.ExtraSources...)

	return result
}
