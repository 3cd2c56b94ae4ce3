package typeof

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config is set by the user and read by the typeof command.
type Config struct {
	// Format is the report format: "text" or "json".
	Format string `json:"format" yaml:"format"`

	// Color is "auto", "always", or "never".
	Color string `json:"color" yaml:"color"`

	// Predicates limits reports to the named predicates. Empty means all.
	Predicates []string `json:"predicates,omitempty" yaml:"predicates,omitempty"`

	// Jobs caps how many values are classified concurrently.
	Jobs int `json:"jobs,omitempty" yaml:"jobs,omitempty"`
}

// DefaultConfig is used when no config file exists.
var DefaultConfig = Config{
	Format: "text",
	Color:  "auto",
}

var configNames = []string{
	"typeof/config.json",
	"typeof/config.yml",
	"typeof/config.yaml",
}

// LoadConfig loads a Config from the user's XDG config directory, falling
// back to the given default if no file is present.
func LoadConfig(defaultConfig Config) (*Config, error) {
	for _, name := range configNames {
		path, err := xdg.ConfigFile(name)
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}

		config, err := LoadConfigFile(path, defaultConfig)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return nil, err
		}

		return config, nil
	}

	return &defaultConfig, nil
}

// LoadConfigFile loads a JSON or YAML config file, picking the format by
// extension. Fields missing from the file keep their default values.
func LoadConfigFile(path string, defaultConfig Config) (*Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := defaultConfig

	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(payload, &config)
	default:
		err = json.Unmarshal(payload, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &config, nil
}

// Validate checks the enumerated fields and predicate names.
func (config Config) Validate() error {
	switch config.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q (want text or json)", config.Format)
	}

	switch config.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always, or never)", config.Color)
	}

	if config.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative: %d", config.Jobs)
	}

	for _, name := range config.Predicates {
		if _, err := LookupPredicate(name); err != nil {
			return err
		}
	}

	return nil
}

// SelectedPredicates resolves the configured predicate names.
func (config Config) SelectedPredicates() ([]Predicate, error) {
	preds := make([]Predicate, 0, len(config.Predicates))
	for _, name := range config.Predicates {
		pred, err := LookupPredicate(name)
		if err != nil {
			return nil, err
		}

		preds = append(preds, pred)
	}

	return preds, nil
}
