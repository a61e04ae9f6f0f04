package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Defaults seeds the access-control containers at startup. Group and list
// names follow the lowercase-alphanumeric-and-underscore rule; violations
// surface when the containers are constructed.
type Defaults struct {
	Moderators     []int64 `yaml:"moderators"`
	Administrators []int64 `yaml:"administrators"`
	Developers     []int64 `yaml:"developers"`

	Groups     map[string]string  `yaml:"control_groups"`
	Whitelists map[string][]int64 `yaml:"control_whitelists"`
	Blacklists map[string][]int64 `yaml:"control_blacklists"`
	Trackers   []string           `yaml:"trackers"`
}

// LoadDefaults reads the YAML defaults file. An empty path yields empty
// defaults.
func LoadDefaults(path string) (*Defaults, error) {
	if path == "" {
		return &Defaults{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defaults file: %w", err)
	}
	var d Defaults
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse defaults file: %w", err)
	}
	return &d, nil
}
