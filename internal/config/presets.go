package config

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

var (
	presetsOnce sync.Once
	presets     map[string]*Config
	presetsErr  error
)

func loadPresets() (map[string]*Config, error) {
	presetsOnce.Do(func() {
		presets, presetsErr = ParsePresets(presetsYAML)
	})
	return presets, presetsErr
}

// ParsePresets decodes and validates a preset table.
func ParsePresets(data []byte) (map[string]*Config, error) {
	out := make(map[string]*Config)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for name, cfg := range out {
		cfg.Name = name
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
	}
	return out, nil
}

// GetPreset returns a copy of the named preset, so callers may override fields.
func GetPreset(name string) (*Config, error) {
	all, err := loadPresets()
	if err != nil {
		return nil, err
	}
	cfg, ok := all[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg.Clone(), nil
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	all, err := loadPresets()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
