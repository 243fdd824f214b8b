package primitives

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// LoadYAML decodes and validates a machine definition.
func LoadYAML(data []byte) (MachineConfig, error) {
	var cfg MachineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MachineConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return MachineConfig{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// LoadJSON decodes and validates a machine definition.
func LoadJSON(data []byte) (MachineConfig, error) {
	var cfg MachineConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return MachineConfig{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return MachineConfig{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// LoadFile picks the decoder from the file extension (.yaml, .yml or .json).
func LoadFile(path string) (MachineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MachineConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(data)
	case ".json":
		return LoadJSON(data)
	default:
		return MachineConfig{}, fmt.Errorf("unsupported machine definition %q", path)
	}
}
