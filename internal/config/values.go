package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/artisanexperiences/vetter/internal/fs"
)

// LoadValues reads a flat map of field values from a YAML or JSON file.
func LoadValues(fsys fs.FS, path string) (map[string]interface{}, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading values: %w", err)
	}
	return ParseValues(content)
}

// ParseValues decodes YAML or JSON content into field values. An empty
// document yields an empty map.
func ParseValues(content []byte) (map[string]interface{}, error) {
	var values map[string]interface{}
	if err := yaml.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("parsing values: %w", err)
	}
	if values == nil {
		values = make(map[string]interface{})
	}
	return values, nil
}

// SaveValues writes values to path as YAML.
func SaveValues(fsys fs.FS, path string, values map[string]interface{}) error {
	content, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshaling values: %w", err)
	}
	if err := fsys.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing values: %w", err)
	}
	return nil
}
