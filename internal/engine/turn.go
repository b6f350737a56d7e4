package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadTurn reads a turn description from a JSON or YAML file. The format
// follows the extension; anything other than .json is parsed as YAML.
func LoadTurn(path string) (*Turn, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading turn %s: %w", path, err)
	}
	return ParseTurn(data, filepath.Ext(path))
}

// ParseTurn decodes a turn from data. ext selects the format (".json",
// ".yaml", ".yml").
func ParseTurn(data []byte, ext string) (*Turn, error) {
	var t Turn
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parsing turn JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parsing turn YAML: %w", err)
		}
	}
	return &t, nil
}
