package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// readInputFile decodes a JSON or YAML file into v. YAML is converted to JSON
// first so the camelCase json tags of the metadata types apply to both.
func readInputFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	return decodeInput(filepath.Ext(path), data, v)
}

func decodeInput(ext string, data []byte, v any) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML input: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to convert YAML input: %w", err)
		}
		data = converted
	case ".json", "":
	default:
		return fmt.Errorf("unsupported input file type %q (use .json, .yaml or .yml)", ext)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}
	return nil
}
