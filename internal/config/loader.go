package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of lease configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a JSON or YAML file. JSON parses as
// a YAML subset, so a single decoder covers both. The result is the raw,
// possibly-partial schema; run Normalize to obtain a usable configuration.
func (ip *InputParser) LoadFromFile(filename string) (*FileConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes raw JSON/YAML config bytes. Unknown fields are ignored.
func (ip *InputParser) Parse(data []byte) (*FileConfig, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &fc, nil
}
