package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAMLFile loads a configuration from a YAML file.
func LoadYAMLFile(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}

	var c Config
	if err := yaml.Unmarshal(src, &c); err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeError, Message: fmt.Sprintf("decoding configuration: %v", err)}
	}
	return &c, nil
}
