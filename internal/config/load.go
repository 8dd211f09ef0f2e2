package config

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue/token"
)

// Load error codes (E001-E099).
const (
	ErrCodeGeneric     = "E001" // generic/unknown error
	ErrCodeScanError   = "E002" // directory scan error
	ErrCodeNoFiles     = "E003" // no configuration files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeDecodeError = "E007" // decoding into Config failed
	ErrCodeInvalid     = "E008" // configuration failed validation
)

// LoadError is an error that occurred while locating, parsing, or decoding
// a configuration.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads a configuration from path and validates it. A directory loads
// as a CUE package, a .cue file as a single CUE file, and .yaml or .yml as
// YAML.
func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("configuration not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing %s: %v", path, err)}
	}

	var c *Config
	switch {
	case info.IsDir():
		c, err = LoadCUEDir(path)
	case filepath.Ext(path) == ".cue":
		c, err = LoadCUEFile(path)
	case filepath.Ext(path) == ".yaml", filepath.Ext(path) == ".yml":
		c, err = LoadYAMLFile(path)
	default:
		return nil, &LoadError{
			Code:    ErrCodeGeneric,
			Message: fmt.Sprintf("unsupported configuration file %s (expected a directory, .cue, .yaml, or .yml)", path),
		}
	}
	if err != nil {
		return nil, err
	}

	if verrs := c.Validate(); len(verrs) > 0 {
		return nil, &LoadError{
			Code:    ErrCodeInvalid,
			Message: joinValidationErrors(verrs),
		}
	}
	return c, nil
}

func joinValidationErrors(errs []ValidationError) string {
	msg := errs[0].Error()
	for _, e := range errs[1:] {
		msg += "; " + e.Error()
	}
	return msg
}
