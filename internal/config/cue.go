package config

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

// LoadCUEDir loads a configuration authored as a CUE package in a directory.
// All .cue files in the directory unify into one value, which must contain
// (or be) the configuration under an optional top-level "config" field.
func LoadCUEDir(dir string) (*Config, error) {
	files, err := findCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(files) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err), Pos: value.Pos()}
	}
	return decodeCUE(value)
}

// LoadCUEFile loads a configuration from a single CUE file.
func LoadCUEFile(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}

	ctx := cuecontext.New()
	value := ctx.CompileBytes(src, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("compiling CUE: %v", err), Pos: value.Pos()}
	}
	return decodeCUE(value)
}

func decodeCUE(value cue.Value) (*Config, error) {
	// Allow the configuration to sit under a "config" field so a package
	// can carry schema definitions alongside it.
	if nested := value.LookupPath(cue.ParsePath("config")); nested.Exists() {
		value = nested
	}

	var c Config
	if err := value.Decode(&c); err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeError, Message: fmt.Sprintf("decoding configuration: %v", err), Pos: value.Pos()}
	}
	return &c, nil
}

func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
