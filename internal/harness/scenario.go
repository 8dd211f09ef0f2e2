package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conversion test case.
type Scenario struct {
	// Name uniquely identifies this scenario; it doubles as the golden file
	// name.
	Name string `yaml:"name"`

	// Description explains what this scenario exercises.
	Description string `yaml:"description,omitempty"`

	// Config is the path to the run configuration (YAML or CUE), relative to
	// the scenario file.
	Config string `yaml:"config"`

	// Shards lists capture shard files, relative to the scenario file, in
	// collection order.
	Shards []string `yaml:"shards"`

	// dir is the directory the scenario was loaded from, for resolving the
	// relative paths above.
	dir string
}

// LoadScenario reads one scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if s.Config == "" {
		return nil, fmt.Errorf("scenario %s: config is required", path)
	}
	if len(s.Shards) == 0 {
		return nil, fmt.Errorf("scenario %s: at least one shard is required", path)
	}

	s.dir = filepath.Dir(path)
	return &s, nil
}

// DiscoverScenarios returns the scenario files under dir, sorted by name.
// Config and shard files live alongside scenarios, so only files with a
// "scenario_" prefix are picked up.
func DiscoverScenarios(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan scenarios: %w", err)
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "scenario_") {
			continue
		}
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (s *Scenario) resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(s.dir, rel)
}
