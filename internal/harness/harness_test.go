package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	RunGolden(t, "testdata/scenarios")
}

func TestLoadScenarioValidates(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	_, err := LoadScenario(write("scenario_noname.yaml", "config: c.yaml\nshards: [a.jsonl]\n"))
	assert.ErrorContains(t, err, "name is required")

	_, err = LoadScenario(write("scenario_noconfig.yaml", "name: x\nshards: [a.jsonl]\n"))
	assert.ErrorContains(t, err, "config is required")

	_, err = LoadScenario(write("scenario_noshards.yaml", "name: x\nconfig: c.yaml\n"))
	assert.ErrorContains(t, err, "at least one shard")
}

func TestDiscoverScenariosIgnoresSupportFiles(t *testing.T) {
	paths, err := DiscoverScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.Len(t, paths, 3)
	for _, p := range paths {
		assert.Contains(t, filepath.Base(p), "scenario_")
	}
}

func TestRunUnknownConfigFails(t *testing.T) {
	s := &Scenario{Name: "broken", Config: "missing.yaml", Shards: []string{"x.jsonl"}, dir: t.TempDir()}

	_, err := Run(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
