package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// RunGolden executes every scenario under dir as a subtest and compares the
// rendered output against its golden file. Regenerate goldens with
// `go test ./internal/harness -update`.
func RunGolden(t *testing.T, dir string) {
	t.Helper()

	paths, err := DiscoverScenarios(dir)
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no scenarios under %s", dir)

	for _, path := range paths {
		scenario, err := LoadScenario(path)
		require.NoError(t, err)

		t.Run(scenario.Name, func(t *testing.T) {
			out, err := Run(scenario)
			require.NoError(t, err)

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, scenario.Name, out)
		})
	}
}
