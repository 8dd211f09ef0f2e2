package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Crate:            "example-ffi",
		Edition:          "2021",
		EnabledFeatures:  []string{"std"},
		DisabledFeatures: []string{"experimental"},
	}
}

func TestValidateAccepts(t *testing.T) {
	c := validConfig()
	assert.Empty(t, c.Validate())
}

func TestValidateCrateRequired(t *testing.T) {
	c := validConfig()
	c.Crate = "  "
	errs := c.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCrateRequired, errs[0].Code)
}

func TestValidateEdition(t *testing.T) {
	c := validConfig()
	c.Edition = "2019"
	errs := c.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrInvalidEdition, errs[0].Code)

	// Empty edition is fine, it defaults.
	c.Edition = ""
	assert.Empty(t, c.Validate())
	assert.Equal(t, "2021", c.EditionOrDefault())
}

func TestValidateFeatureConflicts(t *testing.T) {
	c := validConfig()
	c.EnabledFeatures = append(c.EnabledFeatures, "experimental")
	errs := c.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrFeatureConflict, errs[0].Code)

	c = validConfig()
	c.FeatureRenames = map[string]string{"std": "runtime"}
	errs = c.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrRenameConflict, errs[0].Code)
}

func TestValidateTriple(t *testing.T) {
	c := validConfig()
	c.Target = "not_a_triple"
	errs := c.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrInvalidTriple, errs[0].Code)

	c = validConfig()
	c.Target = "x86_64-unknown-linux-gnu"
	c.TargetOS = "windows"
	errs = c.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrTripleAxisConflict, errs[0].Code)
}

func TestValidateGroupConflict(t *testing.T) {
	c := validConfig()
	c.Groups = []string{"types"}
	c.ExceptGroups = []string{"types"}
	errs := c.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, ErrGroupConflict, errs[0].Code)
}

func TestCrateIdent(t *testing.T) {
	c := Config{Crate: "example-ffi"}
	assert.Equal(t, "example_ffi", c.CrateIdent())

	c.Crate = "plain"
	assert.Equal(t, "plain", c.CrateIdent())
}

func TestRulesFromConfig(t *testing.T) {
	c := validConfig()
	c.FeatureRenames = map[string]string{"old": "new"}
	c.DisableUnknownFeatures = true
	c.Target = "aarch64-apple-darwin"

	r := c.Rules()
	assert.True(t, r.Enabled["std"])
	assert.True(t, r.Disabled["experimental"])
	assert.Equal(t, "new", r.Renames["old"])
	assert.True(t, r.DisableUnknownFeatures)
	assert.Equal(t, "aarch64", r.TargetArch)
	assert.Equal(t, "apple", r.TargetVendor)
	assert.Equal(t, "macos", r.TargetOS)
	assert.Equal(t, "", r.TargetEnv)
}

func TestRulesExplicitAxisWinsOverTriple(t *testing.T) {
	c := validConfig()
	c.Target = "x86_64-unknown-linux-gnu"
	c.TargetEnv = "musl"

	r := c.Rules()
	assert.Equal(t, "x86_64", r.TargetArch)
	assert.Equal(t, "linux", r.TargetOS)
	assert.Equal(t, "musl", r.TargetEnv)
}

func TestAllAllowedPrefixes(t *testing.T) {
	c := validConfig()
	c.AllowedPrefixes = []string{"my_runtime"}
	all := c.AllAllowedPrefixes()
	assert.Contains(t, all, "std")
	assert.Contains(t, all, "c_void")
	assert.Contains(t, all, "my_runtime")
}
