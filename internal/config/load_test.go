package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "crossbind.yaml", `
crate: example-ffi
edition: "2024"
enabled_features:
  - std
feature_renames:
  old: new
target: x86_64-unknown-linux-gnu
transparent_wrappers:
  - std::mem::MaybeUninit
output: src/generated.rs
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "example-ffi", c.Crate)
	assert.Equal(t, "2024", c.Edition)
	assert.Equal(t, []string{"std"}, c.EnabledFeatures)
	assert.Equal(t, map[string]string{"old": "new"}, c.FeatureRenames)
	assert.Equal(t, []string{"std::mem::MaybeUninit"}, c.TransparentWrappers)
	assert.Equal(t, "src/generated.rs", c.Output)
}

func TestLoadCUESingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "crossbind.cue", `
config: {
	crate: "example-ffi"
	disabled_features: ["experimental"]
	target_os: "linux"
}
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "example-ffi", c.Crate)
	assert.Equal(t, []string{"experimental"}, c.DisabledFeatures)
	assert.Equal(t, "linux", c.TargetOS)
}

func TestLoadCUEDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.cue", `
package crossbind

config: crate: "example-ffi"
`)
	writeFile(t, dir, "features.cue", `
package crossbind

config: enabled_features: ["std", "alloc"]
`)

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "example-ffi", c.Crate)
	assert.Equal(t, []string{"std", "alloc"}, c.EnabledFeatures)
}

func TestLoadTopLevelCUEConfig(t *testing.T) {
	// Without a "config" field the top-level value itself decodes.
	path := writeFile(t, t.TempDir(), "direct.cue", `
crate: "example-ffi"
edition: "2021"
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "example-ffi", c.Crate)
}

func TestLoadMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", `
crate: ""
edition: "1999"
`)

	_, err := Load(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeInvalid, loadErr.Code)
	assert.Contains(t, loadErr.Error(), ErrCrateRequired)
	assert.Contains(t, loadErr.Error(), ErrInvalidEdition)
}

func TestLoadEmptyCUEDir(t *testing.T) {
	_, err := Load(t.TempDir())
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}
