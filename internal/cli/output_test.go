package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := NewExitError(ExitCommandError, "store not found")
		assert.Equal(t, "store not found", err.Error())
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		cause := errors.New("disk full")
		err := WrapExitError(ExitFailure, "import failed", cause)
		assert.Equal(t, "import failed: disk full", err.Error())
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("wrapped deeper", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "inner"))
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("plain error defaults to failure", func(t *testing.T) {
		assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))
	})
}

func TestOutputFormatterText(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf}

	require.NoError(t, f.Success("Imported 3 records"))
	assert.Equal(t, "Imported 3 records\n", buf.String())

	buf.Reset()
	require.NoError(t, f.Error("E005", "configuration not found", nil))
	assert.Equal(t, "Error [E005]: configuration not found\n", buf.String())
}

func TestOutputFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.Success(map[string]any{"records": 3}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)

	buf.Reset()
	require.NoError(t, f.Error("E008", "invalid configuration", nil))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E008", resp.Error.Code)
}

func TestVerboseLogGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out, ErrWriter: &errOut, Verbose: true}

	f.VerboseLog("selected %d records", 7)
	assert.Empty(t, out.String())
	assert.Equal(t, "selected 7 records\n", errOut.String())

	f.Verbose = false
	errOut.Reset()
	f.VerboseLog("ignored")
	assert.Empty(t, errOut.String())
}
