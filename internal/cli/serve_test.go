package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_InvalidPort(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, nil, "serve", "--port", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 70000")
}

func TestServe_BrokenDatasetStopsStartup(t *testing.T) {
	setupCLITest(t)

	path := filepath.Join(t.TempDir(), "sourcing.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schema_version": "2.0.0", "items": {}}`), 0o600))
	t.Setenv("CANTEENCO2_SOURCING_FILE", path)

	_, err := execute(t, nil, "serve", "--port", "18080")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading reference data")
}
