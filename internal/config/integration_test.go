package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	t.Setenv("CANTEENCO2_HOME", t.TempDir())
	t.Setenv("CANTEENCO2_OUTPUT_FORMAT", "")
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)

	assert.Same(t, cfg, GetGlobalConfig())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())
}

func TestSetGlobalConfig(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := Default()
	cfg.Output.DefaultFormat = "json"
	cfg.Logging.Level = "debug"
	cfg.Logging.File = "/tmp/canteenco2-test.log"
	cfg.Data.SourcingFile = "/tmp/sourcing.json"
	SetGlobalConfig(cfg)

	assert.Same(t, cfg, GetGlobalConfig())
	assert.Equal(t, "json", GetDefaultOutputFormat())
	assert.Equal(t, "debug", GetLogLevel())
	assert.Equal(t, "/tmp/canteenco2-test.log", GetLogFile())
	assert.Equal(t, "/tmp/sourcing.json", GetDataConfig().SourcingFile)
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("CANTEENCO2_HOME", "/opt/canteen")
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/opt/canteen", dir)

	t.Setenv("CANTEENCO2_HOME", "")
	dir, err = GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, ".canteenco2", filepath.Base(dir))

	db, err := DefaultFactorsDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "factors.db"), db)
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "cfg")
	t.Setenv("CANTEENCO2_HOME", home)

	require.NoError(t, EnsureConfigDir())
	info, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := Default()
	SetGlobalConfig(cfg)
	require.NoError(t, EnsureLogDir(), "no log file configured")

	logDir := filepath.Join(t.TempDir(), "logs", "nested")
	cfg.Logging.File = filepath.Join(logDir, "canteenco2.log")
	require.NoError(t, EnsureLogDir())

	info, err := os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureLogDirError(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	// A regular file where a directory is expected.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cfg := Default()
	cfg.Logging.File = filepath.Join(blocker, "logs", "canteenco2.log")
	SetGlobalConfig(cfg)

	err := EnsureLogDir()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create log directory")
}
