package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/canteenco2/internal/config"
	"github.com/rshade/canteenco2/internal/logging"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CANTEENCO2_LOG_LEVEL", "CANTEENCO2_LOG_FORMAT", "CANTEENCO2_LOG_FILE",
		"CANTEENCO2_FACTORS_DB", "CANTEENCO2_AUTO_SEED", "CANTEENCO2_SOURCING_FILE",
		"CANTEENCO2_HOST", "CANTEENCO2_PORT", "CANTEENCO2_OUTPUT_FORMAT",
		"CANTEENCO2_PROJECT_DIR",
	} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Data.AutoSeed)
	assert.Empty(t, cfg.Data.FactorsDB)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	want := config.Default()
	assert.Equal(t, want.Logging, cfg.Logging)
	assert.Equal(t, want.Data, cfg.Data)
	assert.Equal(t, want.Server, cfg.Server)
	assert.Equal(t, want.Output, cfg.Output)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)

	path := writeOverlay(t, `
logging:
  level: debug
data:
  factors_db: /tmp/factors.db
  auto_seed: false
server:
  port: 9000
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	// Fields absent from a section keep their defaults.
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "/tmp/factors.db", cfg.Data.FactorsDB)
	assert.False(t, cfg.Data.AutoSeed)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, path, cfg.Path())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CANTEENCO2_LOG_LEVEL", "warn")
	t.Setenv("CANTEENCO2_PORT", "7000")
	t.Setenv("CANTEENCO2_AUTO_SEED", "false")
	t.Setenv("CANTEENCO2_OUTPUT_FORMAT", "json")
	t.Setenv("CANTEENCO2_SOURCING_FILE", "/data/sourcing.json")

	path := writeOverlay(t, "logging:\n  level: debug\nserver:\n  port: 9000\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.False(t, cfg.Data.AutoSeed)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, "/data/sourcing.json", cfg.Data.SourcingFile)
}

func TestApplyEnvOverrides_IgnoresBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CANTEENCO2_PORT", "eighty")
	t.Setenv("CANTEENCO2_AUTO_SEED", "maybe")

	cfg := config.Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Data.AutoSeed)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad yaml", content: "logging: [", wantErr: "parsing config file"},
		{name: "bad level", content: "logging:\n  level: loud\n", wantErr: "logging.level"},
		{name: "bad format", content: "logging:\n  format: xml\n", wantErr: "logging.format"},
		{name: "bad port", content: "server:\n  port: 70000\n", wantErr: "server.port"},
		{name: "bad output", content: "output:\n  default_format: csv\n", wantErr: "output.default_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := config.Load(writeOverlay(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_WrapsSentinel(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = 0
	cfg.Output.DefaultFormat = "csv"

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "output.default_format")
}

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.Default()
	cfg.Data.FactorsDB = "/srv/factors.db"
	cfg.Server.Port = 8181
	require.NoError(t, cfg.Save(path))
	assert.Equal(t, path, cfg.Path())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Data, loaded.Data)
	assert.Equal(t, cfg.Server, loaded.Server)
}

func TestSave_DefaultsToConfigDir(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("CANTEENCO2_HOME", home)

	require.NoError(t, config.Default().Save(""))
	_, err := os.Stat(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
}

func TestNew_ReadsUserFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("CANTEENCO2_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("output:\n  default_format: json\n"), 0o600))

	assert.Equal(t, "json", config.New().Output.DefaultFormat)
}

func TestNew_InvalidFileFallsBack(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("CANTEENCO2_HOME", home)
	t.Setenv("CANTEENCO2_LOG_LEVEL", "error")
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("server: [\n"), 0o600))

	cfg := config.New()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestToLoggingConfig(t *testing.T) {
	tests := []struct {
		name       string
		in         config.LoggingConfig
		wantOutput string
	}{
		{name: "stderr", in: config.LoggingConfig{Level: "debug", Format: "json"}, wantOutput: logging.OutputStderr},
		{name: "file", in: config.LoggingConfig{Level: "info", File: "/tmp/c.log", Caller: true}, wantOutput: logging.OutputFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ToLoggingConfig()
			assert.Equal(t, tt.wantOutput, got.Output)
			assert.Equal(t, tt.in.Level, got.Level)
			assert.Equal(t, tt.in.Format, got.Format)
			assert.Equal(t, tt.in.File, got.File)
			assert.Equal(t, tt.in.Caller, got.Caller)
		})
	}
}
