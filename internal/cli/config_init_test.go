package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/canteenco2/internal/config"
)

// TestConfigInit_ProjectDir verifies that "config init" with a project
// directory creates .canteenco2/config.yaml and .canteenco2/.gitignore.
func TestConfigInit_ProjectDir(t *testing.T) {
	setupCLITest(t)

	tmpDir := t.TempDir()
	t.Setenv("CANTEENCO2_PROJECT_DIR", tmpDir)

	out, err := execute(t, nil, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized at")
	assert.Contains(t, out, "Created .gitignore")

	configPath := filepath.Join(tmpDir, ".canteenco2", "config.yaml")
	_, statErr := os.Stat(configPath)
	require.NoError(t, statErr)

	gitignoreData, readErr := os.ReadFile(filepath.Join(tmpDir, ".canteenco2", ".gitignore"))
	require.NoError(t, readErr)
	assert.Equal(t, config.GitignoreContent(), string(gitignoreData))
}

// TestConfigInit_DefaultsNotEnv verifies the written file holds defaults,
// not the environment overrides active when it was written.
func TestConfigInit_DefaultsNotEnv(t *testing.T) {
	home := setupCLITest(t)

	_, err := execute(t, nil, "config", "init")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)

	var written config.Config
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, config.Default().Logging.Level, written.Logging.Level)
	assert.Equal(t, config.Default().Server, written.Server)
}

func TestConfigInit_ExistingGitignorePreserved(t *testing.T) {
	setupCLITest(t)

	tmpDir := t.TempDir()
	projectDir := filepath.Join(tmpDir, ".canteenco2")
	require.NoError(t, os.MkdirAll(projectDir, 0o750))

	custom := "# my rules\n*.bak\n"
	gitignorePath := filepath.Join(projectDir, ".gitignore")
	require.NoError(t, os.WriteFile(gitignorePath, []byte(custom), 0o600))

	out, err := execute(t, nil, "--project-dir", tmpDir, "config", "init", "--force")
	require.NoError(t, err)
	assert.NotContains(t, out, "Created .gitignore")

	data, err := os.ReadFile(gitignorePath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}

func TestConfigInit_GlobalFlag(t *testing.T) {
	home := setupCLITest(t)

	tmpDir := t.TempDir()
	t.Setenv("CANTEENCO2_PROJECT_DIR", tmpDir)

	out, err := execute(t, nil, "config", "init", "--global")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")

	_, statErr := os.Stat(filepath.Join(home, "config.yaml"))
	require.NoError(t, statErr)

	_, statErr = os.Stat(filepath.Join(tmpDir, ".canteenco2", "config.yaml"))
	assert.True(t, os.IsNotExist(statErr), "project config must not be created with --global")
}

func TestConfigInit_Local(t *testing.T) {
	setupCLITest(t)

	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	_, err := execute(t, nil, "config", "init", "--local")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(tmpDir, ".canteenco2", "config.yaml"))
	require.NoError(t, statErr)
}

func TestConfigInit_GlobalAndLocal(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, nil, "config", "init", "--global", "--local")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestConfigInit_ForceOverwritesConfig(t *testing.T) {
	home := setupCLITest(t)

	configPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  default_format: json\n"), 0o600))

	_, err := execute(t, nil, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, nil, "config", "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_format: table")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", "logging:\n  level: debug\nserver:\n  port: 9090\n", false},
		{"bad level", "logging:\n  level: loud\n", true},
		{"bad format", "output:\n  default_format: csv\n", true},
		{"bad yaml", "server: [\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			out, err := execute(t, nil, "config", "validate", path, "--verbose")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, "Configuration is valid")
			assert.Contains(t, out, "127.0.0.1:9090")
		})
	}
}

func TestConfigShow(t *testing.T) {
	setupCLITest(t)
	t.Setenv("CANTEENCO2_PORT", "9191")

	out, err := execute(t, nil, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "port: 9191")
	assert.Contains(t, out, "default_format: table")
}
