package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rshade/canteenco2/internal/logging"
)

const projectDirName = ".canteenco2"

// ResolveProjectDir determines the project-local .canteenco2 directory.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. CANTEENCO2_PROJECT_DIR env var
//  3. the nearest ancestor of startDir holding a .canteenco2/config.yaml
//
// The user config directory is never treated as a project directory.
// Returns an absolute path, or "" when no project is found. Nothing is
// created.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv("CANTEENCO2_PROJECT_DIR"); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	return findProjectDir(ctx, startDir)
}

func findProjectDir(ctx context.Context, startDir string) string {
	if startDir == "" {
		return ""
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("start_dir", startDir).
			Msg("failed to resolve start directory for project discovery")
		return ""
	}

	userDir, _ := GetConfigDir()
	if userDir != "" {
		if abs, absErr := filepath.Abs(userDir); absErr == nil {
			userDir = abs
		}
	}

	for {
		candidate := filepath.Join(dir, projectDirName)
		if candidate != userDir {
			if _, statErr := os.Stat(filepath.Join(candidate, configFileName)); statErr == nil {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// NewWithProjectDir creates a Config from the user configuration with the
// project-local config shallow-merged on top. Environment overrides still
// win. If projectDir is empty or holds no config, behaves like New().
func NewWithProjectDir(ctx context.Context, projectDir string) *Config {
	cfg := New()

	if projectDir == "" {
		return cfg
	}

	overlayPath := filepath.Join(projectDir, configFileName)
	if _, err := os.Stat(overlayPath); err != nil {
		return cfg
	}

	merged := New()
	err := ShallowMergeYAML(merged, overlayPath)
	if err == nil {
		merged.ApplyEnvOverrides()
		err = merged.Validate()
	}
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using user config")
		return cfg
	}

	return merged
}

// toAbsProjectDir converts dir to an absolute path and appends
// ".canteenco2" unless it already ends with it.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == projectDirName {
		return abs
	}

	return filepath.Join(abs, projectDirName)
}
