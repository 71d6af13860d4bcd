package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/canteenco2/internal/config"
)

const configFile = "config.yaml"

// NewConfigInitCmd creates the config init command for initializing configuration.
// Inside a project (--project-dir, CANTEENCO2_PROJECT_DIR, an existing
// .canteenco2/ above the working directory, or --local) it writes the
// project-local .canteenco2/config.yaml and .gitignore. Otherwise it writes
// the user config at ~/.canteenco2/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

Inside a project, creates project-local configuration at
$PROJECT/.canteenco2/config.yaml with a .gitignore that keeps local databases
and logs out of version control. Use --local to start a project in the
current directory and --global to write the user configuration instead.`,
		Example: `  # Create the user configuration
  canteenco2 config init

  # Start project-local configuration in the current directory
  canteenco2 config init --local

  # Create configuration, overwriting existing
  canteenco2 config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if global && local {
				return errors.New("--global and --local are mutually exclusive")
			}
			if global {
				return initGlobalConfig(cmd, force)
			}

			wd, err := os.Getwd()
			if err != nil {
				wd = ""
			}
			flagDir, _ := cmd.Flags().GetString("project-dir")
			projectDir := config.ResolveProjectDir(cmd.Context(), flagDir, wd)
			if projectDir == "" && local {
				if wd == "" {
					return errors.New("cannot determine the working directory for --local")
				}
				projectDir = config.ResolveProjectDir(cmd.Context(), wd, "")
			}

			if projectDir != "" {
				return initProjectConfig(cmd, projectDir, force)
			}
			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the user configuration even inside a project")
	cmd.Flags().BoolVar(&local, "local", false, "create project-local configuration in the current directory")

	return cmd
}

// initProjectConfig creates project-local config at projectDir/config.yaml with .gitignore.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, configFile)

	if err := checkOverwrite(configPath, force); err != nil {
		return err
	}

	if err := os.MkdirAll(projectDir, 0o750); err != nil {
		return fmt.Errorf("failed to create project config directory: %w", err)
	}

	if err := config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	// Never overwrites an existing .gitignore.
	created, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore for local databases and logs\n")
	}

	return nil
}

// initGlobalConfig creates global config at ~/.canteenco2/config.yaml.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	path, err := config.DefaultConfigPath()
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	if err = checkOverwrite(path, force); err != nil {
		return err
	}

	if err = config.Default().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)

	return nil
}

func checkOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errors.New("configuration file already exists, use --force to overwrite")
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}
