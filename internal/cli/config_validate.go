package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/canteenco2/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a configuration file",
		Long: `Validates a configuration file for syntax and semantic correctness.

Without an argument the user configuration at ~/.canteenco2/config.yaml is
checked. Environment overrides are applied before validation.`,
		Example: `  # Validate the user configuration
  canteenco2 config validate

  # Validate a project configuration and show the data settings
  canteenco2 config validate .canteenco2/config.yaml --verbose`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runConfigValidate(cmd, path, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, path string, verbose bool) error {
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid: %s\n", path)

	if verbose {
		printVerboseDetails(cmd, cfg)
	}
	return nil
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Printf("Logging:  level=%s format=%s\n", cfg.Logging.Level, cfg.Logging.Format)

	db := cfg.Data.FactorsDB
	if db == "" {
		db = "(in-memory, built-in data)"
	}
	cmd.Printf("Factors:  %s (auto_seed=%t)\n", db, cfg.Data.AutoSeed)

	src := cfg.Data.SourcingFile
	if src == "" {
		src = "(built-in)"
	}
	cmd.Printf("Sourcing: %s\n", src)
	cmd.Printf("Server:   %s\n", cfg.Server.Addr())
	cmd.Printf("Output:   %s\n", cfg.Output.DefaultFormat)
}

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Prints the configuration this invocation runs with: defaults, the user
config file, any project config and environment overrides, merged. The
output is always YAML, ready to be saved as a config file.`,
		Example: `  canteenco2 config show
  canteenco2 --project-dir ./kitchen config show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			if p := cfg.Path(); p != "" {
				cmd.Printf("# %s\n", p)
			}
			cmd.Print(string(data))
			return nil
		},
	}
}
