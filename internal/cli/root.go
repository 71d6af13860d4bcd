package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/canteenco2/internal/config"
	"github.com/rshade/canteenco2/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the canteenco2 CLI.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "canteenco2",
		Short:   "Canteen climate impact calculator",
		Long:    "canteenco2: estimate the CO2e footprint of a canteen and plan lower-impact menus and sourcing",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.canteenco2/config.yaml)")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .canteenco2/config.yaml")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table or json (default from config)")

	cmd.AddCommand(
		NewCalculateCmd(),
		NewCanteensCmd(),
		NewSourcingCmd(),
		newFactorsCmd(),
		newDBCmd(),
		NewServeCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Calculate the footprint of a canteen described in a YAML file
  canteenco2 calculate canteen.yaml

  # Sourcing advice for March as JSON
  canteenco2 sourcing --month 3 -o json

  # Look up an emission factor
  canteenco2 factors lookup "Oksekød (dansk)"

  # Plant-based alternatives to beef
  canteenco2 factors alternatives Oksekød

  # Create the reference database
  canteenco2 db init

  # Serve the HTTP API
  canteenco2 serve --port 8080`

// loadConfig resolves the effective configuration and installs it as the
// global config for this invocation.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		config.SetGlobalConfig(cfg)
		return nil
	}

	flagDir, _ := cmd.Flags().GetString("project-dir")
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	projectDir := config.ResolveProjectDir(cmd.Context(), flagDir, wd)
	config.SetGlobalConfig(config.NewWithProjectDir(cmd.Context(), projectDir))
	return nil
}

// outputFormat returns the --output flag or the configured default.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case config.FormatTable, config.FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table or json)", format)
	}
}

// newFactorsCmd creates the factors command group for reference data lookups.
func newFactorsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "factors", Short: "Emission factor and reference data lookups"}
	cmd.AddCommand(
		NewFactorsLookupCmd(), NewFactorsListCmd(), NewFactorsAlternativesCmd(),
		NewFactorsTipsCmd(), NewFactorsOrganicCmd(), NewFactorsSeasonalCmd(),
		NewFactorsTransportCmd(),
	)
	return cmd
}

// newDBCmd creates the db command group.
func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "db", Short: "Reference database management"}
	cmd.AddCommand(NewDBInitCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
