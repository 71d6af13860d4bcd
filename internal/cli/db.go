package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/canteenco2/internal/config"
	"github.com/rshade/canteenco2/internal/factors"
)

// NewDBInitCmd creates the db init command, which writes the built-in
// reference data to a SQLite database.
func NewDBInitCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create and seed the emission factor database",
		Long: `Creates the SQLite reference database and fills it with the built-in
emission factors, organic comparisons, transport factors, seasonal calendar,
plant-based alternatives and waste reduction tips. Existing rows are replaced.

Point data.factors_db (or CANTEENCO2_FACTORS_DB) at the file to use it.`,
		Example: `  # Seed ~/.canteenco2/factors.db
  canteenco2 db init

  # Seed a project database
  canteenco2 db init --path ./.canteenco2/factors.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if path == "" {
				var err error
				if path, err = config.DefaultFactorsDBPath(); err != nil {
					return fmt.Errorf("resolving database path: %w", err)
				}
			}

			db, err := factors.Open(path)
			if err != nil {
				return err
			}
			defer db.Close()

			ds := factors.SeedData()
			if err = factors.Seed(ctx, db, ds); err != nil {
				return fmt.Errorf("seeding %s: %w", path, err)
			}

			logger.Info().Ctx(ctx).
				Str("operation", "db_init").
				Str("path", path).
				Int("factor_count", len(ds.Factors)).
				Msg("reference database seeded")

			cmd.Printf("Reference database written to %s\n", path)
			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, "TABLE\tROWS")
			fmt.Fprintln(tw, "-----\t----")
			fmt.Fprintf(tw, "emission factors\t%d\n", len(ds.Factors))
			fmt.Fprintf(tw, "categories\t%d\n", len(ds.Categories))
			fmt.Fprintf(tw, "organic comparisons\t%d\n", len(ds.Comparisons))
			fmt.Fprintf(tw, "transport factors\t%d\n", len(ds.Transport))
			fmt.Fprintf(tw, "seasonal produce\t%d\n", len(ds.Seasonal))
			fmt.Fprintf(tw, "plant alternatives\t%d\n", len(ds.Alternatives))
			fmt.Fprintf(tw, "waste tips\t%d\n", len(ds.Tips))
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "database file (default ~/.canteenco2/factors.db)")

	return cmd
}
