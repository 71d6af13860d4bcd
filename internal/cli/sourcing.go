package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/canteenco2/internal/api"
	"github.com/rshade/canteenco2/internal/cli/pagination"
	"github.com/rshade/canteenco2/internal/greenops"
	"github.com/rshade/canteenco2/internal/sourcing"
)

func sourcingSorter() *pagination.Sorter[sourcing.Recommendation] {
	return pagination.NewSorter(map[string]func(a, b sourcing.Recommendation) bool{
		"score":   func(a, b sourcing.Recommendation) bool { return a.Score < b.Score },
		"name":    func(a, b sourcing.Recommendation) bool { return a.Name < b.Name },
		"co2":     func(a, b sourcing.Recommendation) bool { return a.CO2 < b.CO2 },
		"price":   func(a, b sourcing.Recommendation) bool { return a.Price < b.Price },
		"quality": func(a, b sourcing.Recommendation) bool { return a.Quality < b.Quality },
	})
}

// NewSourcingCmd creates the sourcing command.
func NewSourcingCmd() *cobra.Command {
	var (
		month  int
		params pagination.Params
	)

	cmd := &cobra.Command{
		Use:   "sourcing",
		Short: "Domestic versus import sourcing advice for a month",
		Long: `Scores the domestic and imported offer of every commodity in the sourcing
dataset for one month and prints the better option, highest score first.

Months are calendar months, 1 (January) to 12 (December). The default is the
current month.`,
		Example: `  # Advice for this month
  canteenco2 sourcing

  # Advice for February as JSON
  canteenco2 sourcing --month 2 -o json

  # The five lowest-CO2 choices in May
  canteenco2 sourcing --month 5 --sort co2:asc --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("month") {
				month = int(time.Now().Month())
			}
			return runSourcing(cmd, month, params)
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "calendar month 1-12 (default current month)")
	params.AddFlags(cmd, "sort by score, name, co2, price or quality, optionally with :asc or :desc")

	return cmd
}

func runSourcing(cmd *cobra.Command, month int, params pagination.Params) error {
	ctx := cmd.Context()

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("--month must be between 1 and 12, got %d", month)
	}
	if err = params.Validate(); err != nil {
		return err
	}
	// Score order is the engine's own; only an explicit field re-sorts.
	field, order, err := pagination.ParseSort(params.Sort, pagination.SortOrderDesc)
	if err != nil {
		return err
	}

	engine, err := loadSourcing(ctx)
	if err != nil {
		return err
	}
	recs, err := engine.MonthlyRecommendations(ctx, month-1)
	if err != nil {
		return err
	}
	if recs, err = sourcingSorter().Sort(recs, field, order); err != nil {
		return err
	}
	recs = pagination.Apply(params, recs)
	resp := api.SourcingResponse{Month: month - 1, Recommendations: greenops.RoundSourcing(recs)}

	if format == "json" {
		return renderJSON(cmd.OutOrStdout(), resp)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, heading(w, fmt.Sprintf("Sourcing, %s", time.Month(month))))
	return writeSourcingTable(w, resp.Recommendations)
}

// writeSourcingTable renders sourcing recommendations as an aligned table.
func writeSourcingTable(w io.Writer, recs []sourcing.Recommendation) error {
	if len(recs) == 0 {
		fmt.Fprintln(w, "  No sourcing data for this month.")
		return nil
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ITEM\tCATEGORY\tORIGIN\tSTATUS\tPRICE\tQUALITY\tCO2\tSCORE")
	fmt.Fprintln(tw, "----\t--------\t------\t------\t-----\t-------\t---\t-----")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d%%\n",
			r.Name, r.Category, r.Origin, r.Status,
			tier(r.Price), tier(r.Quality),
			greenops.FormatFloat(r.CO2, greenops.KgDecimals), r.Score)
	}
	return tw.Flush()
}

// tier renders a 1-3 ordinal score, with "-" for unavailable.
func tier(v int) string {
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v) + "/3"
}
