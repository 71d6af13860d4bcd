package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/canteenco2/internal/api"
	"github.com/rshade/canteenco2/internal/factors"
	"github.com/rshade/canteenco2/internal/greenops"
	"github.com/rshade/canteenco2/internal/impact"
	"github.com/rshade/canteenco2/internal/sourcing"
)

// calculateReport is the JSON form of `canteenco2 calculate`.
type calculateReport struct {
	api.ImpactResponse
	Canteen  *canteenSummary       `json:"canteen,omitempty"`
	Sourcing *api.SourcingResponse `json:"sourcing,omitempty"`
}

// canteenSummary identifies the reference canteen a calculation was built from.
type canteenSummary struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Location           string  `json:"location"`
	BaselineAnnualTons float64 `json:"baseline_annual_tons"`
}

// NewCalculateCmd creates the calculate command.
func NewCalculateCmd() *cobra.Command {
	var month, canteen int

	cmd := &cobra.Command{
		Use:   "calculate [params-file]",
		Short: "Calculate a canteen's CO2e footprint and reduction measures",
		Long: `Reads canteen parameters from a YAML or JSON file ("-" for stdin) and
prints the per-meal and annual footprint, the per-component breakdown and up
to five ranked reduction measures.

employees, meat_distribution and portion_sizes are required; every other
field falls back to its default.

With --canteen the parameters are derived from a reference canteen instead
(see 'canteenco2 canteens'), and its measured baseline is shown alongside.`,
		Example: `  # canteen.yaml
  #   employees: 150
  #   meat_distribution: {red_meat_percent: 35, bright_meat_percent: 35, fish_percent: 15, vegetarian_percent: 15}
  #   portion_sizes: {protein_gram: 120, vegetables_gram: 200, carbs_gram: 150}
  canteenco2 calculate canteen.yaml

  # Include sourcing advice for October
  canteenco2 calculate canteen.yaml --month 10

  # Pipe parameters in and get JSON back
  cat canteen.json | canteenco2 calculate - -o json

  # Start from a reference canteen
  canteenco2 calculate --canteen 215`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromCanteen := cmd.Flags().Changed("canteen")
			switch {
			case fromCanteen && len(args) == 1:
				return errors.New("--canteen and a parameters file are mutually exclusive")
			case !fromCanteen && len(args) == 0:
				return errors.New("a parameters file or --canteen is required")
			case fromCanteen:
				return runCalculate(cmd, "", canteen, month)
			default:
				return runCalculate(cmd, args[0], 0, month)
			}
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "also show sourcing advice for this calendar month (1-12)")
	cmd.Flags().IntVar(&canteen, "canteen", 0, "derive parameters from the reference canteen with this ID")

	return cmd
}

// runCalculate calculates from the parameters file at path, or from the
// reference canteen canteenID when path is empty.
func runCalculate(cmd *cobra.Command, path string, canteenID, month int) error {
	ctx := cmd.Context()
	start := time.Now()

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if month < 0 || month > 12 {
		return fmt.Errorf("--month must be between 1 and 12, got %d", month)
	}

	var params impact.CanteenParameters
	if path != "" {
		if params, err = readParams(cmd.InOrStdin(), path); err != nil {
			return err
		}
	}

	store, engine, err := calculateDatasets(ctx, month)
	if err != nil {
		return err
	}

	var summary *canteenSummary
	if path == "" {
		c, lookupErr := store.Canteen(canteenID)
		if lookupErr != nil {
			return lookupErr
		}
		params = impact.CanteenProfile(c)
		summary = &canteenSummary{
			ID:                 c.ID,
			Name:               c.Name,
			Location:           c.Location,
			BaselineAnnualTons: greenops.RoundTons(impact.CanteenBaselineTons(c)),
		}
	}

	report, err := buildReport(ctx, store, engine, params, month)
	if err != nil {
		return err
	}
	report.Canteen = summary

	logger.Info().Ctx(ctx).
		Str("operation", "calculate").
		Float64("annual_tons", report.AnnualTons).
		Int("recommendations", len(report.Recommendations)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("calculation complete")

	if format == "json" {
		return renderJSON(cmd.OutOrStdout(), report)
	}
	return renderCalculateTable(cmd.OutOrStdout(), report)
}

// calculateDatasets loads the factor store, plus the sourcing engine when a
// month is requested.
func calculateDatasets(ctx context.Context, month int) (*factors.Store, *sourcing.Engine, error) {
	if month == 0 {
		store, err := loadFactors(ctx)
		return store, nil, err
	}
	return loadDatasets(ctx)
}

func buildReport(
	ctx context.Context,
	store *factors.Store,
	engine *sourcing.Engine,
	params impact.CanteenParameters,
	month int,
) (calculateReport, error) {
	var report calculateReport

	res, err := impact.NewCalculator(store).Calculate(ctx, params)
	if err != nil {
		return report, err
	}
	if report.ImpactResponse, err = api.NewImpactResponse(res); err != nil {
		return report, err
	}
	if month == 0 {
		return report, nil
	}

	recs, err := engine.MonthlyRecommendations(ctx, month-1)
	if err != nil {
		return report, err
	}
	report.Sourcing = &api.SourcingResponse{Month: month - 1, Recommendations: greenops.RoundSourcing(recs)}
	return report, nil
}

// readParams decodes canteen parameters from path, or from stdin when path
// is "-". JSON input is accepted because it is valid YAML.
func readParams(stdin io.Reader, path string) (impact.CanteenParameters, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return impact.CanteenParameters{}, fmt.Errorf("reading parameters: %w", err)
	}

	var params impact.CanteenParameters
	if err = yaml.Unmarshal(data, &params); err != nil {
		return impact.CanteenParameters{}, fmt.Errorf("parsing parameters from %s: %w", path, err)
	}
	return params, nil
}

func renderCalculateTable(w io.Writer, r calculateReport) error {
	fmt.Fprintln(w, heading(w, "Canteen footprint"))
	if r.Canteen != nil {
		fmt.Fprintf(w, "  Canteen:   %s, %s (#%d)\n", r.Canteen.Name, r.Canteen.Location, r.Canteen.ID)
		fmt.Fprintf(w, "  Baseline:  %s reported\n", greenops.FormatTons(r.Canteen.BaselineAnnualTons))
	}
	fmt.Fprintf(w, "  Per meal:  %s\n", greenops.FormatKg(r.PerMealKg))
	fmt.Fprintf(w, "  Annual:    %s (%s meals)\n",
		greenops.FormatTons(r.AnnualTons), greenops.FormatNumber(int64(r.TotalMealsAnnual)))
	if !r.Equivalencies.IsEmpty {
		fmt.Fprintf(w, "  %s\n", muted(w, r.Equivalencies.DisplayText))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, heading(w, "Breakdown per meal"))
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "COMPONENT\tKG CO2E")
	fmt.Fprintln(tw, "---------\t-------")
	for _, c := range r.Breakdown.Components() {
		fmt.Fprintf(tw, "%s\t%s\n", c.Name, greenops.FormatFloat(c.KgCO2e, greenops.KgDecimals))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, heading(w, "Recommendations"))
	if len(r.Recommendations) == 0 {
		fmt.Fprintln(w, "  No measures above the reporting thresholds.")
	} else {
		tw = newTabWriter(w)
		fmt.Fprintln(tw, "#\tMEASURE\tSAVING/YEAR\tDIFFICULTY\tTRY")
		fmt.Fprintln(tw, "-\t-------\t-----------\t----------\t---")
		for _, rec := range r.Recommendations {
			try := "-"
			if len(rec.Suggestions) > 0 {
				try = strings.Join(rec.Suggestions, ", ")
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
				rec.Priority, rec.Title, greenops.FormatTons(rec.AnnualSavingTons), rec.Difficulty, try)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(w, "  Estimated climate cost avoided: %s\n", greenops.FormatCurrency(r.CostSavings))
	}

	if r.OrganicImpact.Recommendation != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s %s\n", heading(w, "Organic:"), r.OrganicImpact.Recommendation)
	}

	if r.Sourcing != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, heading(w, fmt.Sprintf("Sourcing, %s", time.Month(r.Sourcing.Month+1))))
		return writeSourcingTable(w, r.Sourcing.Recommendations)
	}
	return nil
}
