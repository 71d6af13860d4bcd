package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/canteenco2/internal/cli/pagination"
	"github.com/rshade/canteenco2/internal/factors"
	"github.com/rshade/canteenco2/internal/greenops"
)

// NewFactorsLookupCmd creates the factors lookup command.
func NewFactorsLookupCmd() *cobra.Command {
	var organic bool

	cmd := &cobra.Command{
		Use:   "lookup <item>",
		Short: "Show the emission factor of one food item",
		Example: `  canteenco2 factors lookup "Oksekød (dansk)"
  canteenco2 factors lookup "Kylling (økologisk)" --organic -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			store, err := loadFactors(cmd.Context())
			if err != nil {
				return err
			}
			f, err := store.Lookup(args[0], organic)
			if err != nil {
				return err
			}
			if format == "json" {
				return renderJSON(cmd.OutOrStdout(), f)
			}
			return writeFactorsTable(cmd.OutOrStdout(), []factors.EmissionFactor{f})
		},
	}

	cmd.Flags().BoolVar(&organic, "organic", false, "look up the organic variant")

	return cmd
}

// factorListOutput is the JSON form of `canteenco2 factors list`.
type factorListOutput struct {
	Factors    []factors.EmissionFactor `json:"factors"`
	Pagination pagination.Meta          `json:"pagination"`
}

func factorSorter() *pagination.Sorter[factors.EmissionFactor] {
	return pagination.NewSorter(map[string]func(a, b factors.EmissionFactor) bool{
		"item":     func(a, b factors.EmissionFactor) bool { return a.FoodItem < b.FoodItem },
		"category": func(a, b factors.EmissionFactor) bool { return a.Category < b.Category },
		"co2":      func(a, b factors.EmissionFactor) bool { return a.CO2ePerKg < b.CO2ePerKg },
	})
}

// NewFactorsListCmd creates the factors list command.
func NewFactorsListCmd() *cobra.Command {
	var (
		category string
		params   pagination.Params
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List emission factors, optionally for one category",
		Example: `  canteenco2 factors list
  canteenco2 factors list --category red_meat

  # The ten most emission-intensive items
  canteenco2 factors list --sort co2:desc --limit 10

  # Second page of 15
  canteenco2 factors list --page 2 --page-size 15`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if err = params.Validate(); err != nil {
				return err
			}
			field, order, err := pagination.ParseSort(params.Sort, pagination.SortOrderAsc)
			if err != nil {
				return err
			}

			store, err := loadFactors(cmd.Context())
			if err != nil {
				return err
			}

			var list []factors.EmissionFactor
			if category == "" {
				list = store.Factors()
			} else {
				c := factors.Category(category)
				if !c.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}
				list = store.FactorsByCategory(c)
			}
			if list == nil {
				list = []factors.EmissionFactor{}
			}

			if list, err = factorSorter().Sort(list, field, order); err != nil {
				return err
			}
			meta := pagination.NewMeta(params, len(list))
			list = pagination.Apply(params, list)

			if format == "json" {
				return renderJSON(cmd.OutOrStdout(), factorListOutput{Factors: list, Pagination: meta})
			}
			if err = writeFactorsTable(cmd.OutOrStdout(), list); err != nil {
				return err
			}
			if meta.TotalPages > 1 {
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, muted(w, fmt.Sprintf("Page %d of %d (%d factors)",
					meta.CurrentPage, meta.TotalPages, meta.TotalItems)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list factors in this category")
	params.AddFlags(cmd, "sort by item, category or co2, optionally with :asc or :desc")

	return cmd
}

// NewFactorsAlternativesCmd creates the factors alternatives command.
func NewFactorsAlternativesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alternatives <meat>",
		Short: "Plant-based alternatives to a meat product",
		Long: `Lists plant-based substitutes whose meat product contains the given text
(case-insensitive), largest CO2 saving first.`,
		Example: `  canteenco2 factors alternatives Oksekød`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			store, err := loadFactors(cmd.Context())
			if err != nil {
				return err
			}
			alts := store.PlantAlternatives(args[0])
			if alts == nil {
				alts = []factors.Alternative{}
			}
			if format == "json" {
				return renderJSON(cmd.OutOrStdout(), alts)
			}

			w := cmd.OutOrStdout()
			if len(alts) == 0 {
				fmt.Fprintf(w, "No alternatives found for %q.\n", args[0])
				return nil
			}
			tw := newTabWriter(w)
			fmt.Fprintln(tw, "MEAT\tALTERNATIVE\tSAVING\tPROTEIN/100G\tTASTE\tCOST")
			fmt.Fprintln(tw, "----\t-----------\t------\t------------\t-----\t----")
			for _, a := range alts {
				fmt.Fprintf(tw, "%s\t%s\t%s%%\t%sg\t%s\t%s\n",
					a.MeatProduct, a.Alternative,
					greenops.FormatFloat(a.CO2SavingPercent, 0),
					greenops.FormatFloat(a.ProteinPer100g, 1),
					a.TasteSimilarity, a.CostComparison)
			}
			return tw.Flush()
		},
	}
}

// NewFactorsTipsCmd creates the factors tips command.
func NewFactorsTipsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Food waste reduction measures",
		Example: `  canteenco2 factors tips
  canteenco2 factors tips --category Buffet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			store, err := loadFactors(cmd.Context())
			if err != nil {
				return err
			}
			tips := store.WasteReductionTips(category)
			if tips == nil {
				tips = []factors.Tip{}
			}
			if format == "json" {
				return renderJSON(cmd.OutOrStdout(), tips)
			}

			w := cmd.OutOrStdout()
			if len(tips) == 0 {
				fmt.Fprintln(w, "No tips found.")
				return nil
			}
			tw := newTabWriter(w)
			fmt.Fprintln(tw, "CATEGORY\tTIP\tREDUCTION\tDIFFICULTY\tTIME\tCOST")
			fmt.Fprintln(tw, "--------\t---\t---------\t----------\t----\t----")
			for _, t := range tips {
				fmt.Fprintf(tw, "%s\t%s\t%s%%\t%s\t%s\t%s\n",
					t.Category, t.Title, greenops.FormatFloat(t.ReductionPercent, 0),
					t.Difficulty, t.ImplementationTime, t.CostImpact)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only show tips for this waste category")

	return cmd
}

// NewFactorsOrganicCmd creates the factors organic command.
func NewFactorsOrganicCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "organic <item>",
		Short:   "Compare the organic and conventional footprint of an item",
		Example: `  canteenco2 factors organic Kylling`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			store, err := loadFactors(cmd.Context())
			if err != nil {
				return err
			}
			c, err := store.OrganicComparison(args[0])
			if err != nil {
				return err
			}
			if format == "json" {
				return renderJSON(cmd.OutOrStdout(), c)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, heading(w, c.FoodItem))
			fmt.Fprintf(w, "  Conventional: %s kg CO2e/kg\n", greenops.FormatFloat(c.ConventionalCO2, 1))
			fmt.Fprintf(w, "  Organic:      %s kg CO2e/kg (%+.0f%%)\n",
				greenops.FormatFloat(c.OrganicCO2, 1), c.DifferencePercent)
			if c.Explanation != "" {
				fmt.Fprintf(w, "  %s\n", muted(w, c.Explanation))
			}
			if c.Recommendation != "" {
				fmt.Fprintf(w, "  %s\n", c.Recommendation)
			}
			return nil
		},
	}
}

// NewFactorsSeasonalCmd creates the factors seasonal command.
func NewFactorsSeasonalCmd() *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "seasonal",
		Short: "Produce in season domestically in a month",
		Example: `  canteenco2 factors seasonal
  canteenco2 factors seasonal --month 9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("month") {
				month = int(time.Now().Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12, got %d", month)
			}
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			store, err := loadFactors(cmd.Context())
			if err != nil {
				return err
			}
			produce := store.SeasonalAvailability(month - 1)
			if produce == nil {
				produce = []factors.SeasonalProduce{}
			}
			if format == "json" {
				return renderJSON(cmd.OutOrStdout(), produce)
			}
			return writeSeasonalTable(cmd.OutOrStdout(), time.Month(month), produce)
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "calendar month 1-12 (default current month)")

	return cmd
}

// NewFactorsTransportCmd creates the factors transport command.
func NewFactorsTransportCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "transport",
		Short:   "Emission intensity of freight transport modes",
		Example: `  canteenco2 factors transport -o json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			store, err := loadFactors(cmd.Context())
			if err != nil {
				return err
			}
			modes := store.TransportFactors()
			if modes == nil {
				modes = []factors.TransportFactor{}
			}
			if format == "json" {
				return renderJSON(cmd.OutOrStdout(), modes)
			}

			tw := newTabWriter(cmd.OutOrStdout())
			fmt.Fprintln(tw, "METHOD\tRANGE\tKG CO2E/TON-KM\tDESCRIPTION")
			fmt.Fprintln(tw, "------\t-----\t--------------\t-----------")
			for _, t := range modes {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					t.Method, t.KmRange, greenops.FormatFloat(t.KgCO2PerTonKm, 3), t.Description)
			}
			return tw.Flush()
		},
	}
}

func writeFactorsTable(w io.Writer, list []factors.EmissionFactor) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ITEM\tCATEGORY\tORGANIC\tKG CO2E/KG\tCONFIDENCE")
	fmt.Fprintln(tw, "----\t--------\t-------\t----------\t----------")
	for _, f := range list {
		organic := "no"
		if f.IsOrganic {
			organic = "yes"
		}
		conf := f.Confidence
		if conf == "" {
			conf = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			f.FoodItem, f.Category, organic, greenops.FormatFloat(f.CO2ePerKg, 1), conf)
	}
	return tw.Flush()
}

func writeSeasonalTable(w io.Writer, month time.Month, produce []factors.SeasonalProduce) error {
	fmt.Fprintln(w, heading(w, fmt.Sprintf("In season, %s", month)))
	if len(produce) == 0 {
		fmt.Fprintln(w, "  Nothing in season.")
		return nil
	}

	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ITEM\tSTORABLE\tCLIMATE BENEFIT\tSEASON")
	fmt.Fprintln(tw, "----\t--------\t---------------\t------")
	for _, p := range produce {
		storable := "no"
		if p.StoragePossible {
			storable = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s%%\t%s\n",
			p.FoodItem, storable, greenops.FormatFloat(p.ClimateBenefitPercent, 0), seasonRange(p.Months))
	}
	return tw.Flush()
}

// seasonRange renders the in-season months as three-letter abbreviations.
func seasonRange(months [12]bool) string {
	var names []string
	for i, in := range months {
		if in {
			names = append(names, time.Month(i + 1).String()[:3])
		}
	}
	if len(names) == len(months) {
		return "all year"
	}
	return strings.Join(names, " ")
}
