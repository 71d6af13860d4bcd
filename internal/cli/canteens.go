package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/canteenco2/internal/cli/pagination"
	"github.com/rshade/canteenco2/internal/factors"
	"github.com/rshade/canteenco2/internal/greenops"
)

// canteenListOutput is the JSON form of `canteenco2 canteens`.
type canteenListOutput struct {
	Canteens   []factors.Canteen `json:"canteens"`
	Pagination pagination.Meta   `json:"pagination"`
}

func canteenSorter() *pagination.Sorter[factors.Canteen] {
	return pagination.NewSorter(map[string]func(a, b factors.Canteen) bool{
		"id":        func(a, b factors.Canteen) bool { return a.ID < b.ID },
		"name":      func(a, b factors.Canteen) bool { return a.Name < b.Name },
		"employees": func(a, b factors.Canteen) bool { return a.Employees < b.Employees },
		"co2":       func(a, b factors.Canteen) bool { return a.CO2PerKg < b.CO2PerKg },
	})
}

// NewCanteensCmd creates the canteens command.
func NewCanteensCmd() *cobra.Command {
	var params pagination.Params

	cmd := &cobra.Command{
		Use:   "canteens",
		Short: "List the reference canteens",
		Long: `Lists the reference canteens with their measured intensity. Pass an ID to
'canteenco2 calculate --canteen' to calculate from one of them.`,
		Example: `  canteenco2 canteens

  # Lowest measured intensity first
  canteenco2 canteens --sort co2

  # Largest canteens as JSON
  canteenco2 canteens --sort employees:desc --limit 5 -o json`,
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
			list := store.Canteens()
			if list == nil {
				list = []factors.Canteen{}
			}
			if list, err = canteenSorter().Sort(list, field, order); err != nil {
				return err
			}
			meta := pagination.NewMeta(params, len(list))
			list = pagination.Apply(params, list)

			if format == "json" {
				return renderJSON(cmd.OutOrStdout(), canteenListOutput{Canteens: list, Pagination: meta})
			}
			if err = writeCanteensTable(cmd.OutOrStdout(), list); err != nil {
				return err
			}
			if meta.TotalPages > 1 {
				w := cmd.OutOrStdout()
				fmt.Fprintln(w, muted(w, fmt.Sprintf("Page %d of %d (%d canteens)",
					meta.CurrentPage, meta.TotalPages, meta.TotalItems)))
			}
			return nil
		},
	}

	params.AddFlags(cmd, "sort by id, name, employees or co2, optionally with :asc or :desc")

	return cmd
}

func writeCanteensTable(w io.Writer, list []factors.Canteen) error {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tEMPLOYEES\tKG CO2E/KG\tMEAT\tORGANIC")
	fmt.Fprintln(tw, "--\t----\t--------\t---------\t----------\t----\t-------")
	for _, c := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s%%\t%s%%\n",
			c.ID, c.Name, c.Location, greenops.FormatNumber(int64(c.Employees)),
			greenops.FormatFloat(c.CO2PerKg, 2),
			greenops.FormatFloat(c.MeatPercent, 0), greenops.FormatFloat(c.OrganicPercent, 0))
	}
	return tw.Flush()
}
