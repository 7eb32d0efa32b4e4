package commands

import (
	"github.com/spf13/cobra"

	"github.com/poofware/pm-dashboard/internal/portfolio"
)

type filterOptions struct {
	Search string
	Type   string
}

func (o *filterOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "", "Match against name and address (case-insensitive).")
	cmd.Flags().StringVarP(&o.Type, "type", "t", portfolio.TypeAll, "Property type: All, Residential, Commercial, Mixed Use, Industrial.")
}

func (o *filterOptions) Filter() portfolio.Filter {
	return portfolio.Filter{Search: o.Search, Type: o.Type}
}

func addPortfolio(topLevel *cobra.Command, factory AppFactory) {
	fo := &filterOptions{}

	cmd := &cobra.Command{
		Use:     "portfolio",
		Aliases: []string{"ls"},
		Short:   "List properties with occupancy and revenue.",
		Example: `
pmdash portfolio
pmdash portfolio --search maple
pmdash portfolio --type commercial
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context(), factory)
			if err != nil {
				return err
			}
			defer a.Close()

			printPortfolio(out(cmd), a.DashboardService.View(fo.Filter()))
			return nil
		},
	}
	fo.AddFlags(cmd)

	topLevel.AddCommand(cmd)
}
