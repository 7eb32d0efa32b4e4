package commands

import (
	"github.com/spf13/cobra"

	"github.com/poofware/pm-dashboard/internal/portfolio"
)

func addUnit(topLevel *cobra.Command, factory AppFactory) {
	cmd := &cobra.Command{
		Use:     "unit <property-id> <unit-id>",
		Short:   "Show a unit with its current lease.",
		Example: "pmdash unit 1 12",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			propertyID, err := parseIDArg("property id", args[0])
			if err != nil {
				return err
			}
			unitID, err := parseIDArg("unit id", args[1])
			if err != nil {
				return err
			}
			a, err := loadApp(cmd.Context(), factory)
			if err != nil {
				return err
			}
			defer a.Close()

			svc := a.DashboardService
			svc.OpenProperty(propertyID)
			svc.OpenUnitDetail(unitID)

			view := svc.View(portfolio.Filter{Type: portfolio.TypeAll})
			w := out(cmd)
			printBanner(w, view)
			printDrawer(w, view.Drawer)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
