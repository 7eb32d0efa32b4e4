package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poofware/pm-dashboard/internal/api"
	"github.com/poofware/pm-dashboard/internal/app"
	"github.com/poofware/pm-dashboard/internal/dtos"
	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/navigation"
	"github.com/poofware/pm-dashboard/internal/portfolio"
	"github.com/poofware/pm-dashboard/internal/services"
	"github.com/poofware/pm-dashboard/internal/utils"
)

func addProperty(topLevel *cobra.Command, factory AppFactory) {
	var live bool

	cmd := &cobra.Command{
		Use:   "property <property-id>",
		Short: "Show one property and its units.",
		Example: `
pmdash property 12
pmdash property 12 --live
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg("property id", args[0])
			if err != nil {
				return err
			}
			a, err := loadApp(cmd.Context(), factory)
			if err != nil {
				return err
			}
			defer a.Close()

			w := out(cmd)
			if live {
				drawer, err := liveDrawer(cmd, a, id)
				if err != nil {
					return err
				}
				printDrawer(w, drawer)
				return nil
			}

			svc := a.DashboardService
			svc.OpenProperty(id)
			view := svc.View(portfolio.Filter{Type: portfolio.TypeAll})
			printBanner(w, view)
			printDrawer(w, view.Drawer)
			return nil
		},
	}
	cmd.Flags().BoolVar(&live, "live", false, "Fetch the property and its units directly instead of using the loaded portfolio.")

	topLevel.AddCommand(cmd)
}

// liveDrawer fetches one property and its units straight from the API.
// Occupancy is still derived against the loaded portfolio's leases.
func liveDrawer(cmd *cobra.Command, a *app.App, id models.ID) (dtos.Drawer, error) {
	ctx := cmd.Context()

	prop, err := a.API.GetProperty(ctx, id)
	if errors.Is(err, api.ErrNotFound) {
		return dtos.Drawer{}, fmt.Errorf("%w: %s", utils.ErrPropertyNotFound, id)
	}
	if err != nil {
		return dtos.Drawer{}, fmt.Errorf("get property %s: %w", id, err)
	}
	units, err := a.API.ListUnits(ctx, &api.UnitFilter{PropertyID: id})
	if err != nil {
		return dtos.Drawer{}, fmt.Errorf("list units for property %s: %w", id, err)
	}

	idx := a.DashboardService.Index()
	ptrs := portfolio.AllUnits(units)
	row := dtos.NewPropertyRow(prop, portfolio.StatsFor(ptrs, idx))

	drawer := dtos.Drawer{Mode: navigation.PropertyView.String(), PropertyID: &prop.ID, Property: &row}
	drawer.Units = make([]dtos.UnitRow, 0, len(ptrs))
	for _, u := range ptrs {
		drawer.Units = append(drawer.Units, services.NewUnitRow(u, idx))
	}
	return drawer, nil
}
