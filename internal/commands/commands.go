package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/poofware/pm-dashboard/internal/app"
	"github.com/poofware/pm-dashboard/internal/config"
	"github.com/poofware/pm-dashboard/internal/models"
)

// AppFactory builds the App a command runs against. Tests swap it for one
// backed by a fake API client.
type AppFactory func() (*app.App, error)

func defaultAppFactory() (*app.App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return app.NewApp(cfg)
}

// New builds the pmdash command tree using the environment config.
func New() *cobra.Command {
	return NewWithFactory(defaultAppFactory)
}

func NewWithFactory(factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pmdash",
		Short:         "Property-management portfolio dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd, factory)
	return cmd
}

func AddCommands(topLevel *cobra.Command, factory AppFactory) {
	addPortfolio(topLevel, factory)
	addProperty(topLevel, factory)
	addUnit(topLevel, factory)
	addDeleteProperty(topLevel, factory)
	addToggleListing(topLevel, factory)
	addUpdateUnit(topLevel, factory)
	addCreateLease(topLevel, factory)
	addServe(topLevel, factory)
}

// loadApp builds the App and performs the initial portfolio load. A load
// failure is not fatal: the caller still gets the app and prints the banner.
func loadApp(ctx context.Context, factory AppFactory) (*app.App, error) {
	a, err := factory()
	if err != nil {
		return nil, err
	}
	_ = a.DashboardService.Load(ctx)
	return a, nil
}

func parseIDArg(name, raw string) (models.ID, error) {
	id, ok := models.ParseID(raw)
	if !ok {
		return models.ID{}, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
