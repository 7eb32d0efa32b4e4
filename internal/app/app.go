package app

import (
	"github.com/poofware/pm-dashboard/internal/api"
	"github.com/poofware/pm-dashboard/internal/config"
	"github.com/poofware/pm-dashboard/internal/services"
	"github.com/poofware/pm-dashboard/internal/utils"
)

// App holds references to config, the API boundary and services.
type App struct {
	Config           *config.Config
	API              api.Client
	DashboardService *services.DashboardService
}

// NewApp builds the HTTP API client from cfg and wires the dashboard.
func NewApp(cfg *config.Config) (*App, error) {
	utils.Logger.Debug("Initializing pm-dashboard App")

	client, err := api.NewHTTPClient(cfg.APIBaseURL, cfg.APITimeout)
	if err != nil {
		return nil, err
	}
	return NewAppWithClient(cfg, client), nil
}

// NewAppWithClient wires the dashboard over an existing API client.
func NewAppWithClient(cfg *config.Config, client api.Client) *App {
	return &App{
		Config:           cfg,
		API:              client,
		DashboardService: services.NewDashboardService(client),
	}
}

// Close is a no-op here but included for consistency.
func (a *App) Close() {
	utils.Logger.Debug("pm-dashboard app shutting down.")
}
