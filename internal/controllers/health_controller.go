package controllers

import (
	"net/http"
	"time"

	"github.com/poofware/pm-dashboard/internal/app"
	"github.com/poofware/pm-dashboard/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

type healthResponse struct {
	Status          string     `json:"status"`
	SnapshotVersion uint64     `json:"snapshot_version"`
	LoadedAt        *time.Time `json:"loaded_at,omitempty"`
}

// GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	snap := c.app.DashboardService.Snapshot()
	resp := healthResponse{Status: "OK", SnapshotVersion: snap.Version}
	if !snap.LoadedAt.IsZero() {
		loadedAt := snap.LoadedAt
		resp.LoadedAt = &loadedAt
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
