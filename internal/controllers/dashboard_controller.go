package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/poofware/pm-dashboard/internal/dtos"
	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/portfolio"
	"github.com/poofware/pm-dashboard/internal/services"
	"github.com/poofware/pm-dashboard/internal/utils"
)

type DashboardController struct {
	svc *services.DashboardService
}

func NewDashboardController(s *services.DashboardService) *DashboardController {
	return &DashboardController{svc: s}
}

// -----------------------------------------------------------------------------
// GET /api/v1/portfolio?search=&type=
// -----------------------------------------------------------------------------
func (c *DashboardController) GetPortfolioHandler(w http.ResponseWriter, r *http.Request) {
	c.respondView(w, r, http.StatusOK)
}

// -----------------------------------------------------------------------------
// POST /api/v1/portfolio/reload
// -----------------------------------------------------------------------------
func (c *DashboardController) ReloadHandler(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	if err := c.svc.Load(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("Portfolio reload failed")
		status = http.StatusBadGateway
	}
	c.respondView(w, r, status)
}

// -----------------------------------------------------------------------------
// Drawer navigation
// -----------------------------------------------------------------------------

// POST /api/v1/drawer/property/{id}
func (c *DashboardController) OpenPropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c.svc.OpenProperty(id)
	c.respondView(w, r, http.StatusOK)
}

// POST /api/v1/drawer/unit/{id}
func (c *DashboardController) OpenUnitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c.svc.OpenUnitDetail(id)
	c.respondView(w, r, http.StatusOK)
}

// POST /api/v1/drawer/back
func (c *DashboardController) BackHandler(w http.ResponseWriter, r *http.Request) {
	c.svc.GoBackToUnits()
	c.respondView(w, r, http.StatusOK)
}

// DELETE /api/v1/drawer
func (c *DashboardController) CloseDrawerHandler(w http.ResponseWriter, r *http.Request) {
	c.svc.CloseDrawer()
	c.respondView(w, r, http.StatusOK)
}

// -----------------------------------------------------------------------------
// Mutations
// -----------------------------------------------------------------------------

// DELETE /api/v1/properties/{id}
func (c *DashboardController) DeletePropertyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.Mutations.DeleteProperty(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	c.respondView(w, r, http.StatusOK)
}

// PATCH /api/v1/units/{id}
func (c *DashboardController) UpdateUnitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UnitOverrides
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.svc.Mutations.UpdateUnit(r.Context(), id, req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	c.respondView(w, r, http.StatusOK)
}

// POST /api/v1/units/{id}/toggle-listing
func (c *DashboardController) ToggleListingHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.Mutations.ToggleListing(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	c.respondView(w, r, http.StatusOK)
}

// POST /api/v1/leases
func (c *DashboardController) CreateLeaseHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.svc.Mutations.CreateLease(r.Context(), req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	c.respondView(w, r, http.StatusCreated)
}

// DELETE /api/v1/notification?id=
func (c *DashboardController) DismissNotificationHandler(w http.ResponseWriter, r *http.Request) {
	var id *uuid.UUID
	if raw := r.URL.Query().Get("id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid notification id", nil, err)
			return
		}
		id = &parsed
	}
	c.svc.DismissNotification(id)
	c.respondView(w, r, http.StatusOK)
}

// -----------------------------------------------------------------------------
// shared helpers
// -----------------------------------------------------------------------------

func (c *DashboardController) respondView(w http.ResponseWriter, r *http.Request, status int) {
	q := r.URL.Query()
	filter := portfolio.Filter{Search: q.Get("search"), Type: q.Get("type")}
	if filter.Type == "" {
		filter.Type = portfolio.TypeAll
	}
	utils.RespondWithJSON(w, status, c.svc.View(filter))
}

func pathID(w http.ResponseWriter, r *http.Request) (models.ID, bool) {
	raw := mux.Vars(r)["id"]
	id, ok := models.ParseID(raw)
	if !ok {
		utils.HandleAppError(w, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeInvalidPayload,
			Message:    "Invalid id",
			Err:        fmt.Errorf("invalid id %q", raw),
		})
		return models.ID{}, false
	}
	return id, true
}
