package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poofware/pm-dashboard/internal/app"
	"github.com/poofware/pm-dashboard/internal/config"
	"github.com/poofware/pm-dashboard/internal/dtos"
	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/testhelpers"
	"github.com/poofware/pm-dashboard/internal/utils"
)

type routerHarness struct {
	t      *testing.T
	fake   *testhelpers.FakeClient
	app    *app.App
	router http.Handler
}

func newHarness(t *testing.T) *routerHarness {
	t.Helper()
	fake := testhelpers.NewFakeClient(testhelpers.SamplePortfolio())
	a := app.NewAppWithClient(&config.Config{AppName: "pm-dashboard-test", AppUrl: "*"}, fake)
	require.NoError(t, a.DashboardService.Load(context.Background()))
	return &routerHarness{t: t, fake: fake, app: a, router: NewRouter(a)}
}

func (h *routerHarness) do(method, target, body string) *httptest.ResponseRecorder {
	h.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *routerHarness) view(rec *httptest.ResponseRecorder) dtos.PortfolioView {
	h.t.Helper()
	var v dtos.PortfolioView
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	rec := h.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "OK", body["status"])
	require.Equal(t, float64(1), body["snapshot_version"])
}

func TestGetPortfolioWithFilter(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/v1/portfolio?search=maple", "")
	require.Equal(t, http.StatusOK, rec.Code)
	v := h.view(rec)
	require.Len(t, v.Properties, 1)
	require.Equal(t, "Maple Court", v.Properties[0].Name)
	require.Equal(t, "All", v.Filter.Type)

	v = h.view(h.do(http.MethodGet, "/api/v1/portfolio?search=maple&type=Commercial", ""))
	require.Empty(t, v.Properties)
	require.Equal(t, 3, v.Stats.Total)
}

func TestDrawerNavigation(t *testing.T) {
	h := newHarness(t)

	v := h.view(h.do(http.MethodPost, "/api/v1/drawer/property/1", ""))
	require.Equal(t, "property", v.Drawer.Mode)
	require.Len(t, v.Drawer.Units, 2)

	v = h.view(h.do(http.MethodPost, "/api/v1/drawer/unit/11", ""))
	require.Equal(t, "unit_detail", v.Drawer.Mode)
	require.NotNil(t, v.Drawer.Unit)
	require.NotNil(t, v.Drawer.Unit.CurrentLease)

	v = h.view(h.do(http.MethodPost, "/api/v1/drawer/back", ""))
	require.Equal(t, "property", v.Drawer.Mode)

	v = h.view(h.do(http.MethodDelete, "/api/v1/drawer", ""))
	require.Equal(t, "closed", v.Drawer.Mode)

	rec := h.do(http.MethodPost, "/api/v1/drawer/property/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMutationsOverHTTP(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/units/12/toggle-listing", "")
	require.Equal(t, http.StatusOK, rec.Code)
	v := h.view(rec)
	require.NotNil(t, v.Notification)
	require.Equal(t, "Unit listed", v.Notification.Message)

	rec = h.do(http.MethodPatch, "/api/v1/units/12", `{"rent_amount":"1300"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	payload, _ := h.fake.LastUnitPayload()
	require.Equal(t, "1300", payload.RentAmount.String())
	require.True(t, payload.IsListed)

	rec = h.do(http.MethodPost, "/api/v1/leases", `{"unit":12,"tenant":502,"start_date":"2026-11-01","end_date":"2027-10-31"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	lease, _ := h.fake.LastLeasePayload()
	require.Equal(t, "1300", lease.MonthlyRent.String())

	rec = h.do(http.MethodDelete, "/api/v1/properties/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, h.view(rec).Properties, 1)
}

func TestMutationErrorsOverHTTP(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPost, "/api/v1/leases", `{"unit":12,"start_date":"2026-11-01"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errBody utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	require.Equal(t, utils.ErrCodeValidation, errBody.Code)
	require.Equal(t, 0, h.fake.CallCount(testhelpers.OpCreateLease))

	rec = h.do(http.MethodPatch, "/api/v1/units/999", `{}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(http.MethodPatch, "/api/v1/units/12", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	h.fake.FailOn(testhelpers.OpDeleteProperty, testhelpers.ErrInjected)
	rec = h.do(http.MethodDelete, "/api/v1/properties/1", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	_, ok := h.app.DashboardService.Snapshot().PropertyByID(models.NewID(1))
	require.True(t, ok)
}

func TestMalformedNumbersOverHTTP(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodPatch, "/api/v1/units/12", `{"rent_amount":"12OO"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errBody utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	require.Equal(t, utils.ErrCodeValidation, errBody.Code)
	require.Equal(t, 0, h.fake.CallCount(testhelpers.OpUpdateUnit))
	u, ok := h.app.DashboardService.Snapshot().UnitByID(models.NewID(12))
	require.True(t, ok)
	require.Equal(t, "1200", u.RentAmount.String())

	rec = h.do(http.MethodPost, "/api/v1/leases",
		`{"unit":12,"tenant":502,"start_date":"2026-11-01","end_date":"2027-10-31","monthly_rent":"lots"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 0, h.fake.CallCount(testhelpers.OpCreateLease))
}

func TestClearAvailableDateOverHTTP(t *testing.T) {
	h := newHarness(t)
	h.fake.Units[1].ListingAvailableDate = utils.Ptr("2026-12-01")
	require.Equal(t, http.StatusOK, h.do(http.MethodPost, "/api/v1/portfolio/reload", "").Code)

	rec := h.do(http.MethodPatch, "/api/v1/units/12", `{"listing_title":"Bright 2BR"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	payload, ok := h.fake.LastUnitPayload()
	require.True(t, ok)
	require.Equal(t, utils.Ptr("2026-12-01"), payload.ListingAvailableDate)

	rec = h.do(http.MethodPatch, "/api/v1/units/12", `{"listing_available_date":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	payload, _ = h.fake.LastUnitPayload()
	require.Nil(t, payload.ListingAvailableDate)
	u, ok := h.app.DashboardService.Snapshot().UnitByID(models.NewID(12))
	require.True(t, ok)
	require.Nil(t, u.ListingAvailableDate)
}

func TestReloadAndDismiss(t *testing.T) {
	h := newHarness(t)

	h.fake.FailOn(testhelpers.OpListLeases, testhelpers.ErrInjected)
	rec := h.do(http.MethodPost, "/api/v1/portfolio/reload", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	v := h.view(rec)
	require.Equal(t, utils.LoadFailedMessage, v.LoadError)
	require.Len(t, v.Properties, 2)

	h.fake.FailOn(testhelpers.OpListLeases, nil)
	v = h.view(h.do(http.MethodPost, "/api/v1/portfolio/reload", ""))
	require.Empty(t, v.LoadError)
	require.Equal(t, uint64(2), v.SnapshotVersion)

	v = h.view(h.do(http.MethodPost, "/api/v1/units/12/toggle-listing", ""))
	require.NotNil(t, v.Notification)

	rec = h.do(http.MethodDelete, "/api/v1/notification?id="+v.Notification.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, h.view(rec).Notification)

	rec = h.do(http.MethodDelete, "/api/v1/notification?id=nope", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
