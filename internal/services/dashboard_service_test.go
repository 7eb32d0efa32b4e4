package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/portfolio"
	"github.com/poofware/pm-dashboard/internal/store"
	"github.com/poofware/pm-dashboard/internal/testhelpers"
	"github.com/poofware/pm-dashboard/internal/utils"
)

func testFilter() portfolio.Filter {
	return portfolio.Filter{Type: portfolio.TypeAll}
}

func TestLoadFailureSetsBanner(t *testing.T) {
	fake := testhelpers.NewFakeClient(testhelpers.SamplePortfolio())
	fake.FailOn(testhelpers.OpListUnits, testhelpers.ErrInjected)
	svc := NewDashboardService(fake)

	err := svc.Load(context.Background())
	require.True(t, errors.Is(err, utils.ErrLoadFailed))

	view := svc.View(testFilter())
	require.False(t, view.Loading)
	require.Equal(t, utils.LoadFailedMessage, view.LoadError)
	require.Empty(t, view.Properties)
	require.Same(t, store.Empty(), svc.Snapshot())

	fake.FailOn(testhelpers.OpListUnits, nil)
	require.NoError(t, svc.Load(context.Background()))
	view = svc.View(testFilter())
	require.Empty(t, view.LoadError)
	require.Len(t, view.Properties, 2)
}

func TestViewPortfolio(t *testing.T) {
	svc, _ := loadedService(t)

	view := svc.View(testFilter())
	require.Equal(t, uint64(1), view.SnapshotVersion)
	require.NotNil(t, view.LoadedAt)
	require.Equal(t, portfolio.TypeLabels, view.TypeLabels)
	require.Equal(t, "closed", view.Drawer.Mode)
	require.Nil(t, view.Notification)

	require.Equal(t, 3, view.Stats.Total)
	require.Equal(t, 1, view.Stats.Occupied)
	require.Equal(t, 33, view.Stats.OccupancyPct)

	require.Len(t, view.Properties, 2)
	maple := view.Properties[0]
	require.Equal(t, "Maple Court", maple.Name)
	require.Equal(t, "Residential", maple.PropertyType)
	require.Equal(t, "100 Main St, Springfield, IL 62701", maple.Address)
	require.Equal(t, 50, maple.Stats.OccupancyPct)
	require.Equal(t, "1000", maple.Stats.MonthlyRevenue.String())

	filtered := svc.View(portfolio.Filter{Search: "maple", Type: "Commercial"})
	require.Empty(t, filtered.Properties)
	require.Equal(t, 3, filtered.Stats.Total)
}

func TestViewDrawer(t *testing.T) {
	svc, _ := loadedService(t)

	svc.OpenProperty(models.NewID(1))
	view := svc.View(testFilter())
	require.Equal(t, "property", view.Drawer.Mode)
	require.NotNil(t, view.Drawer.Property)
	require.Equal(t, "Maple Court", view.Drawer.Property.Name)
	require.Len(t, view.Drawer.Units, 2)
	require.True(t, view.Drawer.Units[0].Occupied)
	require.Equal(t, "Ada Lovelace", view.Drawer.Units[0].TenantName)
	require.False(t, view.Drawer.Units[1].Occupied)
	require.Nil(t, view.Drawer.Unit)

	svc.OpenUnitDetail(models.NewID(11))
	view = svc.View(testFilter())
	require.Equal(t, "unit_detail", view.Drawer.Mode)
	require.NotNil(t, view.Drawer.Unit)
	require.Equal(t, "U1", view.Drawer.Unit.UnitNumber)
	require.NotNil(t, view.Drawer.Unit.CurrentLease)
	require.Equal(t, models.NewID(101), view.Drawer.Unit.CurrentLease.ID)
	require.Equal(t, "Ada Lovelace", view.Drawer.Unit.CurrentLease.TenantName)

	svc.GoBackToUnits()
	require.Equal(t, "property", svc.View(testFilter()).Drawer.Mode)
}

func TestDrawerEmptyWhenSelectionDisappears(t *testing.T) {
	svc, fake := loadedService(t)
	svc.OpenProperty(models.NewID(2))

	fake.Properties = fake.Properties[:1]
	require.NoError(t, svc.Load(context.Background()))

	view := svc.View(testFilter())
	require.Equal(t, "property", view.Drawer.Mode)
	require.NotNil(t, view.Drawer.PropertyID)
	require.Nil(t, view.Drawer.Property)
	require.Empty(t, view.Drawer.Units)

	// the orphaned unit still counts portfolio-wide
	require.Equal(t, 3, view.Stats.Total)
}

func TestLeaseTenantFallsBackToDetail(t *testing.T) {
	p := testhelpers.SamplePortfolio()
	p.Tenants = nil
	p.Leases[0].TenantDetail = &models.Tenant{ID: models.NewID(501), FullName: "Ada K. Lovelace"}
	svc := NewDashboardService(testhelpers.NewFakeClient(p))
	require.NoError(t, svc.Load(context.Background()))

	unit, ok := svc.Snapshot().UnitByID(models.NewID(11))
	require.True(t, ok)
	detail := NewUnitDetail(unit, svc.Index())
	require.Equal(t, "Ada K. Lovelace", detail.CurrentLease.TenantName)
	require.Equal(t, "Ada K. Lovelace", detail.TenantName)
}

func TestIndexMemoizedPerSnapshot(t *testing.T) {
	svc, _ := loadedService(t)

	first := svc.Index()
	require.Same(t, first, svc.Index())

	require.NoError(t, svc.Load(context.Background()))
	require.NotSame(t, first, svc.Index())
}

func TestDismissNotification(t *testing.T) {
	svc, _ := loadedService(t)
	require.NoError(t, svc.Mutations.ToggleListing(context.Background(), models.NewID(12)))

	n, ok := svc.Notification()
	require.True(t, ok)
	svc.DismissNotification(&n.ID)
	_, ok = svc.Notification()
	require.False(t, ok)
}
