package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/poofware/pm-dashboard/internal/api"
	"github.com/poofware/pm-dashboard/internal/dtos"
	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/navigation"
	"github.com/poofware/pm-dashboard/internal/notification"
	"github.com/poofware/pm-dashboard/internal/portfolio"
	"github.com/poofware/pm-dashboard/internal/store"
	"github.com/poofware/pm-dashboard/internal/utils"
)

// DashboardService is the property-management view: it owns the entity
// store, the drawer state, the notification slot and the mutation
// coordinator, and renders PortfolioViews from the current snapshot.
type DashboardService struct {
	store *store.EntityStore
	memo  portfolio.Memo
	nav   *navigation.Machine
	notes *notification.Slot

	Mutations *MutationCoordinator

	mu        sync.Mutex
	loading   bool
	loadError string
}

func NewDashboardService(client api.Client) *DashboardService {
	d := &DashboardService{
		store: store.NewEntityStore(client),
		nav:   navigation.NewMachine(),
		notes: notification.NewSlot(),
	}
	d.Mutations = NewMutationCoordinator(client, &trackedStore{d}, d.nav, d.notes)
	return d
}

// ------------------------------------------------------------------
// Loading
// ------------------------------------------------------------------

// Load fetches the whole portfolio. On failure the previous snapshot stays
// and a single generic banner is set; the loading flag is always cleared.
func (d *DashboardService) Load(ctx context.Context) error {
	d.mu.Lock()
	d.loading = true
	d.mu.Unlock()

	_, err := d.reload(ctx)

	d.mu.Lock()
	d.loading = false
	if err != nil {
		d.loadError = utils.LoadFailedMessage
	}
	d.mu.Unlock()
	return err
}

func (d *DashboardService) reload(ctx context.Context) (*store.Snapshot, error) {
	snap, err := d.store.Reload(ctx)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	d.loadError = ""
	d.mu.Unlock()
	return snap, nil
}

// trackedStore lets post-mutation reloads clear a stale load banner.
type trackedStore struct{ d *DashboardService }

func (t *trackedStore) Snapshot() *store.Snapshot { return t.d.store.Snapshot() }

func (t *trackedStore) Reload(ctx context.Context) (*store.Snapshot, error) {
	return t.d.reload(ctx)
}

// Snapshot returns the current snapshot.
func (d *DashboardService) Snapshot() *store.Snapshot {
	return d.store.Snapshot()
}

// Index returns the relationship index of the current snapshot.
func (d *DashboardService) Index() *portfolio.Index {
	return d.memo.IndexFor(d.store.Snapshot())
}

// ------------------------------------------------------------------
// Navigation
// ------------------------------------------------------------------

func (d *DashboardService) Navigation() navigation.State { return d.nav.State() }

func (d *DashboardService) OpenProperty(id models.ID) navigation.State {
	return d.nav.OpenProperty(id)
}

func (d *DashboardService) CloseDrawer() navigation.State {
	return d.nav.CloseDrawer()
}

func (d *DashboardService) OpenUnitDetail(unitID models.ID) navigation.State {
	return d.nav.OpenUnitDetail(unitID)
}

func (d *DashboardService) GoBackToUnits() navigation.State {
	return d.nav.GoBackToUnits()
}

// ------------------------------------------------------------------
// Notifications
// ------------------------------------------------------------------

func (d *DashboardService) Notification() (notification.Notification, bool) {
	return d.notes.Current()
}

func (d *DashboardService) DismissNotification(id *uuid.UUID) {
	d.notes.Dismiss(id)
}

// ------------------------------------------------------------------
// Rendering
// ------------------------------------------------------------------

// View renders one pass over the current snapshot.
func (d *DashboardService) View(filter portfolio.Filter) dtos.PortfolioView {
	snap := d.store.Snapshot()
	idx := d.memo.IndexFor(snap)

	d.mu.Lock()
	view := dtos.PortfolioView{
		Loading:         d.loading,
		LoadError:       d.loadError,
		SnapshotVersion: snap.Version,
	}
	d.mu.Unlock()

	if !snap.LoadedAt.IsZero() {
		loadedAt := snap.LoadedAt
		view.LoadedAt = &loadedAt
	}
	view.Filter = dtos.Filter{Search: filter.Search, Type: filter.Type}
	view.TypeLabels = append([]string(nil), portfolio.TypeLabels...)
	view.Stats = portfolio.StatsFor(portfolio.AllUnits(snap.Units), idx)

	filtered := portfolio.FilterProperties(snap.Properties, filter)
	view.Properties = make([]dtos.PropertyRow, 0, len(filtered))
	for _, p := range filtered {
		view.Properties = append(view.Properties,
			dtos.NewPropertyRow(p, portfolio.StatsFor(idx.UnitsFor(p.ID), idx)))
	}

	view.Drawer = BuildDrawer(d.nav.State(), snap, idx)
	view.Busy = d.Mutations.Busy()
	if n, ok := d.notes.Current(); ok {
		view.Notification = &n
	}
	return view
}

// BuildDrawer resolves the drawer against snap. A selection whose ids no
// longer resolve renders as an empty drawer in the same mode.
func BuildDrawer(state navigation.State, snap *store.Snapshot, idx *portfolio.Index) dtos.Drawer {
	drawer := dtos.Drawer{Mode: state.Mode().String()}
	if state.Mode() == navigation.Closed {
		return drawer
	}

	pid := state.PropertyID()
	drawer.PropertyID = &pid
	if state.Mode() == navigation.UnitDetailView {
		uid := state.UnitID()
		drawer.UnitID = &uid
	}

	prop, ok := state.SelectedProperty(snap)
	if !ok {
		return drawer
	}
	units := idx.UnitsFor(prop.ID)
	row := dtos.NewPropertyRow(prop, portfolio.StatsFor(units, idx))
	drawer.Property = &row

	drawer.Units = make([]dtos.UnitRow, 0, len(units))
	for _, u := range units {
		drawer.Units = append(drawer.Units, NewUnitRow(u, idx))
	}

	if unit, ok := state.SelectedUnit(snap); ok {
		detail := NewUnitDetail(unit, idx)
		drawer.Unit = &detail
	}
	return drawer
}

// NewUnitRow renders a unit with its derived occupancy.
func NewUnitRow(u *models.Unit, idx *portfolio.Index) dtos.UnitRow {
	return dtos.UnitRow{
		ID:          u.ID,
		UnitNumber:  u.UnitNumber,
		Bedrooms:    u.Bedrooms,
		Bathrooms:   u.Bathrooms,
		SquareFeet:  u.SquareFeet,
		RentAmount:  u.RentAmount,
		IsAvailable: u.IsAvailable,
		IsListed:    u.IsListed,
		Occupied:    portfolio.IsOccupied(u, idx),
		TenantName:  unitTenantName(u, idx),
	}
}

// NewUnitDetail renders the unit detail sub-view including its current lease.
func NewUnitDetail(u *models.Unit, idx *portfolio.Index) dtos.UnitDetail {
	detail := dtos.UnitDetail{
		UnitRow:              NewUnitRow(u, idx),
		ListingTitle:         u.ListingTitle,
		ListingDescription:   u.ListingDescription,
		ListingPhotos:        nonNil(u.ListingPhotos),
		ListingAmenities:     nonNil(u.ListingAmenities),
		ListingAvailableDate: u.ListingAvailableDate,
		ListingLeaseTerm:     u.ListingLeaseTerm,
		ListingDeposit:       u.ListingDeposit,
		ListingContactEmail:  u.ListingContactEmail,
		ListingContactPhone:  u.ListingContactPhone,
	}
	if lease, ok := idx.CurrentLease(u.ID); ok {
		detail.CurrentLease = &dtos.LeaseDetail{
			ID:              lease.ID,
			TenantID:        lease.TenantID,
			TenantName:      leaseTenantName(lease, idx),
			StartDate:       lease.StartDate,
			EndDate:         lease.EndDate,
			MonthlyRent:     lease.MonthlyRent,
			SecurityDeposit: lease.SecurityDeposit,
			IsActive:        lease.IsActive,
		}
	}
	return detail
}

func leaseTenantName(l *models.Lease, idx *portfolio.Index) string {
	if t, ok := idx.Tenant(l.TenantID); ok {
		return t.DisplayName()
	}
	if l.TenantDetail != nil {
		return l.TenantDetail.DisplayName()
	}
	return ""
}

// unitTenantName prefers the current lease's tenant, then the unit's
// denormalized tenant detail.
func unitTenantName(u *models.Unit, idx *portfolio.Index) string {
	if lease, ok := idx.CurrentLease(u.ID); ok {
		if name := leaseTenantName(lease, idx); name != "" {
			return name
		}
	}
	if u.CurrentTenantDetail != nil {
		return u.CurrentTenantDetail.DisplayName()
	}
	return ""
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
