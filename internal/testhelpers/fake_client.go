package testhelpers

import (
	"context"
	"errors"
	"sync"

	"github.com/poofware/pm-dashboard/internal/api"
	"github.com/poofware/pm-dashboard/internal/models"
)

// Operation names recorded by FakeClient.
const (
	OpListProperties = "ListProperties"
	OpGetProperty    = "GetProperty"
	OpDeleteProperty = "DeleteProperty"
	OpListUnits      = "ListUnits"
	OpUpdateUnit     = "UpdateUnit"
	OpListLeases     = "ListLeases"
	OpCreateLease    = "CreateLease"
	OpListTenants    = "ListTenants"
)

var ErrInjected = errors.New("injected failure")

// FakeClient is an in-memory api.Client. Writes change its data so the
// next reload observes them, like the real API.
type FakeClient struct {
	mu sync.Mutex

	Properties []models.Property
	Units      []models.Unit
	Leases     []models.Lease
	Tenants    []models.Tenant

	Calls         []string
	UnitPayloads  []api.UnitPayload
	LeasePayloads []api.LeasePayload

	failures map[string]error
	gates    map[string]chan struct{}
	nextID   int64
}

var _ api.Client = (*FakeClient)(nil)

func NewFakeClient(p Portfolio) *FakeClient {
	return &FakeClient{
		Properties: p.Properties,
		Units:      p.Units,
		Leases:     p.Leases,
		Tenants:    p.Tenants,
		failures:   make(map[string]error),
		gates:      make(map[string]chan struct{}),
		nextID:     1000,
	}
}

// FailOn makes op return err until cleared with FailOn(op, nil).
func (f *FakeClient) FailOn(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.failures, op)
		return
	}
	f.failures[op] = err
}

// Gate blocks op until the returned channel is closed.
func (f *FakeClient) Gate(op string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[op] = ch
	return ch
}

// CallCount returns how many times op was invoked.
func (f *FakeClient) CallCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == op {
			n++
		}
	}
	return n
}

// LastUnitPayload returns the most recent UpdateUnit body.
func (f *FakeClient) LastUnitPayload() (api.UnitPayload, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.UnitPayloads) == 0 {
		return api.UnitPayload{}, false
	}
	return f.UnitPayloads[len(f.UnitPayloads)-1], true
}

// LastLeasePayload returns the most recent CreateLease body.
func (f *FakeClient) LastLeasePayload() (api.LeasePayload, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.LeasePayloads) == 0 {
		return api.LeasePayload{}, false
	}
	return f.LeasePayloads[len(f.LeasePayloads)-1], true
}

func (f *FakeClient) enter(ctx context.Context, op string) error {
	f.mu.Lock()
	f.Calls = append(f.Calls, op)
	gate := f.gates[op]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failures[op]
}

/* ---------- api.Client ---------- */

func (f *FakeClient) ListProperties(ctx context.Context) ([]models.Property, error) {
	if err := f.enter(ctx, OpListProperties); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Property(nil), f.Properties...), nil
}

func (f *FakeClient) GetProperty(ctx context.Context, id models.ID) (*models.Property, error) {
	if err := f.enter(ctx, OpGetProperty); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.Properties {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, &api.StatusError{StatusCode: 404, Message: "Not found."}
}

func (f *FakeClient) DeleteProperty(ctx context.Context, id models.ID) error {
	if err := f.enter(ctx, OpDeleteProperty); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.Properties[:0:0]
	for _, p := range f.Properties {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(f.Properties) {
		return &api.StatusError{StatusCode: 404, Message: "Not found."}
	}
	f.Properties = kept

	units := f.Units[:0:0]
	for _, u := range f.Units {
		if u.PropertyID != id {
			units = append(units, u)
		}
	}
	f.Units = units
	return nil
}

func (f *FakeClient) ListUnits(ctx context.Context, filter *api.UnitFilter) ([]models.Unit, error) {
	if err := f.enter(ctx, OpListUnits); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Unit, 0, len(f.Units))
	for _, u := range f.Units {
		if filter != nil && filter.PropertyID.Valid && u.PropertyID != filter.PropertyID {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *FakeClient) UpdateUnit(ctx context.Context, id models.ID, payload api.UnitPayload) (*models.Unit, error) {
	f.mu.Lock()
	f.UnitPayloads = append(f.UnitPayloads, payload)
	f.mu.Unlock()

	if err := f.enter(ctx, OpUpdateUnit); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Units {
		if f.Units[i].ID != id {
			continue
		}
		u := &f.Units[i]
		u.PropertyID = payload.Property
		u.UnitNumber = payload.UnitNumber
		u.Bedrooms = payload.Bedrooms
		u.Bathrooms = payload.Bathrooms
		u.SquareFeet = payload.SquareFeet
		u.RentAmount = payload.RentAmount
		u.IsAvailable = payload.IsAvailable
		u.IsListed = payload.IsListed
		u.ListingTitle = payload.ListingTitle
		u.ListingDescription = payload.ListingDescription
		u.ListingPhotos = payload.ListingPhotos
		u.ListingAmenities = payload.ListingAmenities
		u.ListingAvailableDate = payload.ListingAvailableDate
		u.ListingDeposit = payload.ListingDeposit
		u.ListingLeaseTerm = payload.ListingLeaseTerm
		u.ListingContactEmail = payload.ListingContactEmail
		u.ListingContactPhone = payload.ListingContactPhone
		out := *u
		return &out, nil
	}
	return nil, &api.StatusError{StatusCode: 404, Message: "Not found."}
}

func (f *FakeClient) ListLeases(ctx context.Context) ([]models.Lease, error) {
	if err := f.enter(ctx, OpListLeases); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Lease(nil), f.Leases...), nil
}

func (f *FakeClient) CreateLease(ctx context.Context, payload api.LeasePayload) (*models.Lease, error) {
	f.mu.Lock()
	f.LeasePayloads = append(f.LeasePayloads, payload)
	f.mu.Unlock()

	if err := f.enter(ctx, OpCreateLease); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	l := models.Lease{
		ID:              models.NewID(f.nextID),
		UnitID:          payload.Unit,
		TenantID:        payload.Tenant,
		StartDate:       payload.StartDate,
		EndDate:         payload.EndDate,
		MonthlyRent:     payload.MonthlyRent,
		SecurityDeposit: payload.SecurityDeposit,
		IsActive:        payload.IsActive,
		CreatedAt:       "2026-10-15T12:00:00Z",
		UpdatedAt:       "2026-10-15T12:00:00Z",
	}
	f.Leases = append(f.Leases, l)
	return &l, nil
}

func (f *FakeClient) ListTenants(ctx context.Context) ([]models.Tenant, error) {
	if err := f.enter(ctx, OpListTenants); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Tenant(nil), f.Tenants...), nil
}
