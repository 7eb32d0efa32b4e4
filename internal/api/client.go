package api

import (
	"context"

	"github.com/poofware/pm-dashboard/internal/models"
)

// Client is the CRUD boundary to the property-management REST API.
// Implementations must be safe for concurrent use; the loader issues the
// four list calls in parallel.
type Client interface {
	ListProperties(ctx context.Context) ([]models.Property, error)
	GetProperty(ctx context.Context, id models.ID) (*models.Property, error)
	DeleteProperty(ctx context.Context, id models.ID) error

	ListUnits(ctx context.Context, filter *UnitFilter) ([]models.Unit, error)
	UpdateUnit(ctx context.Context, id models.ID, payload UnitPayload) (*models.Unit, error)

	ListLeases(ctx context.Context) ([]models.Lease, error)
	CreateLease(ctx context.Context, payload LeasePayload) (*models.Lease, error)

	ListTenants(ctx context.Context) ([]models.Tenant, error)
}

// UnitFilter narrows ListUnits to one property.
type UnitFilter struct {
	PropertyID models.ID
}
