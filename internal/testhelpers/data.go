package testhelpers

import (
	"encoding/json"

	"github.com/poofware/pm-dashboard/internal/models"
)

// Portfolio is a fixture of the four collections.
type Portfolio struct {
	Properties []models.Property
	Units      []models.Unit
	Leases     []models.Lease
	Tenants    []models.Tenant
}

func ID(v int64) models.ID { return models.NewID(v) }

func Rent(v int64) models.Amount { return models.AmountFromInt(v) }

func NewProperty(id int64, name, propertyType string) models.Property {
	return models.Property{
		ID:           ID(id),
		Name:         name,
		AddressLine1: "100 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		PropertyType: propertyType,
	}
}

func NewUnit(id, propertyID int64, number string, rent int64, available bool) models.Unit {
	return models.Unit{
		ID:                  ID(id),
		PropertyID:          ID(propertyID),
		UnitNumber:          number,
		Bedrooms:            models.AmountFromInt(2),
		Bathrooms:           models.AmountFromFloat(1.5),
		SquareFeet:          models.AmountFromInt(850),
		RentAmount:          Rent(rent),
		IsAvailable:         available,
		ListingTitle:        "Unit " + number,
		ListingPhotos:       []string{"https://cdn.example.test/" + number + "/1.jpg"},
		ListingAmenities:    []string{"parking", "laundry"},
		ListingLeaseTerm:    "12 months",
		ListingContactEmail: "leasing@example.test",
	}
}

func NewLease(id, unitID, tenantID int64, active bool, updatedAt string) models.Lease {
	return models.Lease{
		ID:              ID(id),
		UnitID:          ID(unitID),
		TenantID:        ID(tenantID),
		StartDate:       "2026-01-01",
		EndDate:         "2026-12-31",
		MonthlyRent:     Rent(1000),
		SecurityDeposit: Rent(500),
		IsActive:        active,
		CreatedAt:       "2025-12-15T09:00:00Z",
		UpdatedAt:       updatedAt,
	}
}

func NewTenant(id int64, first, last string) models.Tenant {
	return models.Tenant{
		ID:        ID(id),
		FirstName: first,
		LastName:  last,
		Email:     first + "@example.test",
	}
}

// WithLeaseStatus sets the unit's denormalized lease_status.
func WithLeaseStatus(u models.Unit, status string) models.Unit {
	u.LeaseStatus = &status
	return u
}

// WithCurrentTenant sets the unit's denormalized current_tenant reference.
func WithCurrentTenant(u models.Unit, tenantID int64) models.Unit {
	u.CurrentTenant = json.RawMessage(ID(tenantID).String())
	return u
}

// SamplePortfolio is property A (Maple Court) with U1 leased and U2 vacant,
// plus a commercial property B with one unit.
func SamplePortfolio() Portfolio {
	return Portfolio{
		Properties: []models.Property{
			NewProperty(1, "Maple Court", "Residential"),
			NewProperty(2, "Harbor Plaza", "Commercial"),
		},
		Units: []models.Unit{
			NewUnit(11, 1, "U1", 1000, false),
			NewUnit(12, 1, "U2", 1200, true),
			NewUnit(21, 2, "S1", 3000, true),
		},
		Leases: []models.Lease{
			NewLease(101, 11, 501, true, "2026-02-01T10:00:00Z"),
		},
		Tenants: []models.Tenant{
			NewTenant(501, "Ada", "Lovelace"),
			NewTenant(502, "Grace", "Hopper"),
		},
	}
}
