package models

import (
	"bytes"
	"encoding/json"
)

// LeaseStatusActive is the only lease_status value that marks a unit occupied.
const LeaseStatusActive = "active"

// Unit is a rentable space inside a property.
type Unit struct {
	ID         ID     `json:"id"`
	PropertyID ID     `json:"property"`
	UnitNumber string `json:"unit_number"`
	Bedrooms   Amount `json:"bedrooms"`
	Bathrooms  Amount `json:"bathrooms"`
	SquareFeet Amount `json:"square_feet"`
	RentAmount Amount `json:"rent_amount"`

	IsAvailable bool `json:"is_available"`
	IsListed    bool `json:"is_listed"`

	ListingTitle         string   `json:"listing_title"`
	ListingDescription   string   `json:"listing_description"`
	ListingPhotos        []string `json:"listing_photos"`
	ListingAmenities     []string `json:"listing_amenities"`
	ListingAvailableDate *string  `json:"listing_available_date"`
	ListingLeaseTerm     string   `json:"listing_lease_term"`
	ListingDeposit       Amount   `json:"listing_deposit"`
	ListingContactEmail  string   `json:"listing_contact_email"`
	ListingContactPhone  string   `json:"listing_contact_phone"`

	// Denormalized by the API; any of them may be absent.
	LeaseStatus         *string         `json:"lease_status,omitempty"`
	CurrentTenant       json.RawMessage `json:"current_tenant,omitempty"`
	CurrentTenantDetail *Tenant         `json:"current_tenant_detail,omitempty"`
}

// HasCurrentTenant reports whether the API sent a non-null current_tenant.
func (u *Unit) HasCurrentTenant() bool {
	b := bytes.TrimSpace(u.CurrentTenant)
	return len(b) > 0 && !bytes.Equal(b, []byte("null"))
}

// HasActiveLeaseStatus reports an exact, case-sensitive "active" lease_status.
func (u *Unit) HasActiveLeaseStatus() bool {
	return u.LeaseStatus != nil && *u.LeaseStatus == LeaseStatusActive
}
