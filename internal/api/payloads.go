package api

import "github.com/poofware/pm-dashboard/internal/models"

// UnitPayload is the full-replace body of a unit update. The API treats it
// as authoritative for the whole record, so every field is always sent.
type UnitPayload struct {
	Property   models.ID     `json:"property" validate:"required"`
	UnitNumber string        `json:"unit_number"`
	Bedrooms   models.Amount `json:"bedrooms"`
	Bathrooms  models.Amount `json:"bathrooms"`
	SquareFeet models.Amount `json:"square_feet"`
	RentAmount models.Amount `json:"rent_amount"`

	IsAvailable bool `json:"is_available"`
	IsListed    bool `json:"is_listed"`

	ListingTitle         string        `json:"listing_title"`
	ListingDescription   string        `json:"listing_description"`
	ListingPhotos        []string      `json:"listing_photos"`
	ListingAmenities     []string      `json:"listing_amenities"`
	ListingAvailableDate *string       `json:"listing_available_date"`
	ListingDeposit       models.Amount `json:"listing_deposit"`
	ListingLeaseTerm     string        `json:"listing_lease_term"`
	ListingContactEmail  string        `json:"listing_contact_email"`
	ListingContactPhone  string        `json:"listing_contact_phone"`
}

// LeasePayload is the body of a lease creation.
type LeasePayload struct {
	Unit            models.ID     `json:"unit"`
	Tenant          models.ID     `json:"tenant"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	MonthlyRent     models.Amount `json:"monthly_rent"`
	SecurityDeposit models.Amount `json:"security_deposit"`
	IsActive        bool          `json:"is_active"`
}
