package dtos

import "github.com/poofware/pm-dashboard/internal/models"

// UnitOverrides are the fields an operator changed on a unit. Nil means
// "keep the known value"; the full record is always sent upstream. The
// available date distinguishes absent (keep) from null (clear).
type UnitOverrides struct {
	UnitNumber  *string        `json:"unit_number,omitempty"`
	Bedrooms    *models.Amount `json:"bedrooms,omitempty"`
	Bathrooms   *models.Amount `json:"bathrooms,omitempty"`
	SquareFeet  *models.Amount `json:"square_feet,omitempty"`
	RentAmount  *models.Amount `json:"rent_amount,omitempty"`
	IsAvailable *bool          `json:"is_available,omitempty"`
	IsListed    *bool          `json:"is_listed,omitempty"`

	ListingTitle         *string               `json:"listing_title,omitempty"`
	ListingDescription   *string               `json:"listing_description,omitempty"`
	ListingPhotos        *[]string             `json:"listing_photos,omitempty"`
	ListingAmenities     *[]string             `json:"listing_amenities,omitempty"`
	ListingAvailableDate models.OptionalString `json:"listing_available_date"`
	ListingLeaseTerm     *string               `json:"listing_lease_term,omitempty"`
	ListingDeposit       *models.Amount        `json:"listing_deposit,omitempty"`
	ListingContactEmail  *string               `json:"listing_contact_email,omitempty"`
	ListingContactPhone  *string               `json:"listing_contact_phone,omitempty"`
}

// CreateLeaseRequest is the lease form. Tenant and both dates are required
// before anything is sent; rent defaults to the unit's rent, deposit to 0,
// is_active to true.
type CreateLeaseRequest struct {
	UnitID          models.ID      `json:"unit" validate:"required"`
	TenantID        models.ID      `json:"tenant" validate:"required"`
	StartDate       string         `json:"start_date" validate:"required"`
	EndDate         string         `json:"end_date" validate:"required"`
	MonthlyRent     *models.Amount `json:"monthly_rent,omitempty"`
	SecurityDeposit *models.Amount `json:"security_deposit,omitempty"`
	IsActive        *bool          `json:"is_active,omitempty"`
}

// MalformedAmounts names the numeric overrides that were supplied but did
// not parse.
func (o UnitOverrides) MalformedAmounts() []string {
	return malformed([]namedAmount{
		{"bedrooms", o.Bedrooms},
		{"bathrooms", o.Bathrooms},
		{"square_feet", o.SquareFeet},
		{"rent_amount", o.RentAmount},
		{"listing_deposit", o.ListingDeposit},
	})
}

// MalformedAmounts names the lease amounts that were supplied but did not
// parse. Absent or null amounts fall back to their defaults.
func (r CreateLeaseRequest) MalformedAmounts() []string {
	return malformed([]namedAmount{
		{"monthly_rent", r.MonthlyRent},
		{"security_deposit", r.SecurityDeposit},
	})
}

type namedAmount struct {
	name  string
	value *models.Amount
}

func malformed(fields []namedAmount) []string {
	var out []string
	for _, f := range fields {
		if f.value != nil && !f.value.Valid {
			out = append(out, f.name)
		}
	}
	return out
}

type MutationResponse struct {
	Message string `json:"message"`
}
