package services

import (
	"github.com/poofware/pm-dashboard/internal/api"
	"github.com/poofware/pm-dashboard/internal/dtos"
	"github.com/poofware/pm-dashboard/internal/models"
)

// BuildUnitPayload merges the known unit record with the overrides into a
// complete update body. Sequences default to empty and numbers to 0 so the
// upstream record is never partially blanked. Amount overrides are expected
// to be valid; the coordinator rejects malformed ones first.
func BuildUnitPayload(u models.Unit, o dtos.UnitOverrides) api.UnitPayload {
	p := api.UnitPayload{
		Property:             u.PropertyID,
		UnitNumber:           u.UnitNumber,
		Bedrooms:             u.Bedrooms.Filled(),
		Bathrooms:            u.Bathrooms.Filled(),
		SquareFeet:           u.SquareFeet.Filled(),
		RentAmount:           u.RentAmount.Filled(),
		IsAvailable:          u.IsAvailable,
		IsListed:             u.IsListed,
		ListingTitle:         u.ListingTitle,
		ListingDescription:   u.ListingDescription,
		ListingPhotos:        cloneStrings(u.ListingPhotos),
		ListingAmenities:     uniqueStrings(u.ListingAmenities),
		ListingAvailableDate: cloneStringPtr(u.ListingAvailableDate),
		ListingDeposit:       u.ListingDeposit,
		ListingLeaseTerm:     u.ListingLeaseTerm,
		ListingContactEmail:  u.ListingContactEmail,
		ListingContactPhone:  u.ListingContactPhone,
	}

	if o.UnitNumber != nil {
		p.UnitNumber = *o.UnitNumber
	}
	if o.Bedrooms != nil {
		p.Bedrooms = o.Bedrooms.Filled()
	}
	if o.Bathrooms != nil {
		p.Bathrooms = o.Bathrooms.Filled()
	}
	if o.SquareFeet != nil {
		p.SquareFeet = o.SquareFeet.Filled()
	}
	if o.RentAmount != nil {
		p.RentAmount = o.RentAmount.Filled()
	}
	if o.IsAvailable != nil {
		p.IsAvailable = *o.IsAvailable
	}
	if o.IsListed != nil {
		p.IsListed = *o.IsListed
	}
	if o.ListingTitle != nil {
		p.ListingTitle = *o.ListingTitle
	}
	if o.ListingDescription != nil {
		p.ListingDescription = *o.ListingDescription
	}
	if o.ListingPhotos != nil {
		p.ListingPhotos = cloneStrings(*o.ListingPhotos)
	}
	if o.ListingAmenities != nil {
		p.ListingAmenities = uniqueStrings(*o.ListingAmenities)
	}
	if o.ListingAvailableDate.Set {
		p.ListingAvailableDate = cloneStringPtr(o.ListingAvailableDate.Value)
	}
	if o.ListingLeaseTerm != nil {
		p.ListingLeaseTerm = *o.ListingLeaseTerm
	}
	if o.ListingDeposit != nil {
		p.ListingDeposit = *o.ListingDeposit
	}
	if o.ListingContactEmail != nil {
		p.ListingContactEmail = *o.ListingContactEmail
	}
	if o.ListingContactPhone != nil {
		p.ListingContactPhone = *o.ListingContactPhone
	}
	return p
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// uniqueStrings keeps the first occurrence of each amenity.
func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
