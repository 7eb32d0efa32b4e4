package dtos

import (
	"time"

	"github.com/poofware/pm-dashboard/internal/models"
	"github.com/poofware/pm-dashboard/internal/notification"
	"github.com/poofware/pm-dashboard/internal/portfolio"
)

/*──────────────────────────────────────────────────────────
  Portfolio view – one render pass over the current snapshot
──────────────────────────────────────────────────────────*/
type PortfolioView struct {
	Loading         bool       `json:"loading"`
	LoadError       string     `json:"load_error,omitempty"`
	SnapshotVersion uint64     `json:"snapshot_version"`
	LoadedAt        *time.Time `json:"loaded_at,omitempty"`

	Filter     Filter          `json:"filter"`
	TypeLabels []string        `json:"type_labels"`
	Stats      portfolio.Stats `json:"stats"`
	Properties []PropertyRow   `json:"properties"`

	Drawer       Drawer                     `json:"drawer"`
	Busy         BusyFlags                  `json:"busy"`
	Notification *notification.Notification `json:"notification,omitempty"`
}

type Filter struct {
	Search string `json:"search"`
	Type   string `json:"type"`
}

type BusyFlags struct {
	DeleteProperty bool `json:"delete_property"`
	UpdateUnit     bool `json:"update_unit"`
	ToggleListing  bool `json:"toggle_listing"`
	CreateLease    bool `json:"create_lease"`
}

type PropertyRow struct {
	ID           models.ID       `json:"id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	PropertyType string          `json:"property_type"`
	Description  string          `json:"description,omitempty"`
	Stats        portfolio.Stats `json:"stats"`
}

func NewPropertyRow(p *models.Property, stats portfolio.Stats) PropertyRow {
	return PropertyRow{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.AddressLine(),
		PropertyType: p.DisplayType(),
		Description:  p.Description,
		Stats:        stats,
	}
}

/*──────────────────────────────────────────────────────────
  Drawer – property → unit → lease
──────────────────────────────────────────────────────────*/
type Drawer struct {
	Mode       string       `json:"mode"`
	PropertyID *models.ID   `json:"property_id,omitempty"`
	UnitID     *models.ID   `json:"unit_id,omitempty"`
	Property   *PropertyRow `json:"property,omitempty"`
	Units      []UnitRow    `json:"units,omitempty"`
	Unit       *UnitDetail  `json:"unit,omitempty"`
}

type UnitRow struct {
	ID          models.ID     `json:"id"`
	UnitNumber  string        `json:"unit_number"`
	Bedrooms    models.Amount `json:"bedrooms"`
	Bathrooms   models.Amount `json:"bathrooms"`
	SquareFeet  models.Amount `json:"square_feet"`
	RentAmount  models.Amount `json:"rent_amount"`
	IsAvailable bool          `json:"is_available"`
	IsListed    bool          `json:"is_listed"`
	Occupied    bool          `json:"occupied"`
	TenantName  string        `json:"tenant_name,omitempty"`
}

type UnitDetail struct {
	UnitRow

	ListingTitle         string        `json:"listing_title"`
	ListingDescription   string        `json:"listing_description"`
	ListingPhotos        []string      `json:"listing_photos"`
	ListingAmenities     []string      `json:"listing_amenities"`
	ListingAvailableDate *string       `json:"listing_available_date"`
	ListingLeaseTerm     string        `json:"listing_lease_term"`
	ListingDeposit       models.Amount `json:"listing_deposit"`
	ListingContactEmail  string        `json:"listing_contact_email"`
	ListingContactPhone  string        `json:"listing_contact_phone"`

	CurrentLease *LeaseDetail `json:"current_lease,omitempty"`
}

type LeaseDetail struct {
	ID              models.ID     `json:"id"`
	TenantID        models.ID     `json:"tenant"`
	TenantName      string        `json:"tenant_name"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	MonthlyRent     models.Amount `json:"monthly_rent"`
	SecurityDeposit models.Amount `json:"security_deposit"`
	IsActive        bool          `json:"is_active"`
}
