package models

// Lease binds a tenant to a unit for a date range.
type Lease struct {
	ID              ID     `json:"id"`
	UnitID          ID     `json:"unit"`
	TenantID        ID     `json:"tenant"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	MonthlyRent     Amount `json:"monthly_rent"`
	SecurityDeposit Amount `json:"security_deposit"`
	IsActive        bool   `json:"is_active"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`

	TenantDetail *Tenant `json:"tenant_detail,omitempty"`
}
