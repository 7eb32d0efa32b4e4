package routes

const (
	// Health
	Health = "/health"

	// Portfolio
	Portfolio       = "/api/v1/portfolio"
	PortfolioReload = "/api/v1/portfolio/reload"

	// Drawer navigation
	Drawer             = "/api/v1/drawer"
	DrawerOpenProperty = "/api/v1/drawer/property/{id}"
	DrawerOpenUnit     = "/api/v1/drawer/unit/{id}"
	DrawerBack         = "/api/v1/drawer/back"

	// Mutations
	Property          = "/api/v1/properties/{id}"
	Unit              = "/api/v1/units/{id}"
	UnitToggleListing = "/api/v1/units/{id}/toggle-listing"
	Leases            = "/api/v1/leases"

	Notification = "/api/v1/notification"
)
