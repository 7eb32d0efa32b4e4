package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/poofware/pm-dashboard/internal/app"
	"github.com/poofware/pm-dashboard/internal/routes"
)

// NewRouter registers every dashboard endpoint and wraps it in CORS.
func NewRouter(application *app.App) http.Handler {
	healthCtrl := NewHealthController(application)
	dashCtrl := NewDashboardController(application.DashboardService)

	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.Portfolio, dashCtrl.GetPortfolioHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PortfolioReload, dashCtrl.ReloadHandler).Methods(http.MethodPost)

	router.HandleFunc(routes.DrawerOpenProperty, dashCtrl.OpenPropertyHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.DrawerOpenUnit, dashCtrl.OpenUnitHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.DrawerBack, dashCtrl.BackHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Drawer, dashCtrl.CloseDrawerHandler).Methods(http.MethodDelete)

	router.HandleFunc(routes.Property, dashCtrl.DeletePropertyHandler).Methods(http.MethodDelete)
	router.HandleFunc(routes.Unit, dashCtrl.UpdateUnitHandler).Methods(http.MethodPatch)
	router.HandleFunc(routes.UnitToggleListing, dashCtrl.ToggleListingHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.Leases, dashCtrl.CreateLeaseHandler).Methods(http.MethodPost)

	router.HandleFunc(routes.Notification, dashCtrl.DismissNotificationHandler).Methods(http.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{application.Config.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
	})
	return c.Handler(router)
}
