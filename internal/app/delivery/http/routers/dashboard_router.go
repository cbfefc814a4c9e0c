package routers

import (
	"transactions-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, dashboardController *controllers.DashboardController) {
	router.Get("/", dashboardController.GetDashboard)
	router.Post("/filter", dashboardController.SelectFilter)
	router.Post("/more", dashboardController.LoadMore)
}
