package routers

import (
	"transactions-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBackendRoutes(router chi.Router, backendController *controllers.BackendController) {
	router.Get("/{endpoint}", backendController.Fetch)
}
