package routers

import (
	"transactions-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCacheRoutes(router chi.Router, cacheController *controllers.CacheController) {
	router.Delete("/", cacheController.ClearAll)
	router.Delete("/{endpoint}", cacheController.ClearByEndpoint)
}
