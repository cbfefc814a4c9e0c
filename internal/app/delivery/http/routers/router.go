package routers

import (
	"fmt"
	"strings"
	"time"
	"transactions-client/internal/app/config"
	"transactions-client/internal/app/delivery/http/controllers"
	"transactions-client/internal/app/delivery/http/middlewares"
	"transactions-client/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// SetupRoutes mounts the dashboard and cache routes under
// /<prefix>/<version>. backendController is optional; when set the backend
// REST contract is served under /backend.
func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	dashboardController *controllers.DashboardController,
	cacheController *controllers.CacheController,
	backendController *controllers.BackendController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))
	versionPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.Version, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceDashboard, func(r chi.Router) {
				attachDashboardRoutes(r, dashboardController)
			})

			r.Route("/"+constvars.ResourceCache, func(r chi.Router) {
				attachCacheRoutes(r, cacheController)
			})
		})
	})

	if backendController != nil {
		router.Route("/"+constvars.ResourceBackend, func(r chi.Router) {
			attachBackendRoutes(r, backendController)
		})
	}
}
