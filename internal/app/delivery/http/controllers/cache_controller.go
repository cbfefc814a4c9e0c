package controllers

import (
	"net/http"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/models"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CacheController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewCacheController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *CacheController {
	return &CacheController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *CacheController) ClearAll(w http.ResponseWriter, r *http.Request) {
	err := ctrl.DashboardUsecase.ClearCache(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearCacheSuccessMessage, nil)
}

func (ctrl *CacheController) ClearByEndpoint(w http.ResponseWriter, r *http.Request) {
	endpoint := models.Endpoint(chi.URLParam(r, constvars.URLParamEndpoint))

	err := ctrl.DashboardUsecase.ClearCacheByEndpoint(r.Context(), []models.Endpoint{endpoint})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearCacheByEndpointSuccessMessage, map[string]string{
		constvars.URLParamEndpoint: endpoint.String(),
	})
}
