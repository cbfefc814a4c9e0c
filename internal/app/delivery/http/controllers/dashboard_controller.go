package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"
	"transactions-client/internal/app/config"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/dto/requests"
	"transactions-client/internal/pkg/exceptions"
	"transactions-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
	InternalConfig   *config.InternalConfig
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase, internalConfig *config.InternalConfig) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
		InternalConfig:   internalConfig,
	}
}

// GetDashboard performs the initial load on the first call and returns the
// current state.
func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.DashboardUsecase.Start(ctx)
	if err != nil {
		ctrl.buildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, ctrl.DashboardUsecase.Snapshot())
}

func (ctrl *DashboardController) SelectFilter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	var request requests.SelectFilter
	err := utils.ParseJSONBody(r, &request)
	if err != nil {
		ctrl.Log.Error("DashboardController.SelectFilter error parsing body",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = utils.ValidateStruct(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	err = ctrl.DashboardUsecase.SelectEmployee(ctx, request.EmployeeID)
	if err != nil {
		ctrl.buildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectFilterSuccessMessage, ctrl.DashboardUsecase.Snapshot())
}

func (ctrl *DashboardController) LoadMore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	err := ctrl.DashboardUsecase.LoadMore(ctx)
	if err != nil {
		ctrl.buildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoadMoreTransactionsSuccessMessage, ctrl.DashboardUsecase.Snapshot())
}

func (ctrl *DashboardController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}

func (ctrl *DashboardController) buildErrorResponse(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) {
			err = exceptions.ErrServerDeadlineExceeded(err)
		}
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
