package controllers

import (
	"net/http"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/models"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/exceptions"
	"transactions-client/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BackendController serves a TransactionsAPI over the REST contract the HTTP
// client speaks, so the server can act as its own backend.
type BackendController struct {
	Log *zap.Logger
	API contracts.TransactionsAPI
}

func NewBackendController(logger *zap.Logger, api contracts.TransactionsAPI) *BackendController {
	return &BackendController{
		Log: logger,
		API: api,
	}
}

func (ctrl *BackendController) Fetch(w http.ResponseWriter, r *http.Request) {
	endpoint := models.Endpoint(chi.URLParam(r, constvars.URLParamEndpoint))

	var params interface{}
	switch endpoint {
	case models.EndpointPaginatedTransactions:
		page, err := utils.ParsePageQuery(r)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		params = models.PaginatedRequestParams{Page: page}
	case models.EndpointTransactionsByEmployee:
		params = models.TransactionsByEmployeeParams{
			EmployeeID: r.URL.Query().Get(constvars.URLQueryParamEmployeeID),
		}
	case models.EndpointEmployees:
	default:
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownEndpoint(nil, endpoint.String()))
		return
	}

	body, err := ctrl.API.Fetch(r.Context(), endpoint, params)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawJSONResponse(w, constvars.StatusOK, body)
}
