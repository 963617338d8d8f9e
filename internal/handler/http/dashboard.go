package http

import (
	"net/http"
	"time"

	"github.com/h496242/hrm-backend-go/internal/domain/dashboard"
	"github.com/h496242/hrm-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) *DashboardHandlerImpl {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Stats implements DashboardHandler.
func (h *DashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	_, companyID, err := requestIdentity(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.Stats(r.Context(), companyID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
