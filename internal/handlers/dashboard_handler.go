package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/httpresp"
	"github.com/BruksfildServices01/crm-api/internal/middleware"
	ucDashboard "github.com/BruksfildServices01/crm-api/internal/usecase/dashboard"
)

type DashboardHandler struct {
	stats *ucDashboard.GetStats
}

func NewDashboardHandler(stats *ucDashboard.GetStats) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	s, err := h.stats.Execute(c.Request.Context(), middleware.PrincipalID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}
