package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"riskscreen_backend/internal/services"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired, adminOnly gin.HandlerFunc) {
	rg.GET("/dashboard", authRequired, adminOnly, h.Overview)
}

// Overview returns the admin dashboard aggregates.
func (h *DashboardHandler) Overview(c *gin.Context) {
	db := h.GetDB(c)

	overview, err := h.dashboardService.Overview(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}
