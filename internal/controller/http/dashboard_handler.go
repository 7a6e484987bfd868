package http

import (
	"net/http"

	"vidtube/internal/usecase"
	"vidtube/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// GetChannelStats godoc
// @Summary      Get channel stats
// @Description  Totals for the authenticated user's channel: videos, views, subscribers, likes
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.ChannelStats
// @Failure      500  {object}  map[string]string
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetChannelStats(c *gin.Context) {
	stats, err := h.dashboardUseCase.GetChannelStats(c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetChannelVideos godoc
// @Summary      Get channel videos
// @Description  All of the authenticated user's videos, including unpublished ones
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Page number"
// @Param        limit query int false "Page size (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Router       /dashboard/videos [get]
func (h *DashboardHandler) GetChannelVideos(c *gin.Context) {
	result, err := h.dashboardUseCase.GetChannelVideos(c.GetString("user_id"), pageRequest(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
