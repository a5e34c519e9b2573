package handlers

import (
	"net/http"

	response "nelly_tech/internal/adapter/http/dto/response"
	"nelly_tech/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Overview godoc
// @Summary Dashboard counters and recent activity
// @Tags dashboard
// @Security Bearer
// @Produce json
// @Success 200 {object} response.DashboardResponse
// @Failure 502 {object} pkg.HTTPError
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.usecase.Overview(c.Request.Context())
	if err != nil {
		respond(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardOverview(overview))
}
