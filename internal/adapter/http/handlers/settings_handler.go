package handlers

import (
	"net/http"
	"time"

	response "nelly_tech/internal/adapter/http/dto/response"
	"nelly_tech/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves read-only configuration the site and the back
// office need to render forms.
type SettingsHandler struct {
	policy         entities.TransitionPolicy
	submitInterval time.Duration
	whatsAppNumber string
}

func NewSettingsHandler(policy entities.TransitionPolicy, submitInterval time.Duration, whatsAppNumber string) *SettingsHandler {
	return &SettingsHandler{policy: policy, submitInterval: submitInterval, whatsAppNumber: whatsAppNumber}
}

// PhoneMask godoc
// @Summary Mask a phone number as the user types
// @Tags public
// @Produce json
// @Param value query string false "Raw phone input"
// @Success 200 {object} response.PhoneMaskResponse
// @Router /phone-mask [get]
func (h *SettingsHandler) PhoneMask(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPhone(c.Query("value")))
}

// Settings godoc
// @Summary Status options and intake settings
// @Tags settings
// @Security Bearer
// @Produce json
// @Success 200 {object} response.SettingsResponse
// @Router /admin/settings [get]
func (h *SettingsHandler) Settings(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewSettingsResponse(h.policy, int(h.submitInterval/time.Second), h.whatsAppNumber))
}
