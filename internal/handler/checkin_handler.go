package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elpescadoreric/angler-tournament-app/internal/service"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
	"github.com/elpescadoreric/angler-tournament-app/pkg/response"
)

// CheckInHandler wires HTTP endpoints to the check-in service.
type CheckInHandler struct {
	service *service.CheckInService
}

// NewCheckInHandler creates a new handler.
func NewCheckInHandler(svc *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{service: svc}
}

// RegisterForToday godoc
// @Summary Check in for today
// @Description Mark the authenticated angler present for the current tournament day
// @Tags Check-In
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /checkins/today [post]
func (h *CheckInHandler) RegisterForToday(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	result, err := h.service.RegisterForToday(c.Request.Context(), claims.Username)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// ListToday godoc
// @Summary List today's checked-in anglers
// @Tags Check-In
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /checkins/today [get]
func (h *CheckInHandler) ListToday(c *gin.Context) {
	names := h.service.ListToday(c.Request.Context())
	response.JSON(c, http.StatusOK, gin.H{"day": h.service.Today(), "anglers": names})
}
