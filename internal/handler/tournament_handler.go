package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elpescadoreric/angler-tournament-app/internal/service"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
	"github.com/elpescadoreric/angler-tournament-app/pkg/response"
)

// TournamentHandler serves season info and wristband administration.
type TournamentHandler struct {
	service *service.TournamentService
}

// NewTournamentHandler creates a new handler.
func NewTournamentHandler(svc *service.TournamentService) *TournamentHandler {
	return &TournamentHandler{service: svc}
}

// Info godoc
// @Summary Tournament information
// @Description Season window, divisions, species and weigh-in venues
// @Tags Tournament
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tournament [get]
func (h *TournamentHandler) Info(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Info(c.Request.Context()))
}

// SetWristband godoc
// @Summary Set today's wristband color
// @Tags Tournament
// @Accept json
// @Produce json
// @Success 204 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /tournament/wristband [put]
func (h *TournamentHandler) SetWristband(c *gin.Context) {
	var payload struct {
		Color string `json:"color" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "wristband color required"))
		return
	}

	if err := h.service.SetWristbandColor(c.Request.Context(), payload.Color); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
