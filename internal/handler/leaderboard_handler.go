package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elpescadoreric/angler-tournament-app/internal/models"
	"github.com/elpescadoreric/angler-tournament-app/internal/service"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
	"github.com/elpescadoreric/angler-tournament-app/pkg/response"
)

// LeaderboardHandler wires HTTP endpoints to the leaderboard service.
type LeaderboardHandler struct {
	service        *service.LeaderboardService
	exportsEnabled bool
}

// NewLeaderboardHandler creates a new handler.
func NewLeaderboardHandler(svc *service.LeaderboardService, exportsEnabled bool) *LeaderboardHandler {
	return &LeaderboardHandler{service: svc, exportsEnabled: exportsEnabled}
}

// Get godoc
// @Summary Division leaderboard
// @Description Point-in-time top-20 standings for a division
// @Tags Leaderboard
// @Produce json
// @Param division path string true "Division (Pelagic or Reef)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /leaderboard/{division} [get]
func (h *LeaderboardHandler) Get(c *gin.Context) {
	rows, err := h.service.Get(c.Request.Context(), models.Division(c.Param("division")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, rows)
}

// Export godoc
// @Summary Export division standings
// @Description Download the standings sheet as CSV or PDF
// @Tags Leaderboard
// @Produce octet-stream
// @Param division path string true "Division (Pelagic or Reef)"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /leaderboard/{division}/export [get]
func (h *LeaderboardHandler) Export(c *gin.Context) {
	if !h.exportsEnabled {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled"))
		return
	}

	division := models.Division(c.Param("division"))
	format := c.DefaultQuery("format", "csv")

	var (
		data        []byte
		err         error
		contentType string
	)
	switch format {
	case "csv":
		data, err = h.service.ExportCSV(c.Request.Context(), division)
		contentType = "text/csv"
	case "pdf":
		data, err = h.service.ExportPDF(c.Request.Context(), division)
		contentType = "application/pdf"
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("standings-%s.%s", division, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
