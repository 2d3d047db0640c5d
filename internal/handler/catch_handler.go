package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elpescadoreric/angler-tournament-app/internal/service"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
	"github.com/elpescadoreric/angler-tournament-app/pkg/response"
)

// CatchHandler wires HTTP endpoints to the catch workflow service.
type CatchHandler struct {
	service *service.CatchService
}

// NewCatchHandler creates a new handler.
func NewCatchHandler(svc *service.CatchService) *CatchHandler {
	return &CatchHandler{service: svc}
}

// Submit godoc
// @Summary Submit a catch
// @Description Submit a bag of up to three fish for an angler, certified by the authenticated captain
// @Tags Catches
// @Accept json
// @Produce json
// @Param payload body service.SubmitCatchRequest true "Catch payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /catches [post]
func (h *CatchHandler) Submit(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.SubmitCatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid catch payload"))
		return
	}

	entry, err := h.service.SubmitCatch(c.Request.Context(), claims.Username, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, entry)
}

// Get godoc
// @Summary Get a catch entry
// @Tags Catches
// @Produce json
// @Param id path string true "Catch ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /catches/{id} [get]
func (h *CatchHandler) Get(c *gin.Context) {
	entry, err := h.service.Get(c.Request.Context(), claimsFromContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, entry)
}

// ListPending godoc
// @Summary List the caller's pending catch entries
// @Tags Catches
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catches/pending [get]
func (h *CatchHandler) ListPending(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	entries := h.service.ListPending(c.Request.Context(), claims.Username)
	response.JSON(c, http.StatusOK, entries)
}

// Approve godoc
// @Summary Approve a pending catch
// @Description Only the certifying captain may approve, exactly once
// @Tags Catches
// @Produce json
// @Param id path string true "Catch ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /catches/{id}/approve [post]
func (h *CatchHandler) Approve(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	entry, err := h.service.ApproveCatch(c.Request.Context(), claims.Username, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, entry)
}

// Reject godoc
// @Summary Reject a pending catch
// @Description Only the certifying captain may reject, exactly once
// @Tags Catches
// @Produce json
// @Param id path string true "Catch ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /catches/{id}/reject [post]
func (h *CatchHandler) Reject(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	entry, err := h.service.RejectCatch(c.Request.Context(), claims.Username, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, entry)
}
