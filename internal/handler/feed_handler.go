package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elpescadoreric/angler-tournament-app/internal/service"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
	"github.com/elpescadoreric/angler-tournament-app/pkg/response"
)

// FeedHandler wires HTTP endpoints to the social feed service.
type FeedHandler struct {
	service *service.FeedService
}

// NewFeedHandler creates a new handler.
func NewFeedHandler(svc *service.FeedService) *FeedHandler {
	return &FeedHandler{service: svc}
}

// Create godoc
// @Summary Post to the social feed
// @Tags Feed
// @Accept json
// @Produce json
// @Param payload body service.CreatePostRequest true "Post payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /feed [post]
func (h *FeedHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid post payload"))
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), claims.Username, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, post)
}

// List godoc
// @Summary Latest feed posts
// @Description The 20 most recent posts, newest first
// @Tags Feed
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /feed [get]
func (h *FeedHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.ListPosts(c.Request.Context()))
}
