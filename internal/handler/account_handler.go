package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elpescadoreric/angler-tournament-app/internal/service"
	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
	"github.com/elpescadoreric/angler-tournament-app/pkg/response"
)

// AccountHandler wires HTTP endpoints to the account service.
type AccountHandler struct {
	service *service.AccountService
}

// NewAccountHandler creates a new handler.
func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{service: svc}
}

// Register godoc
// @Summary Register a new account
// @Description Create an angler or captain account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body service.RegisterRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /accounts [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	account, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, account.Info())
}

// Me godoc
// @Summary Get current account
// @Tags Accounts
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /accounts/me [get]
func (h *AccountHandler) Me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	account, err := h.service.Get(c.Request.Context(), claims.Username)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, account.Info())
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Merge the supplied fields into the caller's profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body service.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /accounts/me/profile [patch]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}

	account, err := h.service.UpdateProfile(c.Request.Context(), claims.Username, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, account.Info())
}

// AuditTrail godoc
// @Summary List the audit trail
// @Description Tournament director view of auth and catch state changes
// @Tags Accounts
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /audit [get]
func (h *AccountHandler) AuditTrail(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.AuditTrail(c.Request.Context()))
}

// UploadCredentials godoc
// @Summary Upload captain credentials
// @Description Record the Merchant Mariner credential and activate the captain
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body service.UploadCredentialsRequest true "Credentials payload"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /accounts/me/credentials [put]
func (h *AccountHandler) UploadCredentials(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.UploadCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid credentials payload"))
		return
	}

	account, err := h.service.UploadCaptainCredentials(c.Request.Context(), claims.Username, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, account.Info())
}
