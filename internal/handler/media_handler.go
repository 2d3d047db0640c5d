package handler

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appErrors "github.com/elpescadoreric/angler-tournament-app/pkg/errors"
	"github.com/elpescadoreric/angler-tournament-app/pkg/response"
	"github.com/elpescadoreric/angler-tournament-app/pkg/storage"
)

// MediaHandler accepts evidence uploads and serves signed download links.
// It is a thin wrapper over the evidence store; the workflow engine only
// ever sees the opaque refs it hands out.
type MediaHandler struct {
	store          *storage.EvidenceStore
	signer         *storage.LinkSigner
	maxUploadBytes int64
}

// NewMediaHandler creates a new handler.
func NewMediaHandler(store *storage.EvidenceStore, signer *storage.LinkSigner, maxUploadBytes int64) *MediaHandler {
	return &MediaHandler{store: store, signer: signer, maxUploadBytes: maxUploadBytes}
}

// Upload godoc
// @Summary Upload an evidence clip
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Evidence clip"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /media [post]
func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "evidence file required"))
		return
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "evidence file exceeds the upload limit"))
		return
	}

	src, err := file.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload"))
		return
	}
	defer src.Close() //nolint:errcheck

	ref := uuid.NewString() + filepath.Ext(file.Filename)
	size, err := h.store.SaveStream(ref, src)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store evidence"))
		return
	}

	response.Created(c, gin.H{"ref": ref, "size_bytes": size})
}

// CreateLink godoc
// @Summary Create a signed evidence download link
// @Tags Media
// @Produce json
// @Param ref path string true "Evidence ref"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /media/{ref}/link [post]
func (h *MediaHandler) CreateLink(c *gin.Context) {
	ref := c.Param("ref")
	if h.store.Size(ref) == 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "evidence clip not found"))
		return
	}

	token, expiresAt, err := h.signer.Generate(ref)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign link"))
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"url":        fmt.Sprintf("/media/download?token=%s", token),
		"expires_at": expiresAt,
	})
}

// Download godoc
// @Summary Download an evidence clip by signed token
// @Tags Media
// @Produce octet-stream
// @Param token query string true "Signed token"
// @Success 200 {file} binary
// @Failure 401 {object} response.Envelope
// @Router /media/download [get]
func (h *MediaHandler) Download(c *gin.Context) {
	token := c.Query("token")
	ref, _, err := h.signer.Parse(token)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired link"))
		return
	}

	file, err := h.store.Open(ref)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "evidence clip not found"))
		return
	}
	defer file.Close() //nolint:errcheck

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ref))
	c.File(file.Name())
}
