package handler

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/homehaven/homehaven/backend/go-services/internal/property/service"
	"github.com/homehaven/homehaven/backend/go-services/internal/storage"
	"github.com/homehaven/homehaven/backend/go-services/pkg/logger"
)

// RegisterPhotoRoutes wires the listing-photo upload endpoint. Only
// registered when object storage is configured; without it listings keep
// using caller-provided image URLs.
func RegisterPhotoRoutes(r *gin.Engine, svc service.Service, store *storage.PhotoStorage) {
	h := &photoHandler{svc: svc, store: store}
	r.POST("/properties/:id/image", h.Upload)
}

type photoHandler struct {
	svc   service.Service
	store *storage.PhotoStorage
}

// Upload stores the multipart "image" file in the photo bucket and points
// the listing's image at it. Responds with the updated record.
func (h *photoHandler) Upload(c *gin.Context) {
	id := c.Param("id")

	// reject unknown ids before accepting the upload
	if _, err := h.svc.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}
	defer f.Close()

	key := id + "/" + uuid.NewString() + filepath.Ext(fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if err := h.store.UploadPhoto(c.Request.Context(), key, f, fh.Size, contentType); err != nil {
		logger.Errorf("upload photo for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	p, err := h.svc.SetImage(c.Request.Context(), id, h.store.PhotoURL(key))
	if err != nil {
		logger.Errorf("set image for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	c.JSON(http.StatusOK, p)
}
