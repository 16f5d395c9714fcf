package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stefanristic40/golden-eye-api/internal/api/httperr"
)

type ImageHandler struct {
	images ObjectStore
}

func NewImageHandler(images ObjectStore) *ImageHandler {
	return &ImageHandler{images: images}
}

// Get serves a stored thumbnail by its generated filename.
func (h *ImageHandler) Get(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" || strings.ContainsAny(filename, "/\\") || strings.Contains(filename, "..") {
		httperr.Respond(c, httperr.New(httperr.InvalidInput, "invalid filename"))
		return
	}

	data, err := h.images.GetObject(c.Request.Context(), thumbnailPrefix+filename)
	if err != nil {
		httperr.Respond(c, httperr.New(httperr.NotFound, "image not found"))
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
