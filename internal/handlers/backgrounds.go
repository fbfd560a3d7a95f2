package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"vrmhub/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) UploadBackground(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortUnauthorized(c, "Not authenticated")
		return
	}

	header, err := c.FormFile("background_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "background_file is required"})
		return
	}

	src, err := header.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded background", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to upload background: " + err.Error()})
		return
	}
	defer src.Close()

	background, err := h.libraryService.CreateBackground(user.ID, header.Filename, src)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFileType) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Unsupported file type. Please upload a JPG, PNG, or GIF image."})
			return
		}
		h.logger.Error("Failed to store background", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to upload background: " + err.Error()})
		return
	}

	h.auditService.LogAction(&user.ID, "UPLOAD_BACKGROUND", background.Filename, nil, c.ClientIP())

	c.JSON(http.StatusOK, toBackgroundResponse(*background))
}

func (h *Handler) ListBackgrounds(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortUnauthorized(c, "Not authenticated")
		return
	}

	list, err := h.libraryService.ListBackgrounds(user.ID)
	if err != nil {
		h.logger.Error("Failed to list backgrounds", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, toBackgroundResponses(list))
}

func (h *Handler) DeleteBackground(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortUnauthorized(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid background id"})
		return
	}

	deleted, err := h.libraryService.DeleteBackground(user.ID, uint(id))
	if err != nil {
		h.logger.Error("Failed to delete background", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Background not found"})
		return
	}

	h.auditService.LogAction(&user.ID, "DELETE_BACKGROUND", c.Param("id"), nil, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Background deleted"})
}
