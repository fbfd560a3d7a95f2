package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListModels(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortUnauthorized(c, "Not authenticated")
		return
	}

	list, err := h.libraryService.ListModels(user.ID)
	if err != nil {
		h.logger.Error("Failed to list models", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, toModelResponses(list))
}

// UploadModel accepts one VRM file plus any number of animation clips in a
// single multipart request. Animation parts without a filename are skipped.
func (h *Handler) UploadModel(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortUnauthorized(c, "Not authenticated")
		return
	}

	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "name is required"})
		return
	}

	vrmFile, err := c.FormFile("vrm_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "vrm_file is required"})
		return
	}

	var vrmaFiles []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		vrmaFiles = form.File["vrma_files"]
	}

	src, err := vrmFile.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded model", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to upload model: " + err.Error()})
		return
	}

	model, err := h.libraryService.CreateModel(user.ID, name, vrmFile.Filename, src)
	src.Close()
	if err != nil {
		h.logger.Error("Failed to store model", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to upload model: " + err.Error()})
		return
	}

	resp := UploadResponse{
		Model: UploadedModel{
			ID:      model.ID,
			Name:    model.Name,
			VRMPath: model.VRMPath,
		},
		Animations: []UploadedAnimation{},
	}

	for _, header := range vrmaFiles {
		if header.Filename == "" {
			continue
		}

		clip, err := header.Open()
		if err != nil {
			h.logger.Error("Failed to open uploaded animation", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to upload model: " + err.Error()})
			return
		}

		animation, err := h.libraryService.CreateAnimation(user.ID, model.ID, header.Filename, clip)
		clip.Close()
		if err != nil {
			h.logger.Error("Failed to store animation", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to upload model: " + err.Error()})
			return
		}

		resp.Animations = append(resp.Animations, UploadedAnimation{
			ID:   animation.ID,
			Name: animation.AnimName,
			Path: animation.VRMAPath,
		})
	}

	h.auditService.LogAction(&user.ID, "UPLOAD_MODEL", model.Name, gin.H{"animations": len(resp.Animations)}, c.ClientIP())

	c.JSON(http.StatusOK, resp)
}
