package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BiniyamTG/Injera-Beyond/utils"
)

type photoUploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// uploadPhoto stores a base64 image in S3 and appends the resulting URL to the
// entry via the supplied service callback.
func uploadPhoto(c *gin.Context, uploader *utils.S3Uploader, keyPrefix string, addPhoto func(ctx context.Context, id, url string) error) {
	if uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Photo upload is not configured"})
		return
	}

	var req photoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := uploader.UploadBase64Image(c.Request.Context(), req.ImageBase64, keyPrefix)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	if err := addPhoto(c.Request.Context(), c.Param("id"), url); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
