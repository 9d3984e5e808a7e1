package controllers

import (
	"dinkys-shop/models"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	blob *models.CloudinaryService
}

func NewUploadController(blob *models.CloudinaryService) *UploadController {
	return &UploadController{blob: blob}
}

// @Summary Upload product image
// @Description Upload an image to blob storage; returns its public URL and blob ID (Admin)
// @Tags Admin - Upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/upload [post]
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	if ctrl.blob == nil {
		c.JSON(503, gin.H{"success": false, "message": "Blob storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "No file provided"})
		return
	}

	if err := ctrl.blob.ValidateImageFile(fileHeader); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to read file"})
		return
	}
	defer file.Close()

	url, blobID, err := ctrl.blob.UploadImage(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to upload image: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Image uploaded",
		"data":    gin.H{"url": url, "blob_id": blobID},
	})
}
