package controllers

import (
	"net/http"

	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/upload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadController forwards images to the media host. Stateless.
type UploadController struct {
	uploader upload.Uploader
	log      *zap.Logger
}

func NewUploadController(uploader upload.Uploader, log *zap.Logger) *UploadController {
	return &UploadController{uploader: uploader, log: log}
}

// UploadByLinkInput carries the remote image URL to ingest.
type UploadByLinkInput struct {
	Link string `json:"link"`
}

// UploadByLink has the media host fetch a remote image and returns its
// public URL.
func (uc *UploadController) UploadByLink(c *gin.Context) {
	var input UploadByLinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageURL, err := uc.uploader.UploadFromURL(c.Request.Context(), input.Link)
	if err != nil {
		uc.log.Error("upload by link failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error uploading image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}

// Upload streams a multipart image (field "image") to the media host and
// returns its public URL.
func (uc *UploadController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		uc.log.Error("upload: open multipart file failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error uploading image"})
		return
	}
	defer file.Close()

	imageURL, err := uc.uploader.UploadFromReader(c.Request.Context(), file)
	if err != nil {
		uc.log.Error("upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error uploading image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
