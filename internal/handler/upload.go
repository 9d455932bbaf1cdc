package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lucien-Luc/Programs/internal/pkg/upload"
)

type UploadHandler struct {
	store *upload.Store
}

func NewUploadHandler(store *upload.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) Image(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}
	info, err := h.store.SaveImage(file)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"url":          info.Path,
		"filename":     info.Filename,
		"originalName": info.OriginalName,
		"size":         info.Size,
	})
}

func (h *UploadHandler) Document(c *gin.Context) {
	file, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No document uploaded"})
		return
	}
	info, err := h.store.SaveDocument(file)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Document uploaded successfully",
		"document":     info,
		"documentUrl":  info.Path,
		"documentName": info.OriginalName,
		"documentType": info.MimeType,
	})
}

func (h *UploadHandler) UserFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}
	info, err := h.store.SaveUserFile(file)
	if err != nil {
		respondUploadError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "File uploaded successfully",
		"file":    info,
	})
}

// respondUploadError surfaces the rejection reason as a human-readable
// string: 400 for type/size rejections, 500 for disk failures.
func respondUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, upload.ErrNoFile),
		errors.Is(err, upload.ErrTooLarge),
		errors.Is(err, upload.ErrBadImageType),
		errors.Is(err, upload.ErrBadDocType),
		errors.Is(err, upload.ErrBadFileType):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed"})
	}
}
