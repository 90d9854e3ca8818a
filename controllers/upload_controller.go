package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ayushfaujdar/oodio-solutions/services"
)

type UploadController struct {
	Uploader services.Uploader
	MaxBytes int64
}

// POST /api/upload
func (uc *UploadController) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, uc.MaxBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "File exceeds the upload size limit"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !services.AllowedUploadType(header.Filename, contentType) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only image and video files are allowed"})
		return
	}

	result, err := uc.Uploader.Upload(c.Request.Context(), file, header.Filename, contentType)
	if err != nil {
		log.Printf("Error uploading file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "File uploaded successfully",
		"url":          result.URL,
		"filename":     result.Filename,
		"originalName": header.Filename,
		"size":         header.Size,
	})
}
