package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	mw "github.com/case-framework/case-forms/pkg/apihelpers/middlewares"
	"github.com/case-framework/case-forms/pkg/storage"
	"github.com/case-framework/case-forms/pkg/utils"
	"github.com/gin-gonic/gin"
)

const headerImagePrefix = "header-images"

func (h *HttpEndpoints) AddUploadsAPI(rg *gin.RouterGroup) {
	uploadsGroup := rg.Group("/uploads")
	uploadsGroup.Use(mw.HasValidAPIKey(h.authorAPIKeys))
	{
		uploadsGroup.POST("/header-image", h.uploadHeaderImage)
	}
}

func (h *HttpEndpoints) uploadHeaderImage(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "file storage not configured"})
		return
	}

	if h.maxUploadSize > 0 {
		// multipart overhead on top of the file itself
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+1<<20)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		slog.Warn("missing upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	contentType, err := utils.DetectFileType(fileHeader, utils.HeaderImageTypes)
	if err != nil {
		slog.Warn("rejected upload", slog.String("filename", fileHeader.Filename), slog.String("error", err.Error()))
		if errors.Is(err, utils.ErrUnsupportedFileType) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("failed to open upload", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	objectName := storage.ObjectName(headerImagePrefix, "image"+utils.FileExtensionForType(contentType))
	url, err := h.storage.Upload(c.Request.Context(), objectName, file, fileHeader.Size, contentType)
	if err != nil {
		slog.Error("failed to store upload", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	slog.Info("header image uploaded", slog.String("object", objectName))
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
