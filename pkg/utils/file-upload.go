package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

// HeaderImageTypes are the content types accepted for form header images.
var HeaderImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DetectFileType sniffs the content type from the first bytes of the upload instead of trusting
// the client supplied header.
func DetectFileType(fileHeader *multipart.FileHeader, allowedTypes []string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if n == 0 {
		return "", errors.New("file is empty")
	}

	contentType := http.DetectContentType(buffer[:n])
	if !slices.Contains(allowedTypes, contentType) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}
	return contentType, nil
}

// FileExtensionForType returns the extension with leading dot, or "" for unknown types.
func FileExtensionForType(contentType string) string {
	return imageExtensions[contentType]
}
