package utils

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func multipartFileHeader(t *testing.T, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", "upload.bin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	part.Write(content)
	w.Close()

	req := httptest.NewRequest("POST", "/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestDetectFileType(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		ct, err := DetectFileType(multipartFileHeader(t, pngHeader), HeaderImageTypes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ct != "image/png" {
			t.Errorf("DetectFileType() = %s, want image/png", ct)
		}
		if ext := FileExtensionForType(ct); ext != ".png" {
			t.Errorf("FileExtensionForType() = %s, want .png", ext)
		}
	})

	t.Run("text is rejected", func(t *testing.T) {
		_, err := DetectFileType(multipartFileHeader(t, []byte("hello world")), HeaderImageTypes)
		if !errors.Is(err, ErrUnsupportedFileType) {
			t.Errorf("expected ErrUnsupportedFileType, got %v", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		if _, err := DetectFileType(multipartFileHeader(t, []byte{}), HeaderImageTypes); err == nil {
			t.Errorf("expected error for empty file")
		}
	})
}
