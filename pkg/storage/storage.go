package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

const (
	STORAGE_TYPE_LOCAL = "local"
	STORAGE_TYPE_MINIO = "minio"
)

var ErrUnknownStorageType = errors.New("unknown storage type")

type Config struct {
	Type            string `yaml:"type"`
	LocalPath       string `yaml:"local_path"`
	PublicURLPrefix string `yaml:"public_url_prefix"`
	MaxUploadSize   int64  `yaml:"max_upload_size"`

	MinioEndpoint  string `yaml:"minio_endpoint"`
	MinioAccessKey string `yaml:"minio_access_key"`
	MinioSecretKey string `yaml:"minio_secret_key"`
	MinioBucket    string `yaml:"minio_bucket"`
	MinioUseSSL    bool   `yaml:"minio_use_ssl"`
}

// Provider stores uploaded files (form header images) and tells where they can be fetched.
type Provider interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
	GetURL(objectName string) string
}

// NewProvider creates the provider selected by conf.Type. An empty type means local storage.
func NewProvider(conf Config) (Provider, error) {
	switch conf.Type {
	case "", STORAGE_TYPE_LOCAL:
		return NewLocalProvider(conf), nil
	case STORAGE_TYPE_MINIO:
		return NewMinioProvider(conf)
	}
	return nil, ErrUnknownStorageType
}

// ObjectName returns a random, collision free name keeping the extension of the original file.
func ObjectName(prefix string, originalFilename string) string {
	ext := strings.ToLower(path.Ext(originalFilename))
	return path.Join(prefix, uuid.New().String()+ext)
}

func joinURL(prefix string, objectName string) string {
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(objectName, "/")
}
