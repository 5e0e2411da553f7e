package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

const defaultLocalURLPrefix = "/uploads"

type LocalProvider struct {
	basePath  string
	urlPrefix string
}

func NewLocalProvider(conf Config) *LocalProvider {
	urlPrefix := conf.PublicURLPrefix
	if urlPrefix == "" {
		urlPrefix = defaultLocalURLPrefix
	}
	return &LocalProvider{
		basePath:  conf.LocalPath,
		urlPrefix: urlPrefix,
	}
}

func (p *LocalProvider) BasePath() string {
	return p.basePath
}

func (p *LocalProvider) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.basePath, filepath.FromSlash(objectName))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}
	return p.GetURL(objectName), nil
}

func (p *LocalProvider) Delete(ctx context.Context, objectName string) error {
	return os.Remove(filepath.Join(p.basePath, filepath.FromSlash(objectName)))
}

func (p *LocalProvider) GetURL(objectName string) string {
	return joinURL(p.urlPrefix, objectName)
}
