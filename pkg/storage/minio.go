package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioProvider struct {
	client    *minio.Client
	bucket    string
	urlPrefix string
}

func NewMinioProvider(conf Config) (*MinioProvider, error) {
	client, err := minio.New(conf.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.MinioAccessKey, conf.MinioSecretKey, ""),
		Secure: conf.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	urlPrefix := conf.PublicURLPrefix
	if urlPrefix == "" {
		scheme := "http://"
		if conf.MinioUseSSL {
			scheme = "https://"
		}
		urlPrefix = scheme + conf.MinioEndpoint + "/" + conf.MinioBucket
	}

	return &MinioProvider{
		client:    client,
		bucket:    conf.MinioBucket,
		urlPrefix: urlPrefix,
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (p *MinioProvider) EnsureBucket(ctx context.Context) error {
	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{})
}

func (p *MinioProvider) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.client.PutObject(ctx, p.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(objectName), nil
}

func (p *MinioProvider) Delete(ctx context.Context, objectName string) error {
	return p.client.RemoveObject(ctx, p.bucket, objectName, minio.RemoveObjectOptions{})
}

func (p *MinioProvider) GetURL(objectName string) string {
	return joinURL(p.urlPrefix, objectName)
}
