package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"estimatepro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// S3API is the subset of *s3.Client used for photo uploads.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ S3API = (*s3.Client)(nil)

// S3PhotoStorage uploads survey photos under leads/<builder>/<lead>/.
type S3PhotoStorage struct {
	client S3API
	bucket string
}

var _ interfaces.IPhotoStorage = (*S3PhotoStorage)(nil)

func NewS3PhotoStorage(client S3API, bucket string) *S3PhotoStorage {
	return &S3PhotoStorage{client: client, bucket: bucket}
}

func (s *S3PhotoStorage) Save(ctx context.Context, builderID, leadID string, photo interfaces.Photo) (string, error) {
	data := photo.Data
	contentType := photo.ContentType
	ext := strings.ToLower(path.Ext(photo.Filename))

	if optimizablePhoto(contentType) {
		optimized, err := OptimizePhoto(data)
		if err != nil {
			// Keep the original bytes when the image cannot be decoded.
			zap.S().Warnf("[survey][storage] photo optimize failed filename=%q err=%v", photo.Filename, err)
		} else {
			data = optimized
			contentType = "image/jpeg"
			ext = ".jpg"
		}
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("leads/%s/%s/%s%s", builderID, leadID, uuid.NewString(), ext)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	zap.S().Infof("[survey][storage] photo stored key=%s bytes=%d", key, len(data))
	return key, nil
}
