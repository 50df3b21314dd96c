package storage

import (
	"context"
	"fmt"

	"estimatepro/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// NewS3Client builds an S3 client from the shared AWS config. A custom endpoint
// (MinIO, LocalStack) switches to path-style addressing.
func NewS3Client(ctx context.Context, endpoint string) (*s3.Client, error) {
	cfg, err := database.NewAWSConfigFromEnv(ctx)
	if err != nil {
		return nil, fmt.Errorf("create aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	zap.S().Infof("[infra][s3] client ready region=%s endpoint=%q", cfg.Region, endpoint)
	return client, nil
}
