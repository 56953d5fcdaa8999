package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/internal/config"
)

func TestS3Endpoint(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.S3Config
		want string
	}{
		{name: "aws default", cfg: config.S3Config{}, want: ""},
		{name: "r2 account", cfg: config.S3Config{AccountID: "abc123"}, want: "https://abc123.r2.cloudflarestorage.com"},
		{name: "explicit endpoint wins", cfg: config.S3Config{AccountID: "abc123", Endpoint: "http://localhost:9000"}, want: "http://localhost:9000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3Endpoint(tt.cfg))
		})
	}
}

func TestNew_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, config.StorageConfig{Driver: "ftp"})
	assert.ErrorContains(t, err, `unknown storage driver "ftp"`)

	_, err = New(ctx, config.StorageConfig{Driver: "minio"})
	assert.ErrorContains(t, err, "minio endpoint is required")

	_, err = New(ctx, config.StorageConfig{Driver: "minio", MinIO: config.MinIOConfig{Endpoint: "localhost:9000"}})
	assert.ErrorContains(t, err, "minio credentials are required")

	_, err = New(ctx, config.StorageConfig{Driver: "s3"})
	assert.ErrorContains(t, err, "s3 bucket is required")

	_, err = New(ctx, config.StorageConfig{Driver: "r2", S3: config.S3Config{Bucket: "media"}})
	assert.ErrorContains(t, err, "s3 credentials are required")
}

func TestValidateMinIO(t *testing.T) {
	full := config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "media"}
	assert.NoError(t, validateMinIO(full))

	noBucket := full
	noBucket.Bucket = ""
	assert.EqualError(t, validateMinIO(noBucket), "minio bucket is required")

	noSecret := full
	noSecret.SecretKey = ""
	assert.EqualError(t, validateMinIO(noSecret), "minio credentials are required")
}

func TestNewS3_BuildsClient(t *testing.T) {
	st, err := NewS3(context.Background(), config.S3Config{
		AccountID: "abc123",
		Region:    "auto",
		AccessKey: "key",
		SecretKey: "secret",
		Bucket:    "media",
	})
	assert.NoError(t, err)
	assert.NotNil(t, st)
}
