package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/crm-api/internal/config"
)

func TestPublicBase(t *testing.T) {
	assert.Equal(t, "https://cdn.example.test",
		publicBase(config.S3Config{PublicURL: "https://cdn.example.test/", Bucket: "b"}))

	assert.Equal(t, "http://minio:9000/avatars",
		publicBase(config.S3Config{Endpoint: "http://minio:9000/", Bucket: "avatars"}))

	assert.Equal(t, "https://avatars.s3.eu-west-1.amazonaws.com",
		publicBase(config.S3Config{Bucket: "avatars", Region: "eu-west-1"}))
}
