package storage

import (
	"draftroom/pkg/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		uri    string
		bucket string
		key    string
		ok     bool
	}{
		{uri: "s3://imports/2026/prospects.json", bucket: "imports", key: "2026/prospects.json", ok: true},
		{uri: "s3://imports/", ok: false},
		{uri: "s3://imports", ok: false},
		{uri: "s3:///key", ok: false},
		{uri: "/tmp/prospects.json", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, key, ok := ParseS3URI(tt.uri)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestNewS3Client(t *testing.T) {
	client := NewS3Client(config.BucketConfiguration{
		Region:       "auto",
		Endpoint:     "http://localhost:9000",
		AccessKey:    "key",
		AccessSecret: "secret",
	})

	assert.NotNil(t, client)
	assert.Equal(t, "auto", client.Options().Region)
	assert.Equal(t, "http://localhost:9000", *client.Options().BaseEndpoint)
}
