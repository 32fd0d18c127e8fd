package prospects

import (
	"context"
	"draftroom/pkg/storage"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectGetter is the part of the S3 client used to read exports.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Open returns the export at a local path or at an s3://bucket/key URI.
func Open(ctx context.Context, source string, client ObjectGetter) (io.ReadCloser, error) {
	bucket, key, ok := storage.ParseS3URI(source)
	if !ok {
		file, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("couldn't open the prospects file: %w", err)
		}
		return file, nil
	}

	if client == nil {
		return nil, fmt.Errorf("no bucket client for %s", source)
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't download %s: %w", source, err)
	}

	return out.Body, nil
}
