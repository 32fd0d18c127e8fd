package jobs

import (
	"context"
	"draftroom/pkg/logger"
	"fmt"
	"time"
)

const uploadTimeout = time.Minute

// LogUploader is the local log file shipped to the bucket.
type LogUploader interface {
	UploadToS3Bucket(ctx context.Context, client logger.ObjectPutter, bucket, objectKey string) error
}

// LogObjectKey is the bucket key of a log upload made at the given time.
func LogObjectKey(now time.Time) string {
	return "scheduler/" + now.UTC().Format("2006-01-02T15-04-05") + ".log"
}

// ShipLogs uploads the pending log lines and clears the local file.
func ShipLogs(file LogUploader, client logger.ObjectPutter, bucket string, now func() time.Time, log logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
	defer cancel()

	key := LogObjectKey(now())
	if err := file.UploadToS3Bucket(ctx, client, bucket, key); err != nil {
		log.Warn(ctx, "couldn't ship the logs", logger.String("key", key), logger.Err(err))
		return fmt.Errorf("couldn't ship the logs: %w", err)
	}

	log.Debug(ctx, "logs shipped", logger.String("key", key))
	return nil
}
