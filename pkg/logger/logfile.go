package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectPutter is the part of the S3 client used for shipping logs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// LogFile mirrors the log output into a temporary file so it can be shipped to a bucket.
type LogFile struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
}

// CreateLogFile creates the log file on the temporary directory.
func CreateLogFile() (*LogFile, error) {
	f, err := os.CreateTemp("", "draftroom-*.log")
	if err != nil {
		return nil, err
	}

	return &LogFile{
		logFile:  f,
		filePath: f.Name(),
	}, nil
}

// Write implements io.Writer.
func (l *LogFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.logFile.Write(p)
}

// Path of the underlying file.
func (l *LogFile) Path() string {
	return l.filePath
}

// Close the file and remove it from disk.
func (l *LogFile) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.logFile.Close(); err != nil {
		return err
	}
	return os.Remove(l.filePath)
}

// UploadToS3Bucket sends the current content to the bucket and truncates the file.
// Lines written during the upload wait on the lock and land in the next object.
func (l *LogFile) UploadToS3Bucket(ctx context.Context, client ObjectPutter, bucket, objectKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	info, err := l.logFile.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	// Nothing to ship.
	if info.Size() == 0 {
		return nil
	}

	if _, err := l.logFile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          l.logFile,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String("text/plain"),
		ACL:           types.ObjectCannedACLPrivate,
	})
	if err != nil {
		// Keep appending after the content that failed to ship.
		_, _ = l.logFile.Seek(0, io.SeekEnd)
		return fmt.Errorf("failed to upload %s to S3 bucket: %w", objectKey, err)
	}

	// Clean the file after sending.
	if err := l.logFile.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate log file: %w", err)
	}
	_, err = l.logFile.Seek(0, io.SeekStart)
	return err
}
