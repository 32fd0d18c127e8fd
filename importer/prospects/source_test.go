package prospects

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGetter struct {
	mock.Mock
}

func (m *mockGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(*params.Bucket, *params.Key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func TestOpenLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prospects.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"prospects":[]}`), 0o600))

	rc, err := Open(context.Background(), path, nil)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, `{"prospects":[]}`, string(data))

	_, err = Open(context.Background(), filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't open the prospects file")
}

func TestOpenBucket(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		getter := new(mockGetter)
		getter.On("GetObject", "imports", "2026/prospects.json").Return(&s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader(`{"prospects":[{"name":"Travis Hunter"}]}`)),
		}, nil)

		rc, err := Open(context.Background(), "s3://imports/2026/prospects.json", getter)
		require.NoError(t, err)
		defer rc.Close()

		file, err := Parse(rc)
		require.NoError(t, err)
		require.Len(t, file.Prospects, 1)
		getter.AssertExpectations(t)
	})

	t.Run("downloaderror", func(t *testing.T) {
		getter := new(mockGetter)
		getter.On("GetObject", "imports", "missing.json").Return(nil, errors.New("NoSuchKey"))

		_, err := Open(context.Background(), "s3://imports/missing.json", getter)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "couldn't download s3://imports/missing.json")
		getter.AssertExpectations(t)
	})

	t.Run("noclient", func(t *testing.T) {
		_, err := Open(context.Background(), "s3://imports/prospects.json", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no bucket client")
	})
}
