package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/naijafake/pkg/dataset"
	"github.com/dmitrymomot/naijafake/pkg/storage"
)

const religionsYAML = `- name: Christianity
- name: Islam
- name: Traditional
`

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func keyIs(key string) any {
	return mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return in.Key != nil && *in.Key == key && in.Bucket != nil && *in.Bucket == "fixtures"
	})
}

func newS3(t *testing.T, client storage.S3Client, prefix string, opts ...storage.S3Option) *storage.S3 {
	t.Helper()
	opts = append([]storage.S3Option{storage.WithS3Client(client)}, opts...)
	src, err := storage.NewS3(context.Background(), storage.S3Config{
		Bucket: "fixtures",
		Region: "eu-west-1",
		Prefix: prefix,
	}, opts...)
	require.NoError(t, err)
	return src
}

func TestNewLocal(t *testing.T) {
	t.Parallel()

	t.Run("empty dir", func(t *testing.T) {
		t.Parallel()
		_, err := storage.NewLocal("")
		require.ErrorIs(t, err, storage.ErrInvalidConfig)
	})

	t.Run("missing dir", func(t *testing.T) {
		t.Parallel()
		_, err := storage.NewLocal(filepath.Join(t.TempDir(), "nope"))
		require.ErrorIs(t, err, storage.ErrDirectoryNotFound)
	})

	t.Run("file instead of dir", func(t *testing.T) {
		t.Parallel()
		f := filepath.Join(t.TempDir(), "religions.yaml")
		require.NoError(t, os.WriteFile(f, []byte(religionsYAML), 0o644))
		_, err := storage.NewLocal(f)
		require.ErrorIs(t, err, storage.ErrNotDirectory)
	})
}

func TestLocalOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "religions.yaml"), []byte(religionsYAML), 0o644))
	src, err := storage.NewLocal(dir)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(src.Dir()))

	t.Run("loads dataset", func(t *testing.T) {
		t.Parallel()
		c, err := dataset.Load[dataset.Religion](context.Background(), src, dataset.Religions)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Len())
	})

	t.Run("missing dataset", func(t *testing.T) {
		t.Parallel()
		_, err := src.Open(context.Background(), "states.yaml")
		require.ErrorIs(t, err, dataset.ErrDatasetNotFound)
	})

	t.Run("path traversal", func(t *testing.T) {
		t.Parallel()
		_, err := src.Open(context.Background(), "../religions.yaml")
		require.ErrorIs(t, err, dataset.ErrDatasetNotFound)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := src.Open(ctx, "religions.yaml")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewS3(t *testing.T) {
	t.Parallel()

	_, err := storage.NewS3(context.Background(), storage.S3Config{Bucket: "fixtures"})
	require.ErrorIs(t, err, storage.ErrInvalidConfig)

	_, err = storage.NewS3(context.Background(), storage.S3Config{Region: "eu-west-1"})
	require.ErrorIs(t, err, storage.ErrInvalidConfig)
}

func TestS3Key(t *testing.T) {
	t.Parallel()

	client := new(MockS3Client)
	assert.Equal(t, "religions.yaml", newS3(t, client, "").Key("religions.yaml"))
	assert.Equal(t, "naijafake/v1/religions.yaml", newS3(t, client, "/naijafake/v1/").Key("religions.yaml"))
}

func TestS3Open(t *testing.T) {
	t.Parallel()

	t.Run("loads dataset", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, keyIs("v1/religions.yaml"), mock.Anything).
			Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewBufferString(religionsYAML))}, nil).
			Once()

		src := newS3(t, client, "v1", storage.WithS3Timeout(time.Minute))
		c, err := dataset.Load[dataset.Religion](context.Background(), src, dataset.Religions)
		require.NoError(t, err)
		assert.Equal(t, "Islam", c.Records()[1].Name)
		client.AssertExpectations(t)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, keyIs("states.yaml"), mock.Anything).
			Return(nil, &types.NoSuchKey{})

		_, err := newS3(t, client, "").Open(context.Background(), "states.yaml")
		require.ErrorIs(t, err, dataset.ErrDatasetNotFound)
	})

	t.Run("missing bucket", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &types.NoSuchBucket{})

		_, err := newS3(t, client, "").Open(context.Background(), "states.yaml")
		require.ErrorIs(t, err, storage.ErrBucketNotFound)
	})

	t.Run("api errors", func(t *testing.T) {
		t.Parallel()
		cases := map[string]error{
			"AccessDenied":       storage.ErrAccessDenied,
			"RequestTimeout":     storage.ErrRequestTimeout,
			"SlowDown":           storage.ErrServiceUnavailable,
			"ServiceUnavailable": storage.ErrServiceUnavailable,
			"NotFound":           dataset.ErrDatasetNotFound,
			"InternalError":      dataset.ErrFailedToReadData,
		}
		for code, want := range cases {
			client := new(MockS3Client)
			client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
				Return(nil, &smithy.GenericAPIError{Code: code, Message: "test"})

			_, err := newS3(t, client, "").Open(context.Background(), "states.yaml")
			assert.ErrorIs(t, err, want, code)
		}
	})

	t.Run("context errors", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, keyIs("slow.yaml"), mock.Anything).
			Return(nil, context.DeadlineExceeded)
		client.On("GetObject", mock.Anything, keyIs("gone.yaml"), mock.Anything).
			Return(nil, context.Canceled)

		src := newS3(t, client, "")
		_, err := src.Open(context.Background(), "slow.yaml")
		require.ErrorIs(t, err, storage.ErrOperationTimeout)
		_, err = src.Open(context.Background(), "gone.yaml")
		require.ErrorIs(t, err, storage.ErrOperationCanceled)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset"))

		_, err := newS3(t, client, "").Open(context.Background(), "states.yaml")
		require.ErrorIs(t, err, dataset.ErrFailedToReadData)
		assert.Contains(t, err.Error(), "connection reset")
	})

	t.Run("traversal is rejected before the request", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		_, err := newS3(t, client, "").Open(context.Background(), "../secrets.yaml")
		require.ErrorIs(t, err, dataset.ErrDatasetNotFound)
		client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).
			Return(&s3.GetObjectOutput{}, nil)

		_, err := newS3(t, client, "").Open(context.Background(), "states.yaml")
		require.ErrorIs(t, err, dataset.ErrFailedToReadData)
	})
}
