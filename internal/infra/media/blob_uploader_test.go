package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"roost/config"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestUploader(t *testing.T) *blobUploader {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	uploader := newBlobUploader(bucket, &config.MediaConfig{
		KeyPrefix:            "properties/",
		PublicBaseURL:        "https://cdn.example.com",
		MaxConcurrentUploads: 4,
		RetryAttempts:        3,
		Timeout:              5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	uploader.now = func() time.Time { return time.UnixMilli(1700000000000) }

	return uploader
}

func testAssets(count int) []service.MediaAsset {
	assets := make([]service.MediaAsset, 0, count)
	for i := 0; i < count; i++ {
		assets = append(assets, service.MediaAsset{
			FileName:    fmt.Sprintf("photo-%d.jpg", i),
			ContentType: "image/jpeg",
			Body:        []byte(fmt.Sprintf("image-bytes-%d", i)),
		})
	}

	return assets
}

func TestUpload_PreservesInputOrder(t *testing.T) {
	uploader := newTestUploader(t)

	urls, err := uploader.Upload(context.Background(), testAssets(8))
	require.NoError(t, err)
	require.Len(t, urls, 8)

	for i, u := range urls {
		assert.Equal(t,
			fmt.Sprintf("https://cdn.example.com/properties/1700000000000-photo-%d.jpg", i),
			u)
	}
}

func TestUpload_WritesBodiesAndContentType(t *testing.T) {
	uploader := newTestUploader(t)

	_, err := uploader.Upload(context.Background(), testAssets(2))
	require.NoError(t, err)

	data, err := uploader.bucket.ReadAll(context.Background(), "properties/1700000000000-photo-1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image-bytes-1", string(data))

	attrs, err := uploader.bucket.Attributes(context.Background(), "properties/1700000000000-photo-0.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
}

func TestUpload_EmptyInput(t *testing.T) {
	uploader := newTestUploader(t)

	urls, err := uploader.Upload(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, urls)
}

func TestUpload_FailureMapsToMediaUploadError(t *testing.T) {
	uploader := newTestUploader(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	urls, err := uploader.Upload(ctx, testAssets(3))
	require.Error(t, err)
	assert.Nil(t, urls)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrMediaUploadFailed.ErrorCode(), appErr.ErrorCode())
}

func TestUpload_SanitizesFileNames(t *testing.T) {
	uploader := newTestUploader(t)

	urls, err := uploader.Upload(context.Background(), []service.MediaAsset{{
		FileName:    "front yard.jpg",
		ContentType: "image/jpeg",
		Body:        []byte("x"),
	}})
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.True(t, strings.HasSuffix(urls[0], "1700000000000-front-yard.jpg"), urls[0])
}
