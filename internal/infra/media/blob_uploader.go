// Package media stores listing photos in cloud object storage through the
// gocloud.dev blob portability layer. The bucket backend is chosen by URL at
// boot, so s3://, gs:// and file:// all work without code changes.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"roost/config"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/service"
	"roost/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
	"golang.org/x/sync/errgroup"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobUploader struct {
	bucket        *blob.Bucket
	keyPrefix     string
	publicBaseURL string
	maxConcurrent int
	retryAttempts int
	timeout       time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// New opens the configured bucket and registers its shutdown hook.
func New(params Params) (service.MediaStorage, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return newBlobUploader(bucket, params.Config.Media, params.Logger), nil
}

func newBlobUploader(bucket *blob.Bucket, cfg *config.MediaConfig, logger *slog.Logger) *blobUploader {
	return &blobUploader{
		bucket:        bucket,
		keyPrefix:     cfg.KeyPrefix,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		maxConcurrent: cfg.MaxConcurrentUploads,
		retryAttempts: cfg.RetryAttempts,
		timeout:       cfg.Timeout,
		logger:        logger,
		now:           time.Now,
	}
}

// Upload writes every asset concurrently and returns their URLs in input
// order. The first unrecoverable failure cancels the remaining uploads and
// the whole call fails.
func (u *blobUploader) Upload(ctx context.Context, assets []service.MediaAsset) ([]string, error) {
	if len(assets) == 0 {
		return []string{}, nil
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	urls := make([]string, len(assets))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(u.maxConcurrent)

	for index, asset := range assets {
		group.Go(func() error {
			key := u.objectKey(asset.FileName)
			if err := u.uploadOne(groupCtx, key, asset); err != nil {
				u.logger.Error("photo upload failed",
					slog.String("key", key),
					slog.String("fileName", asset.FileName),
					slog.Any("error", err))

				return domainerrors.ErrMediaUploadFailed.WrapMessage(
					fmt.Sprintf("upload %s", asset.FileName))
			}
			urls[index] = u.publicURL(key)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return urls, nil
}

func (u *blobUploader) uploadOne(ctx context.Context, key string, asset service.MediaAsset) error {
	var lastErr error
	for attempt := 1; attempt <= u.retryAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		err := u.bucket.WriteAll(ctx, key, asset.Body, &blob.WriterOptions{
			ContentType: asset.ContentType,
		})
		if err == nil {
			return nil
		}
		lastErr = err
		u.logger.Warn("photo upload attempt failed",
			slog.String("key", key),
			slog.Int("attempt", attempt),
			slog.Any("error", err))
	}

	return errors.Wrap(lastErr, "retry budget exhausted")
}

// objectKey namespaces each object under the configured prefix with a
// timestamp so re-uploads of the same file name never collide.
func (u *blobUploader) objectKey(fileName string) string {
	return fmt.Sprintf("%s%d-%s", u.keyPrefix, u.now().UnixMilli(), sanitizeFileName(fileName))
}

func (u *blobUploader) publicURL(key string) string {
	if u.publicBaseURL == "" {
		return key
	}

	return u.publicBaseURL + "/" + key
}

// sanitizeFileName keeps object keys URL-safe while preserving the original
// extension for content negotiation downstream.
func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, " ", "-")

	return url.PathEscape(name)
}
