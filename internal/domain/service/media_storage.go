package service

import "context"

// MediaAsset is one uploaded binary with its original name and content type.
// Body is fully buffered so a failed attempt can be retried.
type MediaAsset struct {
	FileName    string
	ContentType string
	Body        []byte
}

// MediaStorage persists binary assets to durable object storage.
//
// Upload returns retrieval URLs in the same order as the input assets. It is
// all-or-nothing: if any asset cannot be stored within its retry budget the
// whole call fails and none of the returned URLs may be used.
type MediaStorage interface {
	Upload(ctx context.Context, assets []MediaAsset) ([]string, error)
}
