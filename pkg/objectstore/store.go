// Package objectstore abstracts the storage backends snapshots are
// read from and written to: in-memory (tests), local filesystem, and
// S3-compatible object storage.
package objectstore

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrNotFound is returned when the requested object does not exist.
	ErrNotFound = errors.New("object not found")
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	ContentType  string
}

// ListOptions controls a List call.
type ListOptions struct {
	Prefix  string
	Marker  string
	MaxKeys int
}

// ListResult is one page of a listing.
type ListResult struct {
	Objects     []ObjectInfo
	NextMarker  string
	IsTruncated bool
}

// PutOptions carries optional metadata for a Put.
type PutOptions struct {
	ContentType string
}

// Store is the storage interface snapshots run against.
type Store interface {
	// Get returns a reader over the object's content. The caller must
	// close the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)

	// Head returns object metadata without reading the content.
	Head(ctx context.Context, key string) (*ObjectInfo, error)

	// Put stores the object, replacing any existing content.
	Put(ctx context.Context, key string, body io.Reader, size int64, opts *PutOptions) (*ObjectInfo, error)

	// Delete removes the object. Deleting a missing object is not an
	// error.
	Delete(ctx context.Context, key string) error

	// List returns one page of objects under the given prefix in key
	// order.
	List(ctx context.Context, opts *ListOptions) (*ListResult, error)
}

// IsNotFoundError reports whether err indicates a missing object.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
