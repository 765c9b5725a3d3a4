package objectstore

import (
	"context"
	"io"
	"time"

	"github.com/spriteforge/spriteforge/internal/metrics"
)

// InstrumentedStore wraps a Store with Prometheus operation counters
// and latency histograms.
type InstrumentedStore struct {
	inner Store
}

// NewInstrumentedStore wraps the given store.
func NewInstrumentedStore(inner Store) *InstrumentedStore {
	return &InstrumentedStore{inner: inner}
}

func (s *InstrumentedStore) Get(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error) {
	start := time.Now()
	rc, info, err := s.inner.Get(ctx, key)
	metrics.ObserveObjectStoreOp("get", time.Since(start).Seconds(), err)
	return rc, info, err
}

func (s *InstrumentedStore) Head(ctx context.Context, key string) (*ObjectInfo, error) {
	start := time.Now()
	info, err := s.inner.Head(ctx, key)
	metrics.ObserveObjectStoreOp("head", time.Since(start).Seconds(), err)
	return info, err
}

func (s *InstrumentedStore) Put(ctx context.Context, key string, body io.Reader, size int64, opts *PutOptions) (*ObjectInfo, error) {
	start := time.Now()
	info, err := s.inner.Put(ctx, key, body, size, opts)
	metrics.ObserveObjectStoreOp("put", time.Since(start).Seconds(), err)
	if err == nil && info != nil {
		metrics.SnapshotBytesWritten.Add(float64(info.Size))
	}
	return info, err
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, key)
	metrics.ObserveObjectStoreOp("delete", time.Since(start).Seconds(), err)
	return err
}

func (s *InstrumentedStore) List(ctx context.Context, opts *ListOptions) (*ListResult, error) {
	start := time.Now()
	result, err := s.inner.List(ctx, opts)
	metrics.ObserveObjectStoreOp("list", time.Since(start).Seconds(), err)
	return result, err
}
