package objectstore

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
)

func TestS3Store(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set, skipping S3 tests")
	}

	cfg := S3Config{
		Endpoint:  endpoint,
		Bucket:    os.Getenv("MINIO_BUCKET"),
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Region:    "us-east-1",
		UseSSL:    false,
	}

	if cfg.Bucket == "" {
		cfg.Bucket = "spriteforge-test"
	}
	if cfg.AccessKey == "" {
		cfg.AccessKey = "minioadmin"
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = "minioadmin"
	}

	store, err := NewS3Store(cfg)
	if err != nil {
		t.Fatalf("failed to create S3 store: %v", err)
	}

	ctx := context.Background()
	if err := store.EnsureBucket(ctx); err != nil {
		t.Fatalf("failed to ensure bucket: %v", err)
	}

	t.Run("SharedBehavior", func(t *testing.T) {
		runStoreTests(t, store)
	})

	t.Run("ReadAfterWrite", func(t *testing.T) {
		key := "test/s3/raw"
		content := []byte("read after write")

		if _, err := store.Put(ctx, key, bytes.NewReader(content), int64(len(content)), nil); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		defer store.Delete(ctx, key)

		rc, _, err := store.Get(ctx, key)
		if err != nil {
			t.Fatalf("Get after Put failed: %v", err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		if !bytes.Equal(data, content) {
			t.Errorf("content = %q, want %q", data, content)
		}
	})

	t.Run("ContentType", func(t *testing.T) {
		key := "test/s3/manifest.json"
		content := []byte(`{}`)

		opts := &PutOptions{ContentType: "application/json"}
		if _, err := store.Put(ctx, key, bytes.NewReader(content), int64(len(content)), opts); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		defer store.Delete(ctx, key)

		info, err := store.Head(ctx, key)
		if err != nil {
			t.Fatalf("Head failed: %v", err)
		}
		if info.ContentType != "application/json" {
			t.Errorf("content type = %q, want application/json", info.ContentType)
		}
	})
}
