// Package config loads Spriteforge configuration from a JSON file with
// environment variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spriteforge/spriteforge/pkg/objectstore"
)

// Backend selects the object storage backend snapshots run against.
type Backend string

const (
	BackendMemory     Backend = "memory"
	BackendFilesystem Backend = "filesystem"
	BackendS3         Backend = "s3"
)

// IsValid returns true if the backend is a recognized value.
func (b Backend) IsValid() bool {
	switch b {
	case BackendMemory, BackendFilesystem, BackendS3:
		return true
	default:
		return false
	}
}

// Config is the top-level configuration.
type Config struct {
	// Project is a label attached to logs and progress output.
	Project string `json:"project"`

	ObjectStore ObjectStoreConfig `json:"object_store"`
	Snapshot    SnapshotConfig    `json:"snapshot"`
}

// ObjectStoreConfig selects and configures the storage backend.
type ObjectStoreConfig struct {
	Backend Backend `json:"backend"`

	// Path is the root directory for the filesystem backend.
	Path string `json:"path"`

	S3 S3Config `json:"s3"`
}

// S3Config configures the S3 backend.
type S3Config struct {
	Endpoint  string `json:"endpoint"`
	Bucket    string `json:"bucket"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	Region    string `json:"region"`
	UseSSL    bool   `json:"use_ssl"`
}

// SnapshotConfig configures where snapshots live within the store.
type SnapshotConfig struct {
	// Prefix is the key prefix snapshots are stored under.
	Prefix string `json:"prefix"`
}

// DefaultConfig returns a configuration using the filesystem backend
// in the current directory.
func DefaultConfig() *Config {
	return &Config{
		Project: "default",
		ObjectStore: ObjectStoreConfig{
			Backend: BackendFilesystem,
			Path:    ".",
		},
		Snapshot: SnapshotConfig{
			Prefix: "spriteforge/projects/default",
		},
	}
}

// Load reads configuration from path (when non-empty) and applies
// environment overrides on top.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SPRITEFORGE_PROJECT"); v != "" {
		c.Project = v
	}
	if v := os.Getenv("SPRITEFORGE_STORE_BACKEND"); v != "" {
		c.ObjectStore.Backend = Backend(v)
	}
	if v := os.Getenv("SPRITEFORGE_STORE_PATH"); v != "" {
		c.ObjectStore.Path = v
	}
	if v := os.Getenv("SPRITEFORGE_SNAPSHOT_PREFIX"); v != "" {
		c.Snapshot.Prefix = v
	}
	if v := os.Getenv("SPRITEFORGE_S3_ENDPOINT"); v != "" {
		c.ObjectStore.S3.Endpoint = v
	}
	if v := os.Getenv("SPRITEFORGE_S3_BUCKET"); v != "" {
		c.ObjectStore.S3.Bucket = v
	}
	if v := os.Getenv("SPRITEFORGE_S3_ACCESS_KEY"); v != "" {
		c.ObjectStore.S3.AccessKey = v
	}
	if v := os.Getenv("SPRITEFORGE_S3_SECRET_KEY"); v != "" {
		c.ObjectStore.S3.SecretKey = v
	}
	if v := os.Getenv("SPRITEFORGE_S3_REGION"); v != "" {
		c.ObjectStore.S3.Region = v
	}
	if v := os.Getenv("SPRITEFORGE_S3_USE_SSL"); v == "true" || v == "1" {
		c.ObjectStore.S3.UseSSL = true
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if !c.ObjectStore.Backend.IsValid() {
		return fmt.Errorf("invalid object store backend %q", c.ObjectStore.Backend)
	}
	if c.ObjectStore.Backend == BackendFilesystem && c.ObjectStore.Path == "" {
		return fmt.Errorf("filesystem backend requires a path")
	}
	if c.ObjectStore.Backend == BackendS3 {
		if c.ObjectStore.S3.Endpoint == "" {
			return fmt.Errorf("s3 backend requires an endpoint")
		}
		if c.ObjectStore.S3.Bucket == "" {
			return fmt.Errorf("s3 backend requires a bucket")
		}
	}
	if c.Snapshot.Prefix == "" {
		return fmt.Errorf("snapshot prefix must not be empty")
	}
	return nil
}

// NewStore constructs the configured object store, wrapped with
// Prometheus instrumentation.
func (c *Config) NewStore() (objectstore.Store, error) {
	var (
		inner objectstore.Store
		err   error
	)
	switch c.ObjectStore.Backend {
	case BackendMemory:
		inner = objectstore.NewMemoryStore()
	case BackendFilesystem:
		inner, err = objectstore.NewFilesystemStore(c.ObjectStore.Path)
	case BackendS3:
		inner, err = objectstore.NewS3Store(objectstore.S3Config{
			Endpoint:  c.ObjectStore.S3.Endpoint,
			Bucket:    c.ObjectStore.S3.Bucket,
			AccessKey: c.ObjectStore.S3.AccessKey,
			SecretKey: c.ObjectStore.S3.SecretKey,
			Region:    c.ObjectStore.S3.Region,
			UseSSL:    c.ObjectStore.S3.UseSSL,
		})
	default:
		return nil, fmt.Errorf("invalid object store backend %q", c.ObjectStore.Backend)
	}
	if err != nil {
		return nil, err
	}
	return objectstore.NewInstrumentedStore(inner), nil
}
