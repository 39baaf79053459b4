// Package store provides the durable local key/value storage the content core
// falls back to, plus small in-memory indexes over its data.
package store

import (
	"context"
	"fmt"
	"io"

	"agencysite/internal/core"
)

const (
	// KeyProjects holds the serialized project list (JSON array)
	KeyProjects = "projects"
	// KeyAdminToken holds the admin bearer token
	KeyAdminToken = "adminToken"

	// FilePermission is used for files written by the file driver
	FilePermission = 0o600
)

// KV is durable key/value storage that survives restarts. Reads are treated as
// resource acquisition and take a context so a slow driver can be swapped in
// without changing callers.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the configured driver, wrapped in a read cache when CacheSize > 0.
func Open(cfg *core.StorageConfig) (KV, io.Closer, error) {
	var (
		kv     KV
		closer io.Closer = nopCloser{}
	)

	switch cfg.Driver {
	case core.StorageDriverFile, "":
		fileKV, err := NewFileKV(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		kv = fileKV
	case core.StorageDriverSQLite:
		sqliteKV, err := NewSQLiteKV(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		kv, closer = sqliteKV, sqliteKV
	case core.StorageDriverRedis:
		redisKV, err := NewRedisKV(cfg.RedisAddr, cfg.RedisDB, cfg.KeyPrefix)
		if err != nil {
			return nil, nil, err
		}
		kv, closer = redisKV, redisKV
	case core.StorageDriverMemory:
		kv = NewMemoryKV()
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	if cfg.CacheSize > 0 {
		cached, err := NewCachedKV(kv, cfg.CacheSize)
		if err != nil {
			_ = closer.Close()
			return nil, nil, err
		}
		kv = cached
	}

	return kv, closer, nil
}
