// Package core holds the configuration shared by the agencysite components.
package core

import (
	"time"

	"agencysite/internal/i18n"
)

const (
	// DefaultServerPort is the port the site surface listens on
	DefaultServerPort = 8080
	// DefaultBackendTimeoutSecs bounds a single backend API call
	DefaultBackendTimeoutSecs = 10
	// DefaultContactLimitPerMinute is the per-sender contact form limit
	DefaultContactLimitPerMinute = 3
	// DefaultCacheSize is the number of storage values kept in the read cache
	DefaultCacheSize = 128

	// StorageDriverFile keeps the local store in a single JSON file
	StorageDriverFile = "file"
	// StorageDriverSQLite keeps the local store in a SQLite database
	StorageDriverSQLite = "sqlite"
	// StorageDriverRedis keeps the local store in Redis
	StorageDriverRedis = "redis"
	// StorageDriverMemory keeps the local store in process memory only
	StorageDriverMemory = "memory"
)

type Config struct {
	Backend BackendConfig
	Storage StorageConfig
	Admin   AdminConfig
	Server  ServerConfig
	Log     LogConfig
	App     AppConfig
}

type BackendConfig struct {
	BaseURL     string
	TimeoutSecs int
}

type StorageConfig struct {
	Driver    string
	Path      string
	RedisAddr string
	RedisDB   int
	KeyPrefix string
	CacheSize int
}

// AdminConfig holds the local admin credentials used when the backend cannot be reached.
type AdminConfig struct {
	Email    string
	Password string
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

type AppConfig struct {
	Language              string
	ContactLimitPerMinute int
	SeedSamples           bool
}

func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:     "http://localhost:8000/api",
			TimeoutSecs: DefaultBackendTimeoutSecs,
		},
		Storage: StorageConfig{
			Driver:    StorageDriverFile,
			Path:      "./agencysite_store.json",
			RedisAddr: "localhost:6379",
			KeyPrefix: "agencysite:",
			CacheSize: DefaultCacheSize,
		},
		Admin: AdminConfig{
			Email: "admin@agency.com",
		},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         DefaultServerPort,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			AllowOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		App: AppConfig{
			Language:              string(i18n.DefaultLocale),
			ContactLimitPerMinute: DefaultContactLimitPerMinute,
			SeedSamples:           true,
		},
	}
}

// BackendTimeout returns the per-call timeout applied by the HTTP client.
func (c *BackendConfig) BackendTimeout() time.Duration {
	if c.TimeoutSecs <= 0 {
		return DefaultBackendTimeoutSecs * time.Second
	}
	return time.Duration(c.TimeoutSecs) * time.Second
}
