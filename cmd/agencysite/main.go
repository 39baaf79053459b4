// Package main provides the agencysite CLI application entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"agencysite/internal/api"
	"agencysite/internal/auth"
	"agencysite/internal/contact"
	"agencysite/internal/core"
	"agencysite/internal/flood"
	httpserver "agencysite/internal/http"
	"agencysite/internal/i18n"
	"agencysite/internal/projects"
	"agencysite/internal/store"
	"agencysite/internal/testimonials"
)

const (
	defaultServerHost = "0.0.0.0"
	envPrefix         = "AGENCYSITE"
)

var (
	cfgFile string
	config  *core.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "agencysite",
	Short: "agencysite - bilingual agency site content core",
	Long: `agencysite serves a bilingual (English/Arabic) agency site. Projects, testimonials and
admin sessions come from the backend API and fall back to local storage when it is unreachable.`,
	RunE: runAgencySite,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := core.DefaultConfig()
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&cfgFile, "config", "", "config file (default is .env)")
	flags.String("log-level", defaults.Log.Level, "log level (debug, info, warn, error)")
	flags.String("log-format", defaults.Log.Format, "log format (json, text)")
	flags.String("backend-url", defaults.Backend.BaseURL, "Backend API base URL (empty runs from local storage only)")
	flags.Int("backend-timeout-secs", defaults.Backend.TimeoutSecs, "Timeout for a single backend call in seconds")
	flags.String("storage-driver", defaults.Storage.Driver, "Local storage driver (file, sqlite, redis, memory)")
	flags.String("storage-path", defaults.Storage.Path, "Path used by the file and sqlite storage drivers")
	flags.String("redis-addr", defaults.Storage.RedisAddr, "Redis address for the redis storage driver")
	flags.Int("redis-db", defaults.Storage.RedisDB, "Redis database for the redis storage driver")
	flags.String("key-prefix", defaults.Storage.KeyPrefix, "Key prefix for the redis storage driver")
	flags.Int("cache-size", defaults.Storage.CacheSize, "Number of storage values kept in the read cache (0 disables)")
	flags.String("admin-email", defaults.Admin.Email, "Admin email accepted when the backend is unreachable")
	flags.String("admin-password", "", "Admin password accepted when the backend is unreachable")
	flags.String("server-host", defaultServerHost, "HTTP server host")
	flags.Int("server-port", defaults.Server.Port, "HTTP server port")
	flags.StringSlice("allow-origins", defaults.Server.AllowOrigins, "CORS origins allowed on the API")
	supportedLangs := joinLocales(i18n.SupportedLocales())
	flags.String("language", string(i18n.DefaultLocale),
		fmt.Sprintf("Initial site language when none is persisted (%s)", supportedLangs))
	flags.Int("contact-limit-per-minute", defaults.App.ContactLimitPerMinute,
		"Maximum contact submissions per client per minute")
	flags.Bool("seed-samples", defaults.App.SeedSamples, "Seed sample projects into an empty local store")
	flags.Bool("generate-env-example", false, "Generate .env.example file from current configuration and exit")

	if err := viper.BindPFlags(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind flags: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	envFile := ".env"
	if cfgFile != "" {
		envFile = cfgFile
	}

	if err := gotenv.Load(envFile); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	config = buildConfig()
	logger = buildLogger(config.Log.Level, config.Log.Format)
}

func buildConfig() *core.Config {
	cfg := core.DefaultConfig()

	configureBackend(cfg)
	configureStorage(cfg)
	configureServer(cfg)
	configureApp(cfg)

	cfg.Admin.Email = viper.GetString("admin-email")
	cfg.Admin.Password = viper.GetString("admin-password")
	cfg.Log.Level = viper.GetString("log-level")
	cfg.Log.Format = viper.GetString("log-format")

	return cfg
}

func configureBackend(cfg *core.Config) {
	cfg.Backend.BaseURL = strings.TrimRight(viper.GetString("backend-url"), "/")
	cfg.Backend.TimeoutSecs = viper.GetInt("backend-timeout-secs")
	if cfg.Backend.TimeoutSecs <= 0 {
		fmt.Printf("Warning: Invalid backend timeout (%d), using default (%d)\n",
			cfg.Backend.TimeoutSecs, core.DefaultBackendTimeoutSecs)
		cfg.Backend.TimeoutSecs = core.DefaultBackendTimeoutSecs
	}
}

func configureStorage(cfg *core.Config) {
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage-driver"))
	cfg.Storage.Path = viper.GetString("storage-path")
	cfg.Storage.RedisAddr = viper.GetString("redis-addr")
	cfg.Storage.RedisDB = viper.GetInt("redis-db")
	cfg.Storage.KeyPrefix = viper.GetString("key-prefix")
	cfg.Storage.CacheSize = viper.GetInt("cache-size")
	if cfg.Storage.CacheSize < 0 {
		cfg.Storage.CacheSize = 0
	}
}

func configureServer(cfg *core.Config) {
	cfg.Server.Host = viper.GetString("server-host")
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultServerHost
	}
	cfg.Server.Port = viper.GetInt("server-port")
	cfg.Server.AllowOrigins = viper.GetStringSlice("allow-origins")
}

func configureApp(cfg *core.Config) {
	cfg.App.Language = viper.GetString("language")
	if _, err := i18n.ParseLocale(cfg.App.Language); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Unsupported language '%s', falling back to '%s'. Supported languages: %s\n",
			cfg.App.Language, i18n.DefaultLocale, joinLocales(i18n.SupportedLocales()))
		cfg.App.Language = string(i18n.DefaultLocale)
	}

	cfg.App.ContactLimitPerMinute = viper.GetInt("contact-limit-per-minute")
	if cfg.App.ContactLimitPerMinute <= 0 {
		cfg.App.ContactLimitPerMinute = core.DefaultContactLimitPerMinute
	}
	cfg.App.SeedSamples = viper.GetBool("seed-samples")
}

func joinLocales(locales []i18n.Locale) string {
	names := make([]string, len(locales))
	for i, locale := range locales {
		names[i] = string(locale)
	}
	return strings.Join(names, ", ")
}

func buildLogger(level, format string) *zap.Logger {
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if strings.EqualFold(format, "text") {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	builtLogger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to build logger: %v", err))
	}

	return builtLogger
}

func runAgencySite(cmd *cobra.Command, _ []string) error {
	if viper.GetBool("generate-env-example") {
		return generateEnvExample(cmd)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("Starting agencysite",
		zap.String("version", "1.0.0"),
		zap.String("backend_url", config.Backend.BaseURL),
		zap.String("storage_driver", config.Storage.Driver),
		zap.String("language", config.App.Language))

	if err := validateConfig(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if !strings.EqualFold(config.Log.Level, "debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	svcs, err := initializeServices(ctx)
	if err != nil {
		return err
	}
	defer svcs.close()

	return runServices(ctx, svcs)
}

type services struct {
	storage    io.Closer
	floodgate  *flood.Floodgate
	provider   *projects.Provider
	httpServer *httpserver.Server
}

func (s *services) close() {
	s.floodgate.Stop()
	if err := s.storage.Close(); err != nil {
		logger.Debug("Failed to close local storage", zap.Error(err))
	}
}

func initializeServices(ctx context.Context) (*services, error) {
	kv, closer, err := store.Open(&config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	client := api.NewClient(&config.Backend, kv, logger.Named("api"))

	document := i18n.NewDocument()
	language, err := initializeLanguage(ctx, kv, document)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := httpserver.NewMetrics(registry)

	opts := []projects.Option{
		projects.WithLogger(logger.Named("projects")),
		projects.WithRecorder(metrics),
	}
	if !config.App.SeedSamples {
		opts = append(opts, projects.WithSeed(nil))
	}

	// A nil interface value keeps the provider in local mode from the start.
	var backend projects.Backend
	if config.Backend.BaseURL != "" {
		backend = projects.NewService(client)
	}
	provider := projects.NewProvider(ctx, backend, kv, opts...)

	floodgate := flood.New(config.App.ContactLimitPerMinute)

	deps := httpserver.Deps{
		Language:     language,
		Document:     document,
		Projects:     provider,
		Testimonials: testimonials.NewService(client, logger.Named("testimonials")),
		Auth:         auth.NewService(client, config.Admin, logger.Named("auth")),
		Contact:      contact.NewService(client, floodgate, logger.Named("contact")),
		Floodgate:    floodgate,
		Metrics:      metrics,
		Gatherer:     registry,
	}

	return &services{
		storage:    closer,
		floodgate:  floodgate,
		provider:   provider,
		httpServer: httpserver.NewServer(&config.Server, deps, logger.Named("http")),
	}, nil
}

// initializeLanguage restores the persisted locale and applies the configured
// one only when nothing was stored yet.
func initializeLanguage(ctx context.Context, kv store.KV, document *i18n.Document) (*i18n.LanguageContext, error) {
	_, persisted, err := kv.Get(ctx, i18n.StorageKey)
	if err != nil {
		logger.Warn("Failed to read persisted locale", zap.Error(err))
	}

	language := i18n.NewLanguageContext(ctx, kv, document, logger.Named("i18n"))
	if persisted || err != nil {
		return language, nil
	}

	locale, err := i18n.ParseLocale(config.App.Language)
	if err != nil {
		return nil, err
	}
	if locale == language.Locale() {
		return language, nil
	}
	if err := language.SetLocale(ctx, locale); err != nil {
		return nil, fmt.Errorf("failed to apply initial language: %w", err)
	}
	return language, nil
}

func runServices(ctx context.Context, svcs *services) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return svcs.httpServer.Start(gCtx)
	})

	logger.Info("agencysite started successfully",
		zap.String("http_addr", fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)),
		zap.String("projects_mode", svcs.provider.Mode().String()))

	if err := g.Wait(); err != nil {
		logger.Error("agencysite stopped with error", zap.Error(err))
		return err
	}

	logger.Info("agencysite stopped gracefully")
	return nil
}

func validateConfig() error {
	if err := validateStorageConfig(); err != nil {
		return err
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Admin.Password == "" {
		logger.Warn("No admin password configured, local admin login is disabled")
	}

	return nil
}

func validateStorageConfig() error {
	switch config.Storage.Driver {
	case core.StorageDriverFile, core.StorageDriverSQLite:
		if config.Storage.Path == "" {
			return fmt.Errorf("storage path is required for the %s driver", config.Storage.Driver)
		}
	case core.StorageDriverRedis:
		if config.Storage.RedisAddr == "" {
			return fmt.Errorf("redis address is required for the redis driver")
		}
	case core.StorageDriverMemory:
		logger.Warn("Memory storage driver selected, local changes are lost on restart")
	default:
		return fmt.Errorf("unknown storage driver: %s", config.Storage.Driver)
	}
	return nil
}
