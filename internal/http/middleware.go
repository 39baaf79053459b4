package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"agencysite/internal/auth"
	"agencysite/internal/i18n"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
	localeKey       = "locale"
)

type requestIDContextKey struct{}

// RequestIDFrom returns the id the request-id middleware assigned.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if strings.TrimSpace(rid) == "" {
			rid = uuid.NewString()
		}

		c.Set(requestIDKey, rid)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), requestIDContextKey{}, rid))
		c.Writer.Header().Set(requestIDHeader, rid)

		c.Next()
	}
}

func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("API request",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func metricsMiddleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start).Seconds())
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader, "Retry-After", "Content-Language"},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range origins {
		if origin == "*" {
			config.AllowAllOrigins = true
			return cors.New(config)
		}
	}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
		return cors.New(config)
	}

	config.AllowOrigins = origins
	return cors.New(config)
}

// languageMiddleware installs the site language context and resolves the
// locale for this request: ?lang= wins, otherwise the persisted site locale.
func languageMiddleware(lc *i18n.LanguageContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(i18n.WithLanguage(c.Request.Context(), lc))

		locale := lc.Locale()
		if override := c.Query("lang"); override != "" {
			locale = i18n.MatchAcceptLanguage(override)
		}
		c.Set(localeKey, locale)
		c.Header("Content-Language", string(locale))

		c.Next()
	}
}

func requestLocale(c *gin.Context) i18n.Locale {
	if v, ok := c.Get(localeKey); ok {
		if locale, ok := v.(i18n.Locale); ok {
			return locale
		}
	}
	return i18n.FromContext(c.Request.Context()).Locale()
}

// requireAdmin only lets through requests carrying the stored admin token.
func requireAdmin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if !svc.Verify(c.Request.Context(), token) {
			abortWithError(c, http.StatusUnauthorized, "error.unauthorized")
			return
		}
		c.Next()
	}
}

func abortWithError(c *gin.Context, status int, key string, args ...interface{}) {
	message := i18n.NewLocalizer(requestLocale(c)).T(key, args...)
	c.AbortWithStatusJSON(status, gin.H{"ok": false, "error": message})
}
