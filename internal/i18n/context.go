package i18n

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// StorageKey is the durable storage key holding the persisted locale.
const StorageKey = "language"

// Storage is the durable key/value store the language choice is persisted in.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// AttributeSetter receives document-level attributes (lang, dir).
type AttributeSetter interface {
	SetAttribute(name, value string)
}

// LanguageContext is the single source of truth for the active locale. It is
// built once at startup and handed to every consumer.
type LanguageContext struct {
	// setMu serializes SetLocale so the persisted value, the document and
	// the in-memory locale always move together.
	setMu    sync.Mutex
	mu       sync.RWMutex
	locale   Locale
	storage  Storage
	document AttributeSetter
	logger   *zap.Logger
}

// NewLanguageContext restores the persisted locale (or the default) and applies
// the document attributes once, so a direct load in either locale renders with
// the right direction.
func NewLanguageContext(ctx context.Context, storage Storage, document AttributeSetter,
	logger *zap.Logger) *LanguageContext {
	if logger == nil {
		logger = zap.NewNop()
	}

	lc := &LanguageContext{
		locale:   DefaultLocale,
		storage:  storage,
		document: document,
		logger:   logger,
	}

	if storage != nil {
		raw, ok, err := storage.Get(ctx, StorageKey)
		switch {
		case err != nil:
			logger.Warn("Failed to read persisted locale, using default", zap.Error(err))
		case ok:
			if locale, parseErr := ParseLocale(raw); parseErr == nil {
				lc.locale = locale
			} else {
				logger.Warn("Ignoring invalid persisted locale", zap.String("value", raw))
			}
		}
	}

	lc.applyDocument(lc.locale)
	return lc
}

// Locale returns the active locale.
func (lc *LanguageContext) Locale() Locale {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	return lc.locale
}

// SetLocale validates and persists the locale, then switches the in-memory
// state and the document attributes. A failed persist changes nothing. Only en
// and ar are accepted.
func (lc *LanguageContext) SetLocale(ctx context.Context, locale Locale) error {
	if _, err := ParseLocale(string(locale)); err != nil {
		return err
	}

	lc.setMu.Lock()
	defer lc.setMu.Unlock()

	if lc.storage != nil {
		if err := lc.storage.Set(ctx, StorageKey, string(locale)); err != nil {
			return fmt.Errorf("failed to persist locale: %w", err)
		}
	}

	lc.mu.Lock()
	lc.locale = locale
	lc.applyDocument(locale)
	lc.mu.Unlock()

	lc.logger.Debug("Locale changed", zap.String("locale", string(locale)))
	return nil
}

// Translate returns the full translation tree for the active locale.
func (lc *LanguageContext) Translate() *Tree {
	return TreeFor(lc.Locale())
}

// IsRTL reports whether the active locale is Arabic.
func (lc *LanguageContext) IsRTL() bool {
	return lc.Locale() == Arabic
}

// Localizer returns a flat-message localizer for the active locale.
func (lc *LanguageContext) Localizer() *Localizer {
	return NewLocalizer(lc.Locale())
}

func (lc *LanguageContext) applyDocument(locale Locale) {
	if lc.document == nil {
		return
	}
	lc.document.SetAttribute("dir", locale.Dir())
	lc.document.SetAttribute("lang", string(locale))
}

// Document holds the root document attributes rendered into every page.
type Document struct {
	mu    sync.RWMutex
	attrs map[string]string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{attrs: make(map[string]string)}
}

func (d *Document) SetAttribute(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attrs[name] = value
}

func (d *Document) Attribute(name string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.attrs[name]
}

func (d *Document) Lang() string { return d.Attribute("lang") }

func (d *Document) Dir() string { return d.Attribute("dir") }

type contextKey struct{}

// WithLanguage installs lc into ctx for request-scoped consumers.
func WithLanguage(ctx context.Context, lc *LanguageContext) context.Context {
	return context.WithValue(ctx, contextKey{}, lc)
}

// FromContext returns the installed language context. Calling it outside a
// scope set up by WithLanguage is a programming error and panics.
func FromContext(ctx context.Context) *LanguageContext {
	lc, ok := ctx.Value(contextKey{}).(*LanguageContext)
	if !ok || lc == nil {
		panic("i18n: FromContext called without a LanguageContext; wrap the handler with WithLanguage")
	}
	return lc
}
