// Package i18n provides the bilingual (English/Arabic) translation store and the
// process-wide language state that drives text direction.
package i18n

import (
	"errors"
	"fmt"
)

// Locale is a supported display language.
type Locale string

const (
	// English is the default, left-to-right locale
	English Locale = "en"
	// Arabic is the right-to-left locale
	Arabic Locale = "ar"

	// DefaultLocale is used when nothing has been persisted
	DefaultLocale = English
)

// ErrUnsupportedLocale is returned for any locale other than en or ar.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// ParseLocale validates s against the supported locales. It never defaults.
func ParseLocale(s string) (Locale, error) {
	switch Locale(s) {
	case English, Arabic:
		return Locale(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
	}
}

// SupportedLocales returns the locales in display order.
func SupportedLocales() []Locale {
	return []Locale{English, Arabic}
}

// IsRTL reports whether the locale is written right to left.
func (l Locale) IsRTL() bool {
	return l == Arabic
}

// Dir returns the document direction attribute for the locale.
func (l Locale) Dir() string {
	if l.IsRTL() {
		return "rtl"
	}
	return "ltr"
}

// Pick resolves a bilingual field: the Arabic variant wins only for the Arabic
// locale and only when it is non-empty.
func Pick(locale Locale, en, ar string) string {
	if locale == Arabic && ar != "" {
		return ar
	}
	return en
}

// Localizer provides flat, formatted messages (API errors, status lines).
type Localizer struct {
	locale   Locale
	messages map[string]string
}

// NewLocalizer creates a new localizer for the specified locale
func NewLocalizer(locale Locale) *Localizer {
	return &Localizer{
		locale:   locale,
		messages: getMessages(locale),
	}
}

// T translates a message key, with optional parameters for formatting
func (l *Localizer) T(key string, args ...interface{}) string {
	if message, exists := l.messages[key]; exists {
		if len(args) > 0 {
			return fmt.Sprintf(message, args...)
		}
		return message
	}

	if l.locale != DefaultLocale {
		if fallbackMessage, exists := getMessages(DefaultLocale)[key]; exists {
			if len(args) > 0 {
				return fmt.Sprintf(fallbackMessage, args...)
			}
			return fallbackMessage
		}
	}

	return key
}

func getMessages(locale Locale) map[string]string {
	switch locale {
	case Arabic:
		return arabicMessages
	default:
		return englishMessages
	}
}

// TreeFor returns the full translation tree for a locale. Unknown locales get
// the default tree; callers are expected to have validated with ParseLocale.
func TreeFor(locale Locale) *Tree {
	if locale == Arabic {
		return &arabicTree
	}
	return &englishTree
}
