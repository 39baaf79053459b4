package i18n

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"
)

// TestI18nCompleteness verifies that all locales contain all flat message keys
func TestI18nCompleteness(t *testing.T) {
	referenceMessages := getMessages(DefaultLocale)
	if len(referenceMessages) == 0 {
		t.Fatal("No reference messages found in default locale")
	}

	var referenceKeys []string
	for key := range referenceMessages {
		referenceKeys = append(referenceKeys, key)
	}
	sort.Strings(referenceKeys)

	for _, locale := range SupportedLocales() {
		t.Run("Locale_"+string(locale), func(t *testing.T) {
			messages := getMessages(locale)

			var missingKeys []string
			for _, refKey := range referenceKeys {
				if _, exists := messages[refKey]; !exists {
					missingKeys = append(missingKeys, refKey)
				}
			}

			var extraKeys []string
			for key := range messages {
				if _, exists := referenceMessages[key]; !exists {
					extraKeys = append(extraKeys, key)
				}
			}

			if len(missingKeys) > 0 {
				t.Errorf("Locale %s is missing %d keys: %v", locale, len(missingKeys), missingKeys)
			}
			if len(extraKeys) > 0 {
				t.Errorf("Locale %s has %d keys not in reference: %v", locale, len(extraKeys), extraKeys)
			}
		})
	}
}

// TestTreeCompleteness walks every translation tree and fails on empty strings
func TestTreeCompleteness(t *testing.T) {
	for _, locale := range SupportedLocales() {
		t.Run("Locale_"+string(locale), func(t *testing.T) {
			var empty []string
			collectEmpty(reflect.ValueOf(*TreeFor(locale)), "", &empty)
			if len(empty) > 0 {
				t.Errorf("Locale %s has empty translations: %v", locale, empty)
			}
		})
	}
}

func collectEmpty(v reflect.Value, path string, empty *[]string) {
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			collectEmpty(v.Field(i), path+"."+v.Type().Field(i).Name, empty)
		}
	case reflect.String:
		if v.String() == "" {
			*empty = append(*empty, path)
		}
	}
}

func TestTreesDiffer(t *testing.T) {
	if TreeFor(English).Nav.Home == TreeFor(Arabic).Nav.Home {
		t.Error("Arabic tree should not reuse English navigation labels")
	}
}

// TestI18nKeyConsistency verifies that all message keys follow expected patterns
func TestI18nKeyConsistency(t *testing.T) {
	expectedPrefixes := []string{"error.", "success.", "status."}

	for key := range getMessages(DefaultLocale) {
		hasValidPrefix := false
		for _, prefix := range expectedPrefixes {
			if strings.HasPrefix(key, prefix) && len(key) > len(prefix) {
				hasValidPrefix = true
				break
			}
		}

		if !hasValidPrefix {
			t.Errorf("Message key '%s' does not follow expected naming convention (should start with one of: %v)",
				key, expectedPrefixes)
		}
	}
}

func TestLocalizerFunctionality(t *testing.T) {
	localizer := NewLocalizer(English)

	result := localizer.T("error.generic")
	if result == "" || result == "error.generic" {
		t.Errorf("Expected translated message for 'error.generic', got: %s", result)
	}

	nonExistentKey := "this.key.does.not.exist"
	if result = localizer.T(nonExistentKey); result != nonExistentKey {
		t.Errorf("Expected fallback to key name for non-existent key, got: %s", result)
	}

	result = localizer.T("error.project_not_found", "42")
	if expected := "Project 42 was not found."; result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}

	arabic := NewLocalizer(Arabic)
	if got := arabic.T("error.generic"); got == localizer.T("error.generic") {
		t.Errorf("Expected Arabic message for 'error.generic', got English: %s", got)
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input   string
		want    Locale
		wantErr bool
	}{
		{"en", English, false},
		{"ar", Arabic, false},
		{"", "", true},
		{"fr", "", true},
		{"AR", "", true},
		{"en-US", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLocale(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedLocale) {
					t.Errorf("ParseLocale(%q) error = %v, expected ErrUnsupportedLocale", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLocale(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLocale(%q) = %q, expected %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLocaleDirection(t *testing.T) {
	if English.IsRTL() || English.Dir() != "ltr" {
		t.Errorf("English direction = %q, expected ltr", English.Dir())
	}
	if !Arabic.IsRTL() || Arabic.Dir() != "rtl" {
		t.Errorf("Arabic direction = %q, expected rtl", Arabic.Dir())
	}
}

func TestPick(t *testing.T) {
	tests := []struct {
		name     string
		locale   Locale
		en, ar   string
		expected string
	}{
		{"english ignores arabic", English, "Sara", "سارة", "Sara"},
		{"arabic uses arabic", Arabic, "Sara", "سارة", "سارة"},
		{"arabic empty falls back", Arabic, "Sara", "", "Sara"},
		{"english with empty arabic", English, "Sara", "", "Sara"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pick(tt.locale, tt.en, tt.ar); got != tt.expected {
				t.Errorf("Pick() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	tests := []struct {
		header   string
		expected Locale
	}{
		{"", English},
		{"ar", Arabic},
		{"ar-SA,ar;q=0.9,en;q=0.8", Arabic},
		{"en-GB,en;q=0.9", English},
		{"fr-FR", English},
		{"not a header;;", English},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := MatchAcceptLanguage(tt.header); got != tt.expected {
				t.Errorf("MatchAcceptLanguage(%q) = %q, expected %q", tt.header, got, tt.expected)
			}
		})
	}
}

// BenchmarkLocalizer benchmarks the localization performance
func BenchmarkLocalizer(b *testing.B) {
	localizer := NewLocalizer(DefaultLocale)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = localizer.T("error.generic")
	}
}
