package i18n

import (
	"golang.org/x/text/language"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Arabic,
})

// MatchAcceptLanguage maps an Accept-Language header onto a supported locale.
func MatchAcceptLanguage(header string) Locale {
	if header == "" {
		return DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return SupportedLocales()[index]
}
