package domain

import "strings"

// Language is a supported UI locale.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Direction is the text direction a locale renders in.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// ParseLanguage maps a locale string ("ar", "ar-SA", "EN") to a supported Language.
// Anything unrecognized falls back to English.
func ParseLanguage(s string) Language {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "ar" || strings.HasPrefix(s, "ar-") || strings.HasPrefix(s, "ar_") {
		return LanguageArabic
	}
	return LanguageEnglish
}

// Direction returns the text direction for the language.
func (l Language) Direction() Direction {
	if l == LanguageArabic {
		return DirectionRTL
	}
	return DirectionLTR
}

// Localize picks the value to display for a bilingual field.
// The Arabic value wins only for an Arabic locale, when it is present and
// differs from the English value.
func Localize(en, ar string, lang Language) string {
	if lang == LanguageArabic && ar != "" && ar != en {
		return ar
	}
	return en
}

// Text is a bilingual label.
type Text struct {
	En string
	Ar string
}

// In returns the label for lang using the Localize rule.
func (t Text) In(lang Language) string {
	return Localize(t.En, t.Ar, lang)
}
