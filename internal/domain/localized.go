package domain

// Language is one of the two interface languages supported by the app.
type Language string

// Supported languages. The "rus" token is the persisted form and must not
// change, or stored settings would stop matching.
const (
	LanguageEN Language = "en"
	LanguageRU Language = "rus"
)

// Valid reports whether the language is one of the supported values.
func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguageRU
}

// Theme is the UI color scheme preference.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the theme is one of the supported values.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// LocalizedText is a bilingual string pair.
type LocalizedText struct {
	EN string `json:"en"`
	RU string `json:"rus"`
}

// In returns the text for the given language, falling back to English
// for anything unrecognized.
func (t LocalizedText) In(lang Language) string {
	if lang == LanguageRU {
		return t.RU
	}
	return t.EN
}
