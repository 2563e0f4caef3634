package domain

import "time"

// Language codes supported by the content schema.
const (
	LangRU = "ru"
	LangHE = "he"
	LangEN = "en"
)

// SupportedLanguages lists the language codes in display order.
var SupportedLanguages = []string{LangRU, LangHE, LangEN}

// IsSupportedLanguage reports whether code is one of ru/he/en.
func IsSupportedLanguage(code string) bool {
	for _, lang := range SupportedLanguages {
		if lang == code {
			return true
		}
	}

	return false
}

// Component type constants stored in content_items.component_type.
const (
	ComponentOption         = "option"
	ComponentDropdownOption = "dropdown_option"
	ComponentText           = "text"
	ComponentDropdown       = "dropdown"
	ComponentPlaceholder    = "placeholder"
	ComponentLabel          = "label"
)

// Translation status constants.
const (
	TranslationApproved = "approved"
	TranslationDraft    = "draft"
)

// Translations holds the localized values of a content item.
type Translations struct {
	RU string `json:"ru"`
	HE string `json:"he"`
	EN string `json:"en,omitempty"`
}

// Get returns the value for a language code.
func (t Translations) Get(lang string) string {
	switch lang {
	case LangRU:
		return t.RU
	case LangHE:
		return t.HE
	case LangEN:
		return t.EN
	default:
		return ""
	}
}

// Set stores the value for a language code. Unknown codes are ignored.
func (t *Translations) Set(lang, value string) {
	switch lang {
	case LangRU:
		t.RU = value
	case LangHE:
		t.HE = value
	case LangEN:
		t.EN = value
	}
}

// Languages returns the language codes that carry a non-empty value.
func (t Translations) Languages() []string {
	langs := make([]string, 0, len(SupportedLanguages))

	for _, lang := range SupportedLanguages {
		if t.Get(lang) != "" {
			langs = append(langs, lang)
		}
	}

	return langs
}

// ContentItem is one row of content_items joined with its approved translations.
type ContentItem struct {
	ID             int64        `json:"id"`
	ContentKey     string       `json:"content_key"`
	ComponentType  string       `json:"component_type"`
	ScreenLocation string       `json:"screen_location"`
	Category       string       `json:"category,omitempty"`
	IsActive       bool         `json:"is_active"`
	Translations   Translations `json:"translations"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Language describes a row of the languages table.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Direction  string `json:"direction"`
	IsActive   bool   `json:"is_active"`
	IsDefault  bool   `json:"is_default"`
}
