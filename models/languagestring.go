package models

import (
	"github.com/pkg/errors"
)

// Supported language codes
const (
	LanguageBokmal  = "nb"
	LanguageNynorsk = "nn"
	LanguageEnglish = "en"
)

// LanguageStringTypeItem is the text of a string in one language
type LanguageStringTypeItem struct {
	LanguageCode string `json:"languageCode"`
	LanguageText string `json:"languageText"`
}

// LanguageStringType holds the same string in several languages, in the order given
type LanguageStringType []LanguageStringTypeItem

// Text returns the text for the given language code
func (l LanguageStringType) Text(code string) (string, bool) {
	for _, item := range l {
		if item.LanguageCode == code {
			return item.LanguageText, true
		}
	}
	return "", false
}

// Validate checks every item uses a supported language code, at most once
func (l LanguageStringType) Validate() error {
	seen := make(map[string]bool, len(l))
	for _, item := range l {
		switch item.LanguageCode {
		case LanguageBokmal, LanguageNynorsk, LanguageEnglish:
		default:
			return errors.Wrapf(ErrInvalidValue, "language code %q", item.LanguageCode)
		}
		if seen[item.LanguageCode] {
			return errors.Wrapf(ErrInvalidValue, "duplicate language code %q", item.LanguageCode)
		}
		seen[item.LanguageCode] = true
	}
	return nil
}
