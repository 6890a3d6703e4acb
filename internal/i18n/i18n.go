// Package i18n provides internationalization support for the kisan service.
// It handles translation of user-facing error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale or key is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "hi-IN,hi;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid username or password",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.city_required":        "City name is required",
			"error.crop_required":        "Crop name is required",
			"error.crop_not_found":       "Crop not found",
			"error.expense_not_found":    "Expense not found",
			"error.user_exists":          "Username or email already registered",
			"error.timeout":              "Request timed out",
		},
		"hi": {
			"error.invalid_request":      "अमान्य अनुरोध",
			"error.invalid_request_body": "अनुरोध की सामग्री अमान्य है",
			"error.internal_error":       "एक अप्रत्याशित त्रुटि हुई",
			"error.unauthorized":         "अनधिकृत",
			"error.invalid_credentials":  "अमान्य उपयोगकर्ता नाम या पासवर्ड",
			"error.forbidden":            "निषिद्ध",
			"error.not_found":            "नहीं मिला",
			"error.rate_limit_exceeded":  "बहुत अधिक अनुरोध, कृपया बाद में पुनः प्रयास करें",
			"error.invalid_token":        "अमान्य या समाप्त टोकन",
			"error.token_required":       "प्रमाणीकरण टोकन आवश्यक है",
			"error.city_required":        "शहर का नाम आवश्यक है",
			"error.crop_required":        "फसल का नाम आवश्यक है",
			"error.crop_not_found":       "फसल नहीं मिली",
			"error.expense_not_found":    "खर्च नहीं मिला",
			"error.user_exists":          "उपयोगकर्ता नाम या ईमेल पहले से पंजीकृत है",
			"error.timeout":              "अनुरोध का समय समाप्त हो गया",
		},
	}
}
