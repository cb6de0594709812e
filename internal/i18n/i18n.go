// Package i18n provides internationalization support for the storefront.
// It handles translation of user-facing validation and submission messages.
package i18n

import "sync"

// DefaultLocale is the storefront's default language (Spanish).
const DefaultLocale = "es"

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

// Supported reports whether the locale has its own message catalog.
func (t *Translator) Supported(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"es": {
			// Validation messages
			"error.validation.name":           "El nombre debe tener al menos 2 caracteres",
			"error.validation.email_required": "El email es requerido",
			"error.validation.email":          "El email no tiene un formato válido",
			"error.validation.phone_required": "El teléfono es requerido",
			"error.validation.phone":          "El teléfono no tiene un formato válido",
			"error.validation.items":          "Debe agregar al menos un producto al pedido",

			// Submission messages
			"error.form_invalid":      "Por favor, corrige los errores en el formulario",
			"error.submit_in_flight":  "Ya hay un envío en curso",
			"error.already_submitted": "El pedido ya fue enviado",
			"error.submit_failed":     "Error al enviar el pedido",
			"success.order_submitted": "Pedido enviado con éxito",
		},
		"en": {
			// Validation messages
			"error.validation.name":           "Name must be at least 2 characters",
			"error.validation.email_required": "Email is required",
			"error.validation.email":          "Email is not valid",
			"error.validation.phone_required": "Phone is required",
			"error.validation.phone":          "Phone is not valid",
			"error.validation.items":          "You must add at least one product to the order",

			// Submission messages
			"error.form_invalid":      "Please correct the errors in the form",
			"error.submit_in_flight":  "A submission is already in progress",
			"error.already_submitted": "The order has already been submitted",
			"error.submit_failed":     "Failed to submit the order",
			"success.order_submitted": "Order submitted successfully",
		},
	}
}
