package service

import (
	"regexp"
	"strings"

	"github.com/casadulce/storefront/internal/i18n"
)

// Authoritative patterns for the strict validation tier. The email must have
// a single user@domain shape with a dotted domain; the phone allows an
// optional leading +, then at least ten digits, spaces, hyphens, or
// parentheses (checked after stripping whitespace).
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// validateField returns the i18n message key for a failed rule, or "" when
// the value passes. The items field is validated by item count, all other
// fields by value.
func validateField(field, value string, itemCount int) string {
	switch field {
	case "name":
		if strings.TrimSpace(value) == "" || len([]rune(strings.TrimSpace(value))) < 2 {
			return i18n.ErrKeyValidationName
		}
	case "email":
		if value == "" {
			return i18n.ErrKeyValidationEmailRequired
		}
		if !emailPattern.MatchString(value) {
			return i18n.ErrKeyValidationEmail
		}
	case "phone":
		if value == "" {
			return i18n.ErrKeyValidationPhoneRequired
		}
		stripped := whitespace.ReplaceAllString(value, "")
		if !phonePattern.MatchString(stripped) {
			return i18n.ErrKeyValidationPhone
		}
	case "items":
		if itemCount == 0 {
			return i18n.ErrKeyValidationItems
		}
	}
	return ""
}

// requiredCustomerFields are the customer fields checked by full-form
// validation, in error-reporting order.
var requiredCustomerFields = []string{"name", "email", "phone"}
