// Package i18n provides internationalization support for the storefront.
package i18n

// Validation message translation keys.
const (
	// ErrKeyValidationName indicates a name shorter than two characters.
	ErrKeyValidationName = "error.validation.name"
	// ErrKeyValidationEmailRequired indicates a missing email.
	ErrKeyValidationEmailRequired = "error.validation.email_required"
	// ErrKeyValidationEmail indicates a malformed email.
	ErrKeyValidationEmail = "error.validation.email"
	// ErrKeyValidationPhoneRequired indicates a missing phone number.
	ErrKeyValidationPhoneRequired = "error.validation.phone_required"
	// ErrKeyValidationPhone indicates a malformed phone number.
	ErrKeyValidationPhone = "error.validation.phone"
	// ErrKeyValidationItems indicates an order with no items.
	ErrKeyValidationItems = "error.validation.items"
)

// Submission message translation keys.
const (
	// ErrKeyFormInvalid indicates the form has validation errors blocking submission.
	ErrKeyFormInvalid = "error.form_invalid"
	// ErrKeySubmitInFlight indicates a submission is already in progress.
	ErrKeySubmitInFlight = "error.submit_in_flight"
	// ErrKeyAlreadySubmitted indicates the form was already submitted successfully.
	ErrKeyAlreadySubmitted = "error.already_submitted"
	// ErrKeySubmitFailed indicates an unexpected submission failure.
	ErrKeySubmitFailed = "error.submit_failed"
	// SuccessKeyOrderSubmitted indicates the order was submitted successfully.
	SuccessKeyOrderSubmitted = "success.order_submitted"
)
