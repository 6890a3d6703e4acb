// Package i18n provides internationalization support for the kisan service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyCityRequired indicates a missing city query parameter.
	ErrKeyCityRequired = "error.city_required"
	// ErrKeyCropRequired indicates a missing crop query parameter.
	ErrKeyCropRequired = "error.crop_required"
	// ErrKeyCropNotFound indicates an unknown crop ID.
	ErrKeyCropNotFound = "error.crop_not_found"
	// ErrKeyExpenseNotFound indicates an unknown expense ID.
	ErrKeyExpenseNotFound = "error.expense_not_found"
	// ErrKeyUserExists indicates a duplicate registration attempt.
	ErrKeyUserExists = "error.user_exists"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)
