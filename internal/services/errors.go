package services

// The three request-attributable failure classes. Handlers map them to 400,
// 404 and 401; anything else is an unexpected error and surfaces as a
// generic 500 with the detail logged server-side.

type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (err *ValidationError) Error() string {
	return err.Message
}

type NotFoundError struct {
	Message string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (err *NotFoundError) Error() string {
	return err.Message
}

type AuthError struct {
	Message string
}

func NewAuthError(message string) *AuthError {
	return &AuthError{Message: message}
}

func (err *AuthError) Error() string {
	return err.Message
}
