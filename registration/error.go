package registration

import "fmt"

type ErrorReason string

const (
	REASON_VALIDATION_FAILED               ErrorReason = "VALIDATION_FAILED"
	REASON_ASSOCIATED_EVENT_DOES_NOT_EXIST ErrorReason = "ASSOCIATED_EVENT_DOES_NOT_EXIST"
	REASON_REGISTRATION_CLOSED             ErrorReason = "REGISTRATION_CLOSED"
	REASON_TEAM_SIZE_NOT_ALLOWED           ErrorReason = "TEAM_SIZE_NOT_ALLOWED"
	REASON_REGISTRATION_ALREADY_EXISTS     ErrorReason = "REGISTRATION_ALREADY_EXISTS"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
	REASON_INVALID_CURSOR                  ErrorReason = "INVALID_CURSOR"
	REASON_INVALID_TOKEN                   ErrorReason = "INVALID_TOKEN"
	REASON_EXPIRED_TOKEN                   ErrorReason = "EXPIRED_TOKEN"
)

type Error struct {
	Reason  ErrorReason
	Message string
	// Field is set for validation failures: the first field that failed.
	Field string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewValidationFailedError(field, message string) *Error {
	return &Error{
		Reason:  REASON_VALIDATION_FAILED,
		Message: message,
		Field:   field,
	}
}

func NewAssociatedEventDoesNotExistError(message string, cause error) *Error {
	return newRegistrationError(REASON_ASSOCIATED_EVENT_DOES_NOT_EXIST, message, cause)
}

func NewRegistrationClosedError(message string) *Error {
	return newRegistrationError(REASON_REGISTRATION_CLOSED, message, nil)
}

func NewTeamSizeNotAllowedError(memberCount, minMembers, maxMembers int) *Error {
	return newRegistrationError(REASON_TEAM_SIZE_NOT_ALLOWED,
		fmt.Sprintf("Team members must be within %d and %d. Got %d", minMembers, maxMembers, memberCount), nil)
}

func NewRegistrationAlreadyExistsError(message string, cause error) *Error {
	return newRegistrationError(REASON_REGISTRATION_ALREADY_EXISTS, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}

func NewInvalidCursorError(message string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_CURSOR, message, cause)
}

func NewInvalidTokenError(message string, cause error) *Error {
	return newRegistrationError(REASON_INVALID_TOKEN, message, cause)
}

func NewExpiredTokenError(message string) *Error {
	return newRegistrationError(REASON_EXPIRED_TOKEN, message, nil)
}
