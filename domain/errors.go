package domain

import "errors"

// Kind classifies an operational error so the HTTP boundary can render it
// uniformly. Anything that is not operational is treated as internal and its
// details are hidden in a production posture.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindDelivery
)

// Error is a typed operational error carrying a status classification and a
// message safe to show to callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// E builds an operational error of the given kind.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause to an operational error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the classification of err, or KindInternal for
// non-operational errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsOperational reports whether err was deliberately constructed for a caller.
func IsOperational(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// Authentication errors
var (
	ErrUserNotFound       = E(KindNotFound, "there is no user with that ID")
	ErrInvalidCredentials = E(KindAuthentication, "incorrect email or password")
	ErrEmailTaken         = E(KindConflict, "your email value is already exist, try again with another one")
	ErrNotLoggedIn        = E(KindAuthentication, "please go log in and try again")
	ErrStalePassword      = E(KindAuthentication, "you have to log in again due to password changed")
)

// Token errors
var (
	ErrTokenMalformed = E(KindAuthentication, "malformed token")
	ErrTokenSignature = E(KindAuthentication, "invalid token signature")
	ErrTokenExpired   = E(KindAuthentication, "your token has been expired, please log in again")
)

// Reset errors. Not-found and expired are deliberately indistinguishable so a
// caller cannot probe which one occurred.
var (
	ErrResetTokenInvalid = E(KindNotFound, "reset token is invalid or expired")
	ErrResetThrottled    = E(KindValidation, "a reset email was sent recently, please wait before requesting another")
	ErrDeliveryFailed    = E(KindDelivery, "something went wrong while trying send email")
)

// Authorization errors
var (
	ErrForbidden = E(KindAuthorization, "you are not authorized to execute this action")
)

// Task errors
var (
	ErrTaskNotFound = E(KindNotFound, "there is no task with that ID")
	ErrNotTaskOwner = E(KindAuthorization, "you only can see your tasks")
)
