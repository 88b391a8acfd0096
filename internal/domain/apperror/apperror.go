// Package apperror defines the typed failures surfaced by the account service.
// Every failure carries a Kind for programmatic handling and a message that is
// safe to show to the end user.
package apperror

import "errors"

// Kind classifies a failure independently of any transport.
type Kind int

const (
	KindInternal Kind = iota
	KindDuplicateUsername
	KindDuplicateEmail
	KindWeakPassword
	KindInvalidEmail
	KindBlankField
	KindInvalidCredentials
	KindAccountDisabled
	KindAccountLocked
	KindNotFound
	KindForbidden
	KindBadAction
)

func (k Kind) String() string {
	switch k {
	case KindDuplicateUsername:
		return "duplicate_username"
	case KindDuplicateEmail:
		return "duplicate_email"
	case KindWeakPassword:
		return "weak_password"
	case KindInvalidEmail:
		return "invalid_email"
	case KindBlankField:
		return "blank_field"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindAccountDisabled:
		return "account_disabled"
	case KindAccountLocked:
		return "account_locked"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindBadAction:
		return "bad_action"
	default:
		return "internal"
	}
}

// Error is a typed failure with a display message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Is matches any *Error of the same Kind, so sentinels work with errors.Is
// regardless of the message they were raised with.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the Kind of err, or KindInternal when err is not typed.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Sentinels with the default message of each kind.
var (
	ErrDuplicateUsername  = New(KindDuplicateUsername, "Username already exists.")
	ErrDuplicateEmail     = New(KindDuplicateEmail, "User with this email has already been registered")
	ErrWeakPassword       = New(KindWeakPassword, "password does not meet the requirements")
	ErrInvalidEmail       = New(KindInvalidEmail, "Invalid email")
	ErrBlankField         = New(KindBlankField, "field may be omitted, but can not be blank")
	ErrInvalidCredentials = New(KindInvalidCredentials, "A user with this username/email and password does not exist")
	ErrAccountDisabled    = New(KindAccountDisabled, "account is disabled")
	ErrAccountLocked      = New(KindAccountLocked, "account is locked")
	ErrNotFound           = New(KindNotFound, "user not found")
	ErrForbidden          = New(KindForbidden, "You are not allowed to do this")
	ErrBadAction          = New(KindBadAction, "Invalid action.")
	ErrInternal           = New(KindInternal, "internal server error")
)
