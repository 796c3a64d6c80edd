// Package apperr holds the user-facing error kinds returned by the services.
// The HTTP layer turns them into status codes; nothing below it knows about HTTP.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindEmailConflict
	KindAuthNumberInvalid
	KindVerifyCodeExpired
	KindPasswordInvalid
	KindPasswordMismatch
	KindEmailNotVerified
	KindUserNotFound
	KindProfileRequired
	KindInvalidToken
	KindUnauthenticated
)

type Error struct {
	Kind Kind
	Code string
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches on kind so wrapped and sentinel values compare equal.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrEmailConflict     = &Error{KindEmailConflict, "EMAIL_ALREADY_EXISTS", "email already registered"}
	ErrAuthNumberInvalid = &Error{KindAuthNumberInvalid, "AUTH_NUMBER_INVALID", "verification code is invalid"}
	ErrVerifyCodeExpired = &Error{KindVerifyCodeExpired, "VERIFY_CODE_EXPIRED", "verification code has expired"}
	ErrPasswordInvalid   = &Error{KindPasswordInvalid, "PASSWORD_INVALID", "password does not satisfy the policy"}
	ErrPasswordMismatch  = &Error{KindPasswordMismatch, "USER_PASSWORD_NOT_MATCHED", "password does not match"}
	ErrEmailNotVerified  = &Error{KindEmailNotVerified, "EMAIL_NOT_VERIFIED", "email has not been verified"}
	ErrUserNotFound      = &Error{KindUserNotFound, "USER_NOT_FOUND", "user not found"}
	ErrProfileRequired   = &Error{KindProfileRequired, "USER_PROFILE_DATA_REQUIRED", "user profile is required"}
	ErrInvalidToken      = &Error{KindInvalidToken, "INVALID_TOKEN", "refresh token is invalid or expired"}
	ErrUnauthenticated   = &Error{KindUnauthenticated, "UNAUTHENTICATED", "access token is invalid or expired"}
)

// Status maps an error kind to its HTTP status.
func (e *Error) Status() int {
	switch e.Kind {
	case KindEmailConflict:
		return http.StatusConflict
	case KindAuthNumberInvalid, KindVerifyCodeExpired, KindPasswordInvalid,
		KindEmailNotVerified, KindProfileRequired:
		return http.StatusBadRequest
	case KindPasswordMismatch:
		return http.StatusUnprocessableEntity
	case KindUserNotFound:
		return http.StatusNotFound
	case KindInvalidToken, KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// From extracts the *Error in err's chain, if any.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
