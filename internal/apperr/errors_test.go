package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{ErrEmailConflict, http.StatusConflict},
		{ErrAuthNumberInvalid, http.StatusBadRequest},
		{ErrVerifyCodeExpired, http.StatusBadRequest},
		{ErrPasswordInvalid, http.StatusBadRequest},
		{ErrPasswordMismatch, http.StatusUnprocessableEntity},
		{ErrEmailNotVerified, http.StatusBadRequest},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrProfileRequired, http.StatusBadRequest},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{&Error{Kind: KindInternal}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Code, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.err.Status())
		})
	}
}

func TestFrom_Wrapped(t *testing.T) {
	err := fmt.Errorf("login: %w", ErrUserNotFound)

	e, ok := From(err)
	require.True(t, ok)
	assert.Equal(t, "USER_NOT_FOUND", e.Code)
	assert.True(t, errors.Is(err, ErrUserNotFound))
	assert.False(t, errors.Is(err, ErrEmailConflict))

	_, ok = From(errors.New("boom"))
	assert.False(t, ok)
}
