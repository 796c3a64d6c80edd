package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sportsclub-app/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
		logged int
	}{
		{"conflict", apperr.ErrEmailConflict, http.StatusConflict, `{"detail":{"system_code":"EMAIL_ALREADY_EXISTS"}}`, 0},
		{"wrapped", fmt.Errorf("x: %w", apperr.ErrUnauthenticated), http.StatusUnauthorized, `{"detail":{"system_code":"UNAUTHENTICATED"}}`, 0},
		{"internal", errors.New("db down"), http.StatusInternalServerError, `{"detail":{"system_code":"INTERNAL_SERVER_ERROR"}}`, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
			assert.Len(t, c.Errors, tc.logged)
			assert.True(t, c.IsAborted())
		})
	}
}

func TestBadRequest(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequest(c, errors.New("email is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":{"system_code":"INVALID_REQUEST"}}`, w.Body.String())
	assert.Len(t, c.Errors.ByType(gin.ErrorTypeBind), 1)
}
