package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func callWithToken(t *testing.T, token string) *httptest.ResponseRecorder {
	t.Helper()

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	handler := SharedSecret("secret-token", nopLogger{})(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sweeps/payments", nil)
	if token != "" {
		req.Header.Set(SchedulerTokenHeader, token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		assert.True(t, reached)
	} else {
		assert.False(t, reached)
	}
	return rec
}

func TestSharedSecret_ValidToken(t *testing.T) {
	rec := callWithToken(t, "secret-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSharedSecret_MissingToken(t *testing.T) {
	rec := callWithToken(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSharedSecret_WrongToken(t *testing.T) {
	rec := callWithToken(t, "not-the-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}
