package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.New(io.Discard))
	handler(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrUserExists, http.StatusBadRequest, "email already registered"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrCategoryNotFound, http.StatusNotFound, "category not found"},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts"},
	}

	for _, tc := range cases {
		code, body := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if body["error"] != tc.msg {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.msg, body["error"])
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("jwt: token is malformed"), domain.ErrInvalidToken)
	code, body := renderError(t, wrapped)
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body["error"] != "invalid token" {
		t.Fatalf("wrapped cause must not leak: %q", body["error"])
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body["error"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body["error"] != "invalid payload" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
