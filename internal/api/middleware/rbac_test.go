package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRBAC(t *testing.T, authority string, allowed ...string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authority != "" {
		c.Set("authority", authority)
	}

	mw := RBAC(allowed...)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestRBAC_Allowed(t *testing.T) {
	if code := runRBAC(t, "ROLE_ADMIN", "ROLE_ADMIN"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRBAC_Forbidden(t *testing.T) {
	if code := runRBAC(t, "ROLE_USER", "ROLE_ADMIN"); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRBAC_MissingAuthority(t *testing.T) {
	if code := runRBAC(t, "", "ROLE_ADMIN"); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}
