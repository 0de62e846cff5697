package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/domain"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/token"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) UpdateCredential(context.Context, string, string) error { return nil }

func (r *stubUserRepo) FindAll(context.Context) ([]*domain.User, error) { return nil, nil }

func newTestCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return codec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	codec := newTestCodec(t)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"a@x.com": {FirstName: "Ana", LastName: "Diaz", Email: "a@x.com", Role: "admin"},
	}}

	signed, err := codec.Issue("a@x.com", time.Now().UTC())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(codec, repo)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("email") != "a@x.com" {
			t.Fatalf("email not set")
		}
		if c.Get("name") != "Ana Diaz" {
			t.Fatalf("name not set")
		}
		if c.Get("authority") != "ROLE_ADMIN" {
			t.Fatalf("authority not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func runRejectedRequest(t *testing.T, repo *stubUserRepo, authHeader string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(newTestCodec(t), repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	if code := runRejectedRequest(t, repo, ""); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	if code := runRejectedRequest(t, repo, "Token abc"); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	if code := runRejectedRequest(t, repo, "Bearer not-a-token"); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuthMiddleware_DeletedSubject(t *testing.T) {
	codec := newTestCodec(t)
	signed, err := codec.Issue("gone@x.com", time.Now().UTC())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	repo := &stubUserRepo{users: map[string]*domain.User{}}
	if code := runRejectedRequest(t, repo, "Bearer "+signed); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}
