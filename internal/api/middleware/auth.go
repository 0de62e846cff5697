package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/ports"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/token"
)

// Auth validates the bearer token, re-resolves the subject against the user
// store, and injects the current identity into context. Resolving on every
// request means a deleted account stops authenticating immediately even
// though its token is still within its lifetime.
func Auth(codec *token.Codec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := codec.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("email", user.Email)
			c.Set("name", user.DisplayName())
			c.Set("authority", user.Authority())

			return next(c)
		}
	}
}
