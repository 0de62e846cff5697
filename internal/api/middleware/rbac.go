package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC restricts a route to the given authority labels (e.g. "ROLE_ADMIN").
// Relies on Auth having injected the authority into context.
func RBAC(allowedAuthorities ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedAuthorities))
	for _, a := range allowedAuthorities {
		allowed[a] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authority, _ := c.Get("authority").(string)
			if _, ok := allowed[authority]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
