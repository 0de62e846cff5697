package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/api/metrics"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/domain"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	throttle    ports.LoginThrottle
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, throttle ports.LoginThrottle, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, throttle: throttle, log: log}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role"`
}

type validateResponse struct {
	Valid bool   `json:"valid"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Login authenticates a user and returns a signed session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  domain.AuthResult
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	if blocked, err := h.throttle.TooMany(ctx, req.Email); err != nil {
		h.log.Warn().Err(err).Msg("login throttle unavailable")
	} else if blocked {
		metrics.LoginsTotal.WithLabelValues("throttled").Inc()
		return domain.ErrTooManyAttempts
	}

	result, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			if terr := h.throttle.RecordFailure(ctx, req.Email); terr != nil {
				h.log.Warn().Err(terr).Msg("login throttle unavailable")
			}
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	if err := h.throttle.Reset(ctx, req.Email); err != nil {
		h.log.Warn().Err(err).Msg("login throttle unavailable")
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, result)
}

// Register creates a new account and logs it straight in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.AuthResult
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, result)
}

// Validate checks the Authorization header value and returns the identity it
// resolves to. Every failure cause renders the same {"valid": false} body.
//
// @Summary      Validate a session token
// @Tags         auth
// @Produce      json
// @Param        Authorization  header    string  true  "Bearer token"
// @Success      200   {object}  validateResponse
// @Failure      401   {object}  validateResponse
// @Router       /api/auth/validate [get]
func (h *AuthHandler) Validate(c echo.Context) error {
	bearer := c.Request().Header.Get(echo.HeaderAuthorization)

	identity, err := h.authService.Validate(c.Request().Context(), bearer)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.TokenValidationsTotal.WithLabelValues("unknown_subject").Inc()
		} else {
			metrics.TokenValidationsTotal.WithLabelValues("invalid_token").Inc()
		}
		return c.JSON(http.StatusUnauthorized, validateResponse{Valid: false})
	}

	metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	return c.JSON(http.StatusOK, validateResponse{
		Valid: true,
		Name:  identity.Name,
		Email: identity.Email,
	})
}
