// File: internal/handler/auth/login.go
package auth

import (
	"context"
	"errors"
	"net/http"

	"cadastro-api/internal/api"
	"cadastro-api/internal/config"
	"cadastro-api/internal/database"
	"cadastro-api/internal/service"

	"github.com/labstack/echo/v4"
)

var loginUser = service.LoginUser

// @Summary     Log a user in
// @Description Verifies email and password and returns a bearer token with the public profile.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body api.LoginRequest true "Credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "invalid credentials"
// @Failure     500 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse "server busy, try again"
// @Router      /auth/login [post]
func LoginHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.DBAcquireTimeout)
		defer cancel()

		token, user, err := loginUser(ctx, db, req.Email, req.Password, cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				// One message for every mismatch cause.
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: service.ErrInvalidCredentials.Error()})
			}
			if database.IsResourceExhausted(err) {
				return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "server busy, try again"})
			}
			c.Logger().Errorf("login: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Token: token,
			User:  api.UserProfile{Name: user.Name, Email: user.Email},
		})
	}
}
