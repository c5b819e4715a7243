// File: internal/handler/users/create_user.go
package users

import (
	"context"
	"errors"
	"net/http"

	"cadastro-api/internal/api"
	"cadastro-api/internal/config"
	"cadastro-api/internal/database"
	"cadastro-api/internal/service"
	"cadastro-api/internal/store"

	"github.com/labstack/echo/v4"
)

var registerUser = service.RegisterUser

// @Summary     Register a new user
// @Description Creates a customer account; the password is hashed before storage and never returned.
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body api.CreateUserRequest true "New user"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "email or cpf already registered"
// @Failure     500 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse "server busy, try again"
// @Router      /users [post]
func CreateUserHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// The deadline bounds waiting for a pool slot as well as the queries;
		// a saturated pool shows up as context.DeadlineExceeded.
		ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.DBAcquireTimeout)
		defer cancel()

		user, err := registerUser(ctx, db, service.RegisterInput{
			Name:         req.Name,
			Email:        req.Email,
			CPF:          req.CPF,
			Password:     req.Password,
			Address:      req.Address,
			State:        req.State,
			City:         req.City,
			Neighborhood: req.Neighborhood,
			PostalCode:   req.PostalCode,
			Phone:        req.Phone,
		})
		switch {
		case errors.Is(err, service.ErrPasswordRequired):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		case errors.Is(err, store.ErrDuplicate):
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: store.ErrDuplicate.Error()})
		case database.IsResourceExhausted(err):
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "server busy, try again"})
		case err != nil:
			// Raw persistence errors stay in the logs.
			c.Logger().Errorf("create user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}
