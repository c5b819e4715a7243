// File: internal/handler/users/list_users.go
package users

import (
	"context"
	"errors"
	"net/http"

	"cadastro-api/internal/api"
	"cadastro-api/internal/cache"
	"cadastro-api/internal/config"
	"cadastro-api/internal/database"
	"cadastro-api/internal/pagination"
	"cadastro-api/internal/service"

	"github.com/labstack/echo/v4"
)

var listUsers = service.ListUsers

// @Summary     List users
// @Description Returns one page of users ordered by id, with pagination metadata.
// @Tags        users
// @Produce     json
// @Param       page  query int false "page number (default 1)"
// @Param       limit query int false "page size, 1..100 (default 10)"
// @Success     200 {object} api.ListUsersResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse "server busy, try again"
// @Router      /users [get]
func ListUsersHandler(db database.DB, rdb cache.Cache, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ListUsersRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid query parameters"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		params := pagination.Params{Page: pagination.DefaultPage, Limit: pagination.DefaultLimit}
		if req.Page != nil {
			params.Page = *req.Page
		}
		if req.Limit != nil {
			params.Limit = *req.Limit
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.DBAcquireTimeout)
		defer cancel()

		page, err := listUsers(ctx, db, rdb, params)
		switch {
		case errors.Is(err, pagination.ErrInvalidPage), errors.Is(err, pagination.ErrInvalidLimit):
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		case database.IsResourceExhausted(err):
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "server busy, try again"})
		case err != nil:
			c.Logger().Errorf("list users: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}

		resp := api.ListUsersResponse{
			Data: make([]api.UserResponse, 0, len(page.Data)),
			Meta: page.Meta,
		}
		for i := range page.Data {
			resp.Data = append(resp.Data, api.NewUserResponse(&page.Data[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
