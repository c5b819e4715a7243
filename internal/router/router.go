// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"cadastro-api/internal/cache"
	"cadastro-api/internal/config"
	"cadastro-api/internal/database"
	"cadastro-api/internal/handler"
	"cadastro-api/internal/handler/auth"
	"cadastro-api/internal/handler/users"
)

// Setup registers every route, injecting the shared pool, cache and config.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, cfg *config.Config) {
	e.GET("/ping", handler.PingHandler(db, rdb))

	e.POST("/auth/login", auth.LoginHandler(db, cfg))

	e.POST("/users", users.CreateUserHandler(db, cfg))
	e.GET("/users", users.ListUsersHandler(db, rdb, cfg))
}
