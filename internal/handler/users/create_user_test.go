package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cadastro-api/internal/config"
	"cadastro-api/internal/database"
	"cadastro-api/internal/model"
	"cadastro-api/internal/service"
	"cadastro-api/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testValidator struct{ v *validator.Validate }

func (t *testValidator) Validate(i any) error { return t.v.Struct(i) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e
}

func newJSONCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restoreHandlers() {
	registerUser = service.RegisterUser
	listUsers = service.ListUsers
}

func testCfg() *config.Config {
	return &config.Config{DBAcquireTimeout: 10 * time.Millisecond}
}

const validBody = `{"nome":"Alice Souza","email":"alice@example.com","cpf":"39053344705","senha":"Secret123!","cidade":"Recife"}`

func TestCreateUserHandler(t *testing.T) {
	t.Cleanup(restoreHandlers)
	e := newEcho()
	h := CreateUserHandler(&database.FakeDB{}, testCfg())

	t.Run("invalid body", func(t *testing.T) {
		c, rec := newJSONCtx(e, http.MethodPost, "/users", `{"nome":`)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		c, rec := newJSONCtx(e, http.MethodPost, "/users",
			`{"nome":"Alice","email":"alice@example.com","cpf":"39053344705","senha":"short"}`)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created without hash in response", func(t *testing.T) {
		registerUser = func(_ context.Context, _ database.DB, in service.RegisterInput) (*model.User, error) {
			require.Equal(t, "alice@example.com", in.Email)
			require.Equal(t, "Secret123!", in.Password)
			require.Equal(t, "Recife", *in.City)
			return &model.User{
				ID: 1, Name: in.Name, Email: in.Email, CPF: in.CPF,
				Active: true, PasswordHash: "$2a$10$hash",
			}, nil
		}
		c, rec := newJSONCtx(e, http.MethodPost, "/users", validBody)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusCreated, rec.Code)
		body := rec.Body.String()
		require.Contains(t, body, `"id_usuario":1`)
		require.Contains(t, body, `"chk_ativo":true`)
		require.NotContains(t, body, "senha")
		require.NotContains(t, body, "$2a$10$hash")
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		registerUser = func(context.Context, database.DB, service.RegisterInput) (*model.User, error) {
			return nil, fmt.Errorf("CreateUser: %w", store.ErrDuplicate)
		}
		c, rec := newJSONCtx(e, http.MethodPost, "/users", validBody)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("pool pressure maps to 503", func(t *testing.T) {
		// A store call stuck waiting for a pool slot runs into the request
		// deadline; the expiry must come back as 503, not 500.
		registerUser = func(ctx context.Context, _ database.DB, _ service.RegisterInput) (*model.User, error) {
			_, ok := ctx.Deadline()
			require.True(t, ok)
			<-ctx.Done()
			return nil, fmt.Errorf("CreateUser: %w", ctx.Err())
		}
		c, rec := newJSONCtx(e, http.MethodPost, "/users", validBody)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Contains(t, rec.Body.String(), "server busy")
	})

	t.Run("persistence failure stays opaque", func(t *testing.T) {
		registerUser = func(context.Context, database.DB, service.RegisterInput) (*model.User, error) {
			return nil, errors.New(`pq: relation "usuario" does not exist`)
		}
		c, rec := newJSONCtx(e, http.MethodPost, "/users", validBody)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "internal server error")
		require.NotContains(t, rec.Body.String(), "relation")
	})
}
