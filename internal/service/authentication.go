// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cadastro-api/internal/database"
	"cadastro-api/internal/model"
	"cadastro-api/internal/store"
)

var (
	// ErrPasswordRequired rejects registration without a secret to hash.
	ErrPasswordRequired = errors.New("password required")
	// ErrInvalidCredentials is the only error login exposes for a credential
	// mismatch, whatever the underlying cause.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Seams for tests.
var (
	hashPassword     = HashPassword
	comparePassword  = ComparePassword
	issueAccessToken = IssueAccessToken
	createUser       = store.CreateUser
	getUserByEmail   = store.GetUserByEmail
)

// RegisterInput carries everything registration needs. Optional profile
// fields stay nil when absent.
type RegisterInput struct {
	Name         string
	Email        string
	CPF          string
	Password     string
	Address      *string
	State        *string
	City         *string
	Neighborhood *string
	PostalCode   *string
	Phone        *string
}

// RegisterUser hashes the secret and inserts the row. Emails are stored
// lowercased so lookups are effectively case-insensitive. Uniqueness stays
// with the store: a collision surfaces as store.ErrDuplicate.
func RegisterUser(ctx context.Context, db database.DB, in RegisterInput) (*model.User, error) {
	if in.Password == "" {
		return nil, ErrPasswordRequired
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("RegisterUser: %w", err)
	}

	return createUser(ctx, db, &model.User{
		Name:         in.Name,
		Email:        strings.ToLower(in.Email),
		CPF:          in.CPF,
		PasswordHash: hash,
		Address:      in.Address,
		State:        in.State,
		City:         in.City,
		Neighborhood: in.Neighborhood,
		PostalCode:   in.PostalCode,
		Phone:        in.Phone,
	})
}

// LoginUser verifies the credentials and mints an access token. Unknown
// email, a row without a stored hash and a wrong password are deliberately
// indistinguishable from the outside.
func LoginUser(ctx context.Context, db database.DB, email, password, secret string, ttl time.Duration) (string, *model.User, error) {
	user, err := getUserByEmail(ctx, db, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.PasswordHash == "" {
		return "", nil, ErrInvalidCredentials
	}
	if err := comparePassword(user.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := issueAccessToken(secret, *user, ttl)
	if err != nil {
		return "", nil, fmt.Errorf("LoginUser: %w", err)
	}
	return token, user, nil
}
