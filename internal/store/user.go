// File: internal/store/user.go
package store

import (
	"context"
	"errors"
	"fmt"

	"cadastro-api/internal/database"
	"cadastro-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound indicates no row matched the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate indicates the store's uniqueness constraint on email or cpf fired.
	ErrDuplicate = errors.New("email or cpf already registered")
)

const userColumns = `id_usuario, nome, email, cpf, senha_hash, chk_ativo,
	 endereco, estado, cidade, bairro, cep, telefone, criado_em`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.CPF,
		&u.PasswordHash,
		&u.Active,
		&u.Address,
		&u.State,
		&u.City,
		&u.Neighborhood,
		&u.PostalCode,
		&u.Phone,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateUser inserts one row; uniqueness of email and cpf is enforced by the
// store itself, never by a check-then-insert.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO usuario (nome, email, cpf, senha_hash, endereco, estado, cidade, bairro, cep, telefone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id_usuario, chk_ativo, criado_em`,
		u.Name,
		u.Email,
		u.CPF,
		u.PasswordHash,
		u.Address,
		u.State,
		u.City,
		u.Neighborhood,
		u.PostalCode,
		u.Phone,
	)
	if err := row.Scan(&u.ID, &u.Active, &u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateUser: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// GetUserByEmail fetches the full row, hash included; callers must not let
// that form escape outward.
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuario WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetUserByEmail: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// ListUsers returns one page ordered by ascending id, keeping pagination
// stable across pages.
func ListUsers(ctx context.Context, db database.DB, limit, offset int) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM usuario ORDER BY id_usuario ASC LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

// CountUsers runs independently of ListUsers; the page/count race is accepted.
func CountUsers(ctx context.Context, db database.DB) (int, error) {
	var total int
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM usuario`)
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return total, nil
}
