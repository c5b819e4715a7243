// File: internal/pagination/pagination.go
// Package pagination turns (page, limit) requests into bounded offset reads
// and assembles the result envelope.
package pagination

import (
	"context"
	"errors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var (
	// ErrInvalidPage rejects page < 1. Out-of-range values are refused, not
	// clamped, so results stay predictable.
	ErrInvalidPage = errors.New("page must be >= 1")
	// ErrInvalidLimit rejects limit outside [1, 100].
	ErrInvalidLimit = errors.New("limit must be between 1 and 100")
)

// Params is a validated page request.
type Params struct {
	Page  int
	Limit int
}

func (p Params) Validate() error {
	if p.Page < 1 {
		return ErrInvalidPage
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes the page that was actually served.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is one window of rows plus its metadata.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// Paginate validates p, then runs the two reads. fetchPage and fetchCount are
// independent reads over the same state; a total changing between them is
// accepted. An offset past the end yields empty data with accurate metadata.
func Paginate[T any](
	ctx context.Context,
	p Params,
	fetchPage func(ctx context.Context, limit, offset int) ([]T, error),
	fetchCount func(ctx context.Context) (int, error),
) (*Page[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	data, err := fetchPage(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}
	total, err := fetchCount(ctx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = []T{}
	}

	return &Page[T]{
		Data: data,
		Meta: Meta{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      total,
			TotalPages: (total + p.Limit - 1) / p.Limit,
		},
	}, nil
}
