// File: internal/service/listing.go
package service

import (
	"context"
	"strconv"
	"time"

	"cadastro-api/internal/cache"
	"cadastro-api/internal/database"
	"cadastro-api/internal/model"
	"cadastro-api/internal/pagination"
	"cadastro-api/internal/store"
)

const (
	userCountKey = "usuario:count"
	userCountTTL = 30 * time.Second
)

// Seams for tests.
var (
	listUsersPage = store.ListUsers
	countUsers    = store.CountUsers
)

// ListUsers assembles one page of users. The total count passes through a
// short-lived cache; the staleness that introduces sits inside the already
// tolerated race between the page read and the count read.
func ListUsers(ctx context.Context, db database.DB, rdb cache.Cache, p pagination.Params) (*pagination.Page[model.User], error) {
	return pagination.Paginate(ctx, p,
		func(ctx context.Context, limit, offset int) ([]model.User, error) {
			return listUsersPage(ctx, db, limit, offset)
		},
		func(ctx context.Context) (int, error) {
			return cachedUserCount(ctx, db, rdb)
		},
	)
}

// cachedUserCount is best-effort around the cache: a miss, a cache error or a
// garbled value all fall through to the count query.
func cachedUserCount(ctx context.Context, db database.DB, rdb cache.Cache) (int, error) {
	if rdb != nil {
		if v, err := rdb.Get(ctx, userCountKey).Result(); err == nil {
			if n, err := strconv.Atoi(v); err == nil {
				return n, nil
			}
		}
	}

	total, err := countUsers(ctx, db)
	if err != nil {
		return 0, err
	}
	if rdb != nil {
		rdb.Set(ctx, userCountKey, strconv.Itoa(total), userCountTTL)
	}
	return total, nil
}
