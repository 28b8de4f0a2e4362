// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// cachedUser is the Redis representation of a user record.
// The password hash is deliberately absent: it never leaves the primary store.
type cachedUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CachingUserRepository decorates a UserRepository with Redis caching of
// FindByID lookups (the hot path behind authenticated requests). It implements
// the decorator pattern, transparently adding caching without modifying the
// underlying repository. Create and FindByEmail always go to the inner
// repository: the credential paths must see the primary store.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts the user through the inner repository. Nothing is cached for
// a fresh ID, so there is no entry to invalidate.
func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	return c.inner.Create(ctx, u)
}

// FindByEmail always hits the inner repository. Login compares the stored
// password hash, and the hash is never written to Redis.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.inner.FindByEmail(ctx, email)
}

// FindByID retrieves a user, checking the cache first then falling back to the
// inner repository. Cached records carry an empty password hash.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var cu cachedUser
		if err := json.Unmarshal(b, &cu); err == nil {
			return &entity.User{
				ID:        cu.ID,
				Name:      cu.Name,
				Email:     cu.Email,
				Avatar:    cu.Avatar,
				CreatedAt: cu.CreatedAt,
				UpdatedAt: cu.UpdatedAt,
			}, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the primary store
	u, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache without the password hash (best effort)
	cu := cachedUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if b, err := json.Marshal(cu); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return u, nil
}

// cacheKey generates the cache key for a user ID.
func (c *CachingUserRepository) cacheKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}
