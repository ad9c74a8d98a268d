package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/hannahsm1th/art-gallery-api/internal/rbac"
	"github.com/hannahsm1th/art-gallery-api/internal/shared"
)

const cachePrefix = "gallery:authcache:"

// Service resolves HTTP Basic credentials into a principal. Successful
// resolutions are cached in Redis so the bcrypt comparison runs once per
// credential pair per TTL window; password or role changes therefore take
// up to TTL to propagate.
type Service struct {
	repo  Repository
	cache *redis.Client
	ttl   time.Duration
}

// NewService constructs a Service. cache may be nil, disabling caching.
func NewService(repo Repository, cache *redis.Client, ttl time.Duration) *Service {
	return &Service{repo: repo, cache: cache, ttl: ttl}
}

// Authenticate validates email/password credentials and returns the
// resolved principal, or shared.ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*rbac.Principal, error) {
	key := cacheKey(email, password)
	if p := s.cached(ctx, key); p != nil {
		return p, nil
	}

	acct, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if !acct.IsActive {
		return nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	principal := &rbac.Principal{ID: acct.ID, Role: acct.Role}
	s.store(ctx, key, principal)
	return principal, nil
}

func (s *Service) cached(ctx context.Context, key string) *rbac.Principal {
	if s.cache == nil {
		return nil
	}
	val, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	id, role, ok := strings.Cut(val, ":")
	if !ok {
		return nil
	}
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil
	}
	return &rbac.Principal{ID: parsed, Role: rbac.Role(role)}
}

func (s *Service) store(ctx context.Context, key string, p *rbac.Principal) {
	if s.cache == nil {
		return
	}
	val := fmt.Sprintf("%d:%s", p.ID, p.Role)
	_ = s.cache.Set(ctx, key, val, s.ttl).Err()
}

func cacheKey(email, password string) string {
	sum := sha256.Sum256([]byte(email + "\x00" + password))
	return cachePrefix + hex.EncodeToString(sum[:])
}
