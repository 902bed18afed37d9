// AngelaMos | 2026
// service.go

package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/uniplanner/backend/internal/core"
	"github.com/uniplanner/backend/internal/user"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
)

type Service struct {
	users user.Repository
	stats Repository
	cache *redis.Client
}

func NewService(
	users user.Repository,
	stats Repository,
	cache *redis.Client,
) *Service {
	return &Service{
		users: users,
		stats: stats,
		cache: cache,
	}
}

func (s *Service) ListUsers(ctx context.Context) ([]user.Response, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	return user.ToResponseList(users), nil
}

// Stats serves the aggregate counts from a short-lived cache; a cache
// failure degrades to the store, never to an error.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	if cached := s.cachedStats(ctx); cached != nil {
		return cached, nil
	}

	stats, err := s.stats.Counts(ctx)
	if err != nil {
		return nil, err
	}

	s.storeStats(ctx, stats)

	return stats, nil
}

func (s *Service) SetRole(
	ctx context.Context,
	userID int64,
	role string,
) (*user.Response, error) {
	if !user.ValidRole(role) {
		return nil, fmt.Errorf(
			"set role: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	updated, err := s.users.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	resp := user.ToResponse(updated)
	return &resp, nil
}

func (s *Service) cachedStats(ctx context.Context) *Stats {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		return nil
	}

	var stats Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}

	return &stats
}

func (s *Service) storeStats(ctx context.Context, stats *Stats) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		slog.Debug("stats cache write failed", "error", err)
	}
}
