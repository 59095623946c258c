package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nextu/internal/shared/constants"
	"nextu/pkg/cache"
)

var ErrDraftNotFound = errors.New("draft not found")

// Store persists drafts between requests. The Redis implementation
// backs "Save as Draft": a draft survives until submitted, cancelled,
// or its TTL lapses.
type Store interface {
	Save(ctx context.Context, draft *EventDraft) error
	Get(ctx context.Context, id uuid.UUID) (*EventDraft, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// AcquireSubmitLock returns true when this caller holds the draft's
	// submit lock; false means another submission is in flight.
	AcquireSubmitLock(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseSubmitLock(ctx context.Context, id uuid.UUID) error
}

type redisStore struct {
	cache   cache.Service
	ttl     time.Duration
	lockTTL time.Duration
}

func NewRedisStore(cacheService cache.Service, ttl, lockTTL time.Duration) Store {
	if lockTTL <= 0 {
		lockTTL = constants.TTL_REALTIME
	}
	return &redisStore{cache: cacheService, ttl: ttl, lockTTL: lockTTL}
}

func (s *redisStore) Save(ctx context.Context, draft *EventDraft) error {
	draft.UpdatedAt = time.Now()
	key := constants.BuildDraftKey(draft.ID.String())
	if err := s.cache.Set(ctx, key, draft, s.ttl); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id uuid.UUID) (*EventDraft, error) {
	var draft EventDraft
	key := constants.BuildDraftKey(id.String())
	if err := s.cache.Get(ctx, key, &draft); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return &draft, nil
}

func (s *redisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.cache.Delete(ctx, constants.BuildDraftKey(id.String()))
}

func (s *redisStore) AcquireSubmitLock(ctx context.Context, id uuid.UUID) (bool, error) {
	key := constants.BuildDraftSubmitLockKey(id.String())
	return s.cache.SetNX(ctx, key, time.Now().Unix(), s.lockTTL)
}

func (s *redisStore) ReleaseSubmitLock(ctx context.Context, id uuid.UUID) error {
	return s.cache.Delete(ctx, constants.BuildDraftSubmitLockKey(id.String()))
}
