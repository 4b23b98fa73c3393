package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

const (
	idempotencyResultPrefix = "idem:result:"
	idempotencyLockPrefix   = "idem:lock:"

	// defaultClaimTTL bounds how long a crashed request can block its key.
	defaultClaimTTL = 30 * time.Second
)

// IdempotencyStore remembers which assignment a client-supplied key produced.
// Keys are scoped per user so two operators cannot collide.
type IdempotencyStore struct {
	client   *redis.Client
	locker   *redislock.Client
	ttl      time.Duration
	claimTTL time.Duration
	logger   logger.Interface
}

func NewIdempotencyStore(client *redis.Client, ttl time.Duration, log logger.Interface) *IdempotencyStore {
	return &IdempotencyStore{
		client:   client,
		locker:   redislock.New(client),
		ttl:      ttl,
		claimTTL: defaultClaimTTL,
		logger:   log,
	}
}

// Recall returns the SID stored for key, if any.
func (s *IdempotencyStore) Recall(ctx context.Context, userID uint, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.resultKey(userID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read idempotency key: %w", err)
	}
	return val, true, nil
}

// Claim takes the in-flight lock for key. A concurrent holder yields a
// conflict error; the returned release func is safe to call once.
func (s *IdempotencyStore) Claim(ctx context.Context, userID uint, key string) (func(context.Context), error) {
	lock, err := s.locker.Obtain(ctx, s.lockKey(userID, key), s.claimTTL, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, apperrors.NewConflictError("a request with this idempotency key is already in progress")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim idempotency key: %w", err)
	}

	return func(releaseCtx context.Context) {
		if err := lock.Release(releaseCtx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			s.logger.Warnw("failed to release idempotency claim", "user_id", userID, "error", err)
		}
	}, nil
}

// Remember records sid as the outcome for key.
func (s *IdempotencyStore) Remember(ctx context.Context, userID uint, key, sid string) error {
	if err := s.client.Set(ctx, s.resultKey(userID, key), sid, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) resultKey(userID uint, key string) string {
	return fmt.Sprintf("%s%d:%s", idempotencyResultPrefix, userID, key)
}

func (s *IdempotencyStore) lockKey(userID uint, key string) string {
	return fmt.Sprintf("%s%d:%s", idempotencyLockPrefix, userID, key)
}
