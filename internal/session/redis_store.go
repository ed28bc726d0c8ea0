package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "portal:session:"

// DefaultTTL mengikuti umur cookie sesi web (1 hari).
const DefaultTTL = 24 * time.Hour

type redisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client, logger ...*zap.Logger) Store {
	l := zap.L().Named("session.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.store")
	}
	return &redisStore{rdb: rdb, ttl: DefaultTTL, logger: l}
}

func (r *redisStore) Restore(ctx context.Context, sid string) (*Session, error) {
	val, err := r.rdb.Get(ctx, keyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("session restore failed", zap.Error(err))
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil || !s.Valid() {
		// Record corrupt: buang dan anggap tidak pernah ada.
		r.logger.Warn("purging malformed session record", zap.String("sid", sid))
		_ = r.rdb.Del(ctx, keyPrefix+sid).Err()
		return nil, nil
	}
	return &s, nil
}

func (r *redisStore) Persist(ctx context.Context, sid string, s Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keyPrefix+sid, raw, r.ttl).Err()
}

func (r *redisStore) Clear(ctx context.Context, sid string) error {
	return r.rdb.Del(ctx, keyPrefix+sid).Err()
}
