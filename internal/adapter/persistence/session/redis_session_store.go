package session

import (
	"context"
	"time"

	"estimatepro/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	refreshKeyPrefix  = "session:refresh:"
	builderKeyPrefix  = "session:builder:"
	resetKeyPrefix    = "session:reset:"
	maxSessionsPerKey = 5
)

// RedisSessionStore keeps hashed tokens in Redis with native expiry.
//
// Keys:
//   - session:refresh:<hash> -> builder id
//   - session:builder:<id>   -> list of refresh hashes, newest first, capped at maxSessionsPerKey
//   - session:reset:<hash>   -> builder id
type RedisSessionStore struct {
	c *redis.Client
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(c *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{c: c}
}

func (s *RedisSessionStore) SaveRefreshToken(ctx context.Context, tokenHash, builderID string, ttl time.Duration) error {
	listKey := builderKeyPrefix + builderID

	_, err := s.c.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, refreshKeyPrefix+tokenHash, builderID, ttl)
		p.LPush(ctx, listKey, tokenHash)
		p.Expire(ctx, listKey, ttl)
		return nil
	})
	if err != nil {
		return err
	}

	evicted, err := s.c.LRange(ctx, listKey, maxSessionsPerKey, -1).Result()
	if err != nil {
		return err
	}
	if len(evicted) == 0 {
		return nil
	}

	keys := make([]string, 0, len(evicted))
	for _, h := range evicted {
		keys = append(keys, refreshKeyPrefix+h)
	}
	_, err = s.c.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, keys...)
		p.LTrim(ctx, listKey, 0, maxSessionsPerKey-1)
		return nil
	})
	if err != nil {
		return err
	}
	zap.S().Infof("[auth][session] evicted old sessions builder_id=%s count=%d", builderID, len(evicted))
	return nil
}

func (s *RedisSessionStore) GetRefreshToken(ctx context.Context, tokenHash string) (string, error) {
	return s.get(ctx, refreshKeyPrefix+tokenHash)
}

// ConsumeRefreshToken returns the builder id and deletes the token in one GETDEL,
// so only one caller can rotate a given refresh token.
func (s *RedisSessionStore) ConsumeRefreshToken(ctx context.Context, tokenHash string) (string, error) {
	builderID, err := s.c.GetDel(ctx, refreshKeyPrefix+tokenHash).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	if err := s.c.LRem(ctx, builderKeyPrefix+builderID, 0, tokenHash).Err(); err != nil {
		zap.S().Warnf("[auth][session] failed trimming session list builder_id=%s err=%v", builderID, err)
	}
	return builderID, nil
}

func (s *RedisSessionStore) DeleteRefreshToken(ctx context.Context, tokenHash string) error {
	builderID, err := s.get(ctx, refreshKeyPrefix+tokenHash)
	if err != nil {
		return err
	}

	_, err = s.c.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, refreshKeyPrefix+tokenHash)
		if builderID != "" {
			p.LRem(ctx, builderKeyPrefix+builderID, 0, tokenHash)
		}
		return nil
	})
	return err
}

func (s *RedisSessionStore) SavePasswordReset(ctx context.Context, tokenHash, builderID string, ttl time.Duration) error {
	return s.c.Set(ctx, resetKeyPrefix+tokenHash, builderID, ttl).Err()
}

// ConsumePasswordReset returns the builder id and deletes the token so it works once.
func (s *RedisSessionStore) ConsumePasswordReset(ctx context.Context, tokenHash string) (string, error) {
	val, err := s.c.GetDel(ctx, resetKeyPrefix+tokenHash).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (s *RedisSessionStore) get(ctx context.Context, key string) (string, error) {
	val, err := s.c.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return val, nil
}
