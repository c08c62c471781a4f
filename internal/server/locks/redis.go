package locks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/redis/go-redis/v9"
)

type releaser interface {
	Release(ctx context.Context) error
}

type obtainer interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (releaser, error)
}

type redislockObtainer struct {
	c *redislock.Client
}

func (o redislockObtainer) Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (releaser, error) {
	lock, err := o.c.Obtain(ctx, key, ttl, opt)
	if err != nil {
		return nil, err
	}
	return lock, nil
}

// RedisLocker holds dossier locks in Redis. The TTL bounds how long a crashed
// holder blocks others; waiting is bounded by the caller's context.
type RedisLocker struct {
	client obtainer
	ttl    time.Duration
	retry  time.Duration
	rdb    *redis.Client
}

// NewRedisLocker connects to addr and verifies the connection.
func NewRedisLocker(ctx context.Context, addr string, ttl time.Duration) (*RedisLocker, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &RedisLocker{
		client: redislockObtainer{c: redislock.New(rdb)},
		ttl:    ttl,
		retry:  100 * time.Millisecond,
		rdb:    rdb,
	}, nil
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (Release, error) {
	lock, err := l.client.Obtain(ctx, "lock:dossier:"+key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(l.retry),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: %s", common.ErrDossierLockNotObtained, key)
	}
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return err
		}
		return nil
	}, nil
}

func (l *RedisLocker) Close() error {
	if l.rdb == nil {
		return nil
	}
	return l.rdb.Close()
}
