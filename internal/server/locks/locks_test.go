package locks

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bsm/redislock"
	"github.com/carlosftapiap/arcsapp-sub001/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_SerializesPerKey(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Lock(ctx, "dossier-1")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			assert.NoError(t, release(ctx))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, l.held())
}

func TestLocalLocker_IndependentKeys(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	r1, err := l.Lock(ctx, "a")
	require.NoError(t, err)
	r2, err := l.Lock(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, r1(ctx))
	require.NoError(t, r2(ctx))
	require.NoError(t, r2(ctx), "second release is a no-op")
	assert.Equal(t, 0, l.held())
}

func TestLocalLocker_ContextCancelled(t *testing.T) {
	l := NewLocalLocker()
	release, err := l.Lock(context.Background(), "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, release(context.Background()))
	assert.Equal(t, 0, l.held())
}

type fakeLock struct{ released int }

func (f *fakeLock) Release(context.Context) error {
	f.released++
	if f.released > 1 {
		return redislock.ErrLockNotHeld
	}
	return nil
}

type fakeObtainer struct {
	key  string
	ttl  time.Duration
	lock *fakeLock
	err  error
}

func (f *fakeObtainer) Obtain(_ context.Context, key string, ttl time.Duration, _ *redislock.Options) (releaser, error) {
	f.key, f.ttl = key, ttl
	if f.err != nil {
		return nil, f.err
	}
	return f.lock, nil
}

func TestRedisLocker_Lock(t *testing.T) {
	ob := &fakeObtainer{lock: &fakeLock{}}
	l := &RedisLocker{client: ob, ttl: time.Minute, retry: time.Millisecond}

	release, err := l.Lock(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "lock:dossier:d1", ob.key)
	assert.Equal(t, time.Minute, ob.ttl)

	require.NoError(t, release(context.Background()))
	require.NoError(t, release(context.Background()), "expired lock is not an error")
	assert.NoError(t, l.Close())
}

func TestRedisLocker_NotObtained(t *testing.T) {
	l := &RedisLocker{client: &fakeObtainer{err: redislock.ErrNotObtained}, ttl: time.Minute}

	_, err := l.Lock(context.Background(), "d1")
	assert.ErrorIs(t, err, common.ErrDossierLockNotObtained)

	boom := errors.New("connection refused")
	l = &RedisLocker{client: &fakeObtainer{err: boom}, ttl: time.Minute}
	_, err = l.Lock(context.Background(), "d1")
	assert.ErrorIs(t, err, boom)
}
