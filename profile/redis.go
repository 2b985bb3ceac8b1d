package profile

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisPrefix   = "bt"
	redisRecordVersionV1 = 1
)

type redisRecord struct {
	Version int      `json:"v"`
	Profile *Profile `json:"profile"`
}

// RedisStore persists one JSON-encoded profile blob per user key. The
// per-user critical section is an in-process keyed lock layered over the
// Redis round-trip, so a single engine instance upholds the same
// serialization guarantees as MemoryStore while the blob survives restarts.
//
// Multiple engine instances sharing one Redis must shard users across
// instances; the store does not implement distributed locking.
type RedisStore struct {
	redis  *redis.Client
	prefix string
	ttl    time.Duration

	mu    sync.RWMutex
	locks map[string]*sync.RWMutex

	now func() time.Time
}

// NewRedisStore creates a Redis-backed Store. An empty prefix falls back to
// the default; ttl <= 0 stores profiles without expiry.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{
		redis:  client,
		prefix: prefix,
		ttl:    ttl,
		locks:  make(map[string]*sync.RWMutex),
		now:    time.Now,
	}
}

func (s *RedisStore) key(userID string) string {
	return s.prefix + ":profile:" + userID
}

func (s *RedisStore) lock(userID string) *sync.RWMutex {
	s.mu.RLock()
	l, ok := s.locks[userID]
	s.mu.RUnlock()
	if ok {
		return l
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok = s.locks[userID]; ok {
		return l
	}
	l = &sync.RWMutex{}
	s.locks[userID] = l
	return l
}

func (s *RedisStore) load(ctx context.Context, userID string) (*Profile, error) {
	data, err := s.redis.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	var rec redisRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Join(ErrProfileCorrupt, err)
	}
	if rec.Version != redisRecordVersionV1 || rec.Profile == nil {
		return nil, ErrProfileCorrupt
	}
	return rec.Profile, nil
}

func (s *RedisStore) save(ctx context.Context, userID string, p *Profile) error {
	data, err := json.Marshal(redisRecord{Version: redisRecordVersionV1, Profile: p})
	if err != nil {
		return err
	}
	if err := s.redis.Set(ctx, s.key(userID), data, s.ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Update describes the update operation and its observable behavior.
//
// Update loads the blob, runs fn under the user's exclusive lock, and writes
// the blob back when fn succeeds. A missing blob starts a fresh profile.
func (s *RedisStore) Update(ctx context.Context, userID string, fn func(p *Profile) error) error {
	l := s.lock(userID)
	l.Lock()
	defer l.Unlock()

	p, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	if p == nil {
		p = NewProfile(userID, s.now().UTC())
	}

	if err := fn(p); err != nil {
		return err
	}
	return s.save(ctx, userID, p)
}

// View describes the view operation and its observable behavior.
//
// View loads the blob under the user's shared lock and runs fn against it;
// fn receives nil when no blob exists. Nothing is written back.
func (s *RedisStore) View(ctx context.Context, userID string, fn func(p *Profile) error) error {
	l := s.lock(userID)
	l.RLock()
	defer l.RUnlock()

	p, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	return fn(p)
}
