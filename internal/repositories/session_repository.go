package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore is the durable per-visitor storage for the auth session.
// Values are opaque JSON snapshots; normalization lives in the service layer.
type SessionStore interface {
	Get(ctx context.Context, visitorID string) ([]byte, error)
	Put(ctx context.Context, visitorID string, raw []byte) error
	Delete(ctx context.Context, visitorID string) error
}

type RedisSessionStore struct {
	RDB *redis.Client
	TTL time.Duration
}

func sessionKey(visitorID string) string {
	return "session:" + visitorID
}

func (s *RedisSessionStore) Get(ctx context.Context, visitorID string) ([]byte, error) {
	raw, err := s.RDB.Get(ctx, sessionKey(visitorID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, visitorID string, raw []byte) error {
	return s.RDB.Set(ctx, sessionKey(visitorID), raw, s.TTL).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, visitorID string) error {
	return s.RDB.Del(ctx, sessionKey(visitorID)).Err()
}

// MemorySessionStore backs tests and single-node development runs.
type MemorySessionStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{data: make(map[string][]byte)}
}

func (s *MemorySessionStore) Get(_ context.Context, visitorID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[visitorID]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, nil
}

func (s *MemorySessionStore) Put(_ context.Context, visitorID string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(raw))
	copy(cp, raw)
	s.data[visitorID] = cp
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, visitorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, visitorID)
	return nil
}
