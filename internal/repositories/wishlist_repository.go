package repositories

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// WishlistStore persists the whole wishlist snapshot for one visitor.
// Independent from SessionStore on purpose: the two collections have separate
// lifecycles and neither may mutate the other.
type WishlistStore interface {
	Get(ctx context.Context, visitorID string) ([]byte, error)
	Put(ctx context.Context, visitorID string, raw []byte) error
	Delete(ctx context.Context, visitorID string) error
}

type RedisWishlistStore struct {
	RDB *redis.Client
}

func wishlistKey(visitorID string) string {
	return "wishlist:" + visitorID
}

func (s *RedisWishlistStore) Get(ctx context.Context, visitorID string) ([]byte, error) {
	raw, err := s.RDB.Get(ctx, wishlistKey(visitorID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *RedisWishlistStore) Put(ctx context.Context, visitorID string, raw []byte) error {
	return s.RDB.Set(ctx, wishlistKey(visitorID), raw, 0).Err()
}

func (s *RedisWishlistStore) Delete(ctx context.Context, visitorID string) error {
	return s.RDB.Del(ctx, wishlistKey(visitorID)).Err()
}

type MemoryWishlistStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryWishlistStore() *MemoryWishlistStore {
	return &MemoryWishlistStore{data: make(map[string][]byte)}
}

func (s *MemoryWishlistStore) Get(_ context.Context, visitorID string) ([]byte, error) {
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

func (s *MemoryWishlistStore) Put(_ context.Context, visitorID string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(raw))
	copy(cp, raw)
	s.data[visitorID] = cp
	return nil
}

func (s *MemoryWishlistStore) Delete(_ context.Context, visitorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, visitorID)
	return nil
}
