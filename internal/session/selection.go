// Package session holds the per-user browsing state that is not worth a
// database table: the item a customer is currently looking at during the
// browse -> order flow. Identity itself travels in the JWT; only the
// in-progress selection lives here, keyed by user ID and overwritten
// every time a new item detail page is viewed. A second tab viewing a
// different item therefore replaces the first tab's selection; the last
// viewed item wins.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNoSelection is returned when a user tries to order without having
// viewed an item first (or after the selection expired).
var ErrNoSelection = errors.New("no item selection in session")

// Selection is the typed in-progress item record populated by the item
// detail page and consumed by the order endpoint.
type Selection struct {
	BaseID     string   `json:"base_id"`
	Name       string   `json:"name"`
	PriceCents uint32   `json:"price_cents"`
	Sizes      []string `json:"sizes"`
}

// SelectionStore persists one Selection per user. Put overwrites any
// previous value unconditionally.
type SelectionStore interface {
	Put(ctx context.Context, userID uint64, sel Selection) error
	Get(ctx context.Context, userID uint64) (Selection, error)
	Clear(ctx context.Context, userID uint64) error
}

// NewSelectionStore returns a Redis-backed store when a client is
// available and an in-process fallback otherwise, mirroring how the
// cache and rate limiter degrade without Redis.
func NewSelectionStore(rdb *redis.Client, ttl time.Duration) SelectionStore {
	if rdb == nil {
		return NewMemoryStore()
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func selectionKey(userID uint64) string {
	return "session:selection:" + strconv.FormatUint(userID, 10)
}

// RedisStore keeps selections in Redis with a TTL so abandoned browsing
// sessions clean themselves up.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func (s *RedisStore) Put(ctx context.Context, userID uint64, sel Selection) error {
	body, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, selectionKey(userID), body, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, userID uint64) (Selection, error) {
	body, err := s.rdb.Get(ctx, selectionKey(userID)).Bytes()
	if err == redis.Nil {
		return Selection{}, ErrNoSelection
	}
	if err != nil {
		return Selection{}, err
	}
	var sel Selection
	if err := json.Unmarshal(body, &sel); err != nil {
		return Selection{}, err
	}
	return sel, nil
}

func (s *RedisStore) Clear(ctx context.Context, userID uint64) error {
	return s.rdb.Del(ctx, selectionKey(userID)).Err()
}

// MemoryStore is the single-process fallback used when Redis is not
// configured, and by tests. Selections never expire here; logout clears
// them.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[uint64]Selection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[uint64]Selection)}
}

func (s *MemoryStore) Put(_ context.Context, userID uint64, sel Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = sel
	return nil
}

func (s *MemoryStore) Get(_ context.Context, userID uint64) (Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.data[userID]
	if !ok {
		return Selection{}, ErrNoSelection
	}
	return sel, nil
}

func (s *MemoryStore) Clear(_ context.Context, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return nil
}
