package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNotFound is returned when no live session exists for the email.
var ErrNotFound = errors.New("session not found")

// Store keeps the signed token of each live session keyed by user email.
// Login saves, logout deletes, and the auth middleware checks that a
// presented token is still the stored one, so revocation takes effect
// before the token itself expires.
type Store interface {
	Save(ctx context.Context, email, token string, ttl time.Duration) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Save(ctx context.Context, email, token string, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKey(email), token, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, email string) (string, error) {
	token, err := s.rdb.Get(ctx, sessionKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Delete(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, sessionKey(email)).Err()
}

func sessionKey(email string) string {
	return "session:" + email
}

// MemoryStore is a process-local Store used in tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
}

type memorySession struct {
	token     string
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memorySession)}
}

func (s *MemoryStore) Save(ctx context.Context, email, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[email] = memorySession{token: token, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[email]
	if !ok || time.Now().After(sess.expiresAt) {
		delete(s.sessions, email)
		return "", ErrNotFound
	}
	return sess.token, nil
}

func (s *MemoryStore) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, email)
	return nil
}
