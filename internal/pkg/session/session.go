// Package session holds server-side authentication state keyed by a cookie
// token. The payload is a flat user-session object; the store is redis when
// configured, an in-process map otherwise.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Lucien-Luc/Programs/internal/pkg/redis"
)

var ErrNoSession = errors.New("session not found")

// Session is the payload stored per authenticated user.
type Session struct {
	UserID    uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	LoginTime string `json:"loginTime"`
}

// Store persists sessions by token.
type Store interface {
	Get(ctx context.Context, token string) (*Session, error)
	Set(ctx context.Context, token string, sess *Session, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}

// Manager issues tokens and mediates store access.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Create stores a new session and returns its token.
func (m *Manager) Create(ctx context.Context, sess *Session) (string, error) {
	token := uuid.New().String()
	if err := m.store.Set(ctx, token, sess, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

func (m *Manager) Get(ctx context.Context, token string) (*Session, error) {
	return m.store.Get(ctx, token)
}

func (m *Manager) Destroy(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}

// RedisStore keeps sessions in redis with a TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(token))
	if err != nil {
		if redis.IsNil(err) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Set(ctx context.Context, token string, sess *Session, ttl time.Duration) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(token), raw, ttl)
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token))
}

// MemoryStore keeps sessions in process. Suitable for single-instance
// deployments without redis; sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	sess      Session
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrNoSession
	}
	sess := entry.sess
	return &sess, nil
}

func (s *MemoryStore) Set(_ context.Context, token string, sess *Session, ttl time.Duration) error {
	s.mu.Lock()
	s.sessions[token] = memoryEntry{sess: *sess, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
