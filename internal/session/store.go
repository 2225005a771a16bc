// internal/session/store.go
// UI 登入 session 儲存

package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Store session 儲存介面，注入 HTTP 層
// 單機部署用記憶體實作即可；多實例部署可換成外部儲存
type Store interface {
	// Create 建立新 session，回傳 token
	Create() (string, error)

	// Validate 檢查 token 是否有效且未過期
	Validate(token string) bool

	// Revoke 撤銷 session (登出)
	Revoke(token string)
}

type entry struct {
	createdAt time.Time
	expiresAt time.Time
}

// MemoryStore 記憶體 session 儲存，固定 TTL
type MemoryStore struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]entry
	now      func() time.Time // 測試時可替換
}

// NewMemoryStore 建立記憶體 session 儲存
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Create 建立新 session
func (s *MemoryStore) Create() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sessions[token] = entry{createdAt: now, expiresAt: now.Add(s.ttl)}
	return token, nil
}

// Validate 檢查 token，過期的 session 順手清掉
func (s *MemoryStore) Validate(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[token]
	if !ok {
		return false
	}
	if s.now().After(e.expiresAt) {
		delete(s.sessions, token)
		return false
	}
	return true
}

// Revoke 撤銷 session
func (s *MemoryStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
