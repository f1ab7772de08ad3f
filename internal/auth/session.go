package auth

import (
	"errors"
	"sync"
	"time"
)

var ErrSessionNotFound = errors.New("refresh session not found")

// SessionStoreInterface tracks which refresh tokens are currently live, so a
// logout revokes the token before its JWT expiry.
type SessionStoreInterface interface {
	Register(refreshToken, userID string, duration time.Duration)
	Verify(refreshToken string) (string, error)
	Revoke(refreshToken string)
	StartCleanup(interval time.Duration)
}

type refreshSession struct {
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]refreshSession
}

func NewSessionStore() SessionStoreInterface {
	return &SessionStore{
		sessions: make(map[string]refreshSession),
	}
}

func (s *SessionStore) Register(refreshToken, userID string, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[refreshToken] = refreshSession{
		UserID:    userID,
		ExpiresAt: time.Now().Add(duration),
		CreatedAt: time.Now(),
	}
}

func (s *SessionStore) Verify(refreshToken string) (string, error) {
	s.mu.RLock()
	session, exists := s.sessions[refreshToken]
	s.mu.RUnlock()

	if !exists || time.Now().After(session.ExpiresAt) {
		return "", ErrSessionNotFound
	}
	return session.UserID, nil
}

func (s *SessionStore) Revoke(refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, refreshToken)
}

func (s *SessionStore) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			s.mu.Lock()
			for token, session := range s.sessions {
				if time.Now().After(session.ExpiresAt) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		}
	}()
}
