package service

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"dashboard/internal/config"
	"dashboard/internal/models"
)

// sessionService implements SessionService: one explicit, observable
// auth state object injected everywhere instead of ambient storage.
// The bearer token is the only thing it may persist.
type sessionService struct {
	logger    *logrus.Logger
	tokenFile string

	mu        sync.RWMutex
	token     string
	user      *models.User
	nextID    int
	listeners map[int]func()
}

// NewSessionService creates the session state holder. When a token
// file is configured, a previously saved token is restored so the
// session survives a restart.
func NewSessionService(cfg *config.Config, logger *logrus.Logger) SessionService {
	s := &sessionService{
		logger:    logger,
		tokenFile: cfg.Session.TokenFile,
		listeners: make(map[int]func()),
	}

	if s.tokenFile != "" {
		if data, err := os.ReadFile(s.tokenFile); err == nil {
			s.token = strings.TrimSpace(string(data))
			if s.token != "" {
				logger.Info("Restored session token from file")
			}
		}
	}

	return s
}

// Set stores a new token and user and notifies subscribers
func (s *sessionService) Set(token string, user *models.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	s.persistToken(token)
	s.notify()
}

// Clear drops the session and notifies subscribers
func (s *sessionService) Clear() {
	s.mu.Lock()
	cleared := s.token != "" || s.user != nil
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if cleared {
		s.persistToken("")
		s.notify()
	}
}

// Invalidate implements client.TokenSource; the client calls it when
// the backend answers 401
func (s *sessionService) Invalidate() {
	s.logger.Warn("Session invalidated by backend")
	s.Clear()
}

// Token returns the current bearer token, empty when logged out
func (s *sessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user, nil when logged out
func (s *sessionService) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether a session token is present
func (s *sessionService) Authenticated() bool {
	return s.Token() != ""
}

// Subscribe registers a listener called on every auth-state change and
// returns its id for Unsubscribe
func (s *sessionService) Subscribe(fn func()) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.listeners[s.nextID] = fn
	return s.nextID
}

// Unsubscribe removes a listener
func (s *sessionService) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// notify invokes listeners outside the lock
func (s *sessionService) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

func (s *sessionService) persistToken(token string) {
	if s.tokenFile == "" {
		return
	}
	if token == "" {
		if err := os.Remove(s.tokenFile); err != nil && !os.IsNotExist(err) {
			s.logger.WithError(err).Warn("Failed to remove session token file")
		}
		return
	}
	if err := os.WriteFile(s.tokenFile, []byte(token), 0o600); err != nil {
		s.logger.WithError(err).Warn("Failed to persist session token")
	}
}
