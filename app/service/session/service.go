package session

import (
	"sync"

	"github.com/samber/do"
)

// Service owns every user's session. Sessions are created lazily on first
// contact and live for the process lifetime; there is no eviction.
type Service struct {
	mu       sync.RWMutex
	sessions map[int64]*UserSession
}

func New(_ *do.Injector) (*Service, error) {
	return &Service{
		sessions: make(map[int64]*UserSession),
	}, nil
}

func (s *Service) GetOrCreate(userID int64) UserSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = &UserSession{
			UserID: userID,
			Mode:   Idle{},
		}
		s.sessions[userID] = sess
	}

	return *sess
}

func (s *Service) Get(userID int64) (UserSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return UserSession{}, false
	}

	return *sess, true
}

// SetMode replaces the user's mode, creating the session if needed.
func (s *Service) SetMode(userID int64, mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = &UserSession{UserID: userID}
		s.sessions[userID] = sess
	}

	sess.Mode = mode
}

func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
