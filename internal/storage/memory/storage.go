package memory

import (
	"context"
	"sync"

	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	admins  []model.Admin
	session *model.AdminSession
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetAdmins(ctx context.Context) ([]model.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Admin, len(s.admins))
	copy(out, s.admins)
	return out, nil
}

func (s *Storage) SaveAdmins(ctx context.Context, admins []model.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admins = make([]model.Admin, len(admins))
	copy(s.admins, admins)
	return nil
}

func (s *Storage) GetSession(ctx context.Context) (*model.AdminSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, nil
	}
	session := *s.session
	return &session, nil
}

func (s *Storage) SaveSession(ctx context.Context, session *model.AdminSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *session
	s.session = &stored
	return nil
}

func (s *Storage) DeleteSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
