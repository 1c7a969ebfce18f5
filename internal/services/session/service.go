package session

import (
	"context"
	"log/slog"

	"github.com/smartcare-id/admin-console/internal/dependencies/clock"
	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/storage"
)

// Default credential seeded into an empty installation so the console is
// reachable before any admin has been registered.
const (
	DefaultAdminEmail    = "smartcare@gmail.com"
	DefaultAdminPassword = "Bandung123"
)

// Service manages the admin credential collection and the current session
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new session service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// InitializeDefault seeds the default credential if it is not present.
// Idempotent: an existing record with the default email is never
// overwritten, and no more than one such record ever exists.
func (s *Service) InitializeDefault(ctx context.Context) error {
	admins, err := s.storage.GetAdmins(ctx)
	if err != nil {
		return err
	}

	for _, admin := range admins {
		if admin.Email == DefaultAdminEmail {
			return nil
		}
	}

	admins = append(admins, model.Admin{
		Email:     DefaultAdminEmail,
		Password:  DefaultAdminPassword,
		CreatedAt: s.clock.Now(),
	})
	return s.storage.SaveAdmins(ctx, admins)
}

// Register appends a new credential. Email matching is exact and
// case-sensitive; a duplicate returns ErrEmailExists and leaves the
// collection unchanged.
func (s *Service) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return model.NewValidationError("credentials", "email and password are required")
	}

	admins, err := s.storage.GetAdmins(ctx)
	if err != nil {
		return err
	}

	for _, admin := range admins {
		if admin.Email == email {
			return model.ErrEmailExists
		}
	}

	admins = append(admins, model.Admin{
		Email:     email,
		Password:  password,
		CreatedAt: s.clock.Now(),
	})
	if err := s.storage.SaveAdmins(ctx, admins); err != nil {
		return err
	}

	s.logger.Info("admin registered", slog.String("email", email))
	return nil
}

// Login authenticates against the credential collection and persists a new
// session, overwriting any prior one. The default credential is seeded
// first, so login works on a fresh installation. A failed login returns
// ErrInvalidCredentials and leaves any existing session untouched.
func (s *Service) Login(ctx context.Context, email, password string) (*model.AdminSession, error) {
	if err := s.InitializeDefault(ctx); err != nil {
		return nil, err
	}

	admins, err := s.storage.GetAdmins(ctx)
	if err != nil {
		return nil, err
	}

	for _, admin := range admins {
		if admin.Email == email && admin.Password == password {
			session := &model.AdminSession{
				Email:     admin.Email,
				LoginTime: s.clock.Now(),
			}
			if err := s.storage.SaveSession(ctx, session); err != nil {
				return nil, err
			}
			s.logger.Info("admin logged in", slog.String("email", email))
			return session, nil
		}
	}

	return nil, model.ErrInvalidCredentials
}

// Logout clears the session unconditionally; calling it while logged out is
// not an error.
func (s *Service) Logout(ctx context.Context) error {
	return s.storage.DeleteSession(ctx)
}

// IsLoggedIn reports whether a session is currently persisted
func (s *Service) IsLoggedIn(ctx context.Context) (bool, error) {
	session, err := s.storage.GetSession(ctx)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}

// CurrentAdmin returns the active session, or nil when logged out
func (s *Service) CurrentAdmin(ctx context.Context) (*model.AdminSession, error) {
	return s.storage.GetSession(ctx)
}

// UpdateAdmin rewrites the credential matching oldEmail in place, keeping
// its position in the collection. If the active session belongs to
// oldEmail, the session follows the rename and keeps its original login
// time. Returns ErrAdminNotFound when no credential matches.
func (s *Service) UpdateAdmin(ctx context.Context, oldEmail, newEmail, newPassword string) error {
	if newEmail == "" || newPassword == "" {
		return model.NewValidationError("credentials", "email and password are required")
	}

	admins, err := s.storage.GetAdmins(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i, admin := range admins {
		if admin.Email == oldEmail {
			index = i
			break
		}
	}
	if index == -1 {
		return model.ErrAdminNotFound
	}

	admins[index].Email = newEmail
	admins[index].Password = newPassword
	if err := s.storage.SaveAdmins(ctx, admins); err != nil {
		return err
	}

	session, err := s.storage.GetSession(ctx)
	if err != nil {
		return err
	}
	if session != nil && session.Email == oldEmail {
		session.Email = newEmail
		if err := s.storage.SaveSession(ctx, session); err != nil {
			return err
		}
	}

	s.logger.Info("admin updated",
		slog.String("old_email", oldEmail),
		slog.String("new_email", newEmail),
	)
	return nil
}
