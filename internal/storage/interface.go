package storage

import (
	"context"

	"github.com/smartcare-id/admin-console/internal/model"
)

// Storage defines the interface for persisted console state: the admin
// credential collection and the singleton session. Both round-trip through
// JSON in the backing store; a missing key reads back as empty/nil, never
// as an error.
type Storage interface {
	// Admin credential collection (ordered)
	GetAdmins(ctx context.Context) ([]model.Admin, error)
	SaveAdmins(ctx context.Context, admins []model.Admin) error

	// Current session; GetSession returns nil when logged out
	GetSession(ctx context.Context) (*model.AdminSession, error)
	SaveSession(ctx context.Context, session *model.AdminSession) error
	DeleteSession(ctx context.Context) error
}
