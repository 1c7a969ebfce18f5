// Package directory lists the marketplace's registered end users.
package directory

import (
	"context"
	"log/slog"

	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/rest"
)

// Service reads the users table
type Service struct {
	client *rest.Client
	logger *slog.Logger
}

// New creates a new directory service
func New(client *rest.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// List returns all users, newest first
func (s *Service) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	resource := rest.Table(model.TableUsers).Select("*").OrderDesc("created_at").String()
	if err := s.client.Get(ctx, resource, &users); err != nil {
		return nil, err
	}
	return users, nil
}
