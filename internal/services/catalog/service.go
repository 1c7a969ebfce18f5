// Package catalog manages the service offerings and their tariffs.
package catalog

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/rest"
)

// Service manages the layanan table
type Service struct {
	client *rest.Client
	logger *slog.Logger
}

// New creates a new catalog service
func New(client *rest.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// List returns all service offerings, newest first
func (s *Service) List(ctx context.Context) ([]model.Layanan, error) {
	var services []model.Layanan
	resource := rest.Table(model.TableLayanan).Select("*").OrderDesc("created_at").String()
	if err := s.client.Get(ctx, resource, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// ListByName returns all service offerings sorted by name, for tariff
// management where offerings are looked up alphabetically.
func (s *Service) ListByName(ctx context.Context) ([]model.Layanan, error) {
	var services []model.Layanan
	resource := rest.Table(model.TableLayanan).Select("*").OrderAsc("nama_layanan").String()
	if err := s.client.Get(ctx, resource, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// Add creates a new offering. Name and a positive tariff are required; the
// offering starts active.
func (s *Service) Add(ctx context.Context, layanan model.Layanan) (*model.Layanan, error) {
	if layanan.NamaLayanan == "" {
		return nil, model.NewValidationError("nama_layanan", "must not be empty")
	}
	if layanan.Tarif <= 0 {
		return nil, model.NewValidationError("tarif", "must be a positive number")
	}
	layanan.Aktif = true

	var inserted []model.Layanan
	if err := s.client.Post(ctx, model.TableLayanan, layanan, &inserted); err != nil {
		return nil, err
	}

	created := layanan
	if len(inserted) > 0 {
		created = inserted[0]
	}
	s.logger.Info("service added",
		slog.String("id", created.ID),
		slog.String("name", created.NamaLayanan),
	)
	return &created, nil
}

// ParseTariff validates a user-entered tariff string
func ParseTariff(raw string) (float64, error) {
	tarif, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, model.NewValidationError("tarif", "must be a number")
	}
	if tarif <= 0 {
		return 0, model.NewValidationError("tarif", "must be a positive number")
	}
	return tarif, nil
}

// SetTariff updates an offering's tariff
func (s *Service) SetTariff(ctx context.Context, id string, tarif float64) error {
	if tarif <= 0 {
		return model.NewValidationError("tarif", "must be a positive number")
	}

	resource := rest.Table(model.TableLayanan).Eq("id", id).String()
	if err := s.client.Patch(ctx, resource, map[string]float64{"tarif": tarif}, nil); err != nil {
		return err
	}
	s.logger.Info("tariff updated",
		slog.String("id", id),
		slog.Float64("tarif", tarif),
	)
	return nil
}
