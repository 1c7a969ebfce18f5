// Package feedback manages ratings and user complaints.
package feedback

import (
	"context"
	"log/slog"

	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/rest"
)

// Service manages the rating and komplain tables
type Service struct {
	client *rest.Client
	logger *slog.Logger
}

// New creates a new feedback service
func New(client *rest.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// ListRatings returns all partner ratings, newest first
func (s *Service) ListRatings(ctx context.Context) ([]model.Rating, error) {
	var ratings []model.Rating
	resource := rest.Table(model.TableRating).Select("*").OrderDesc("tanggal_rating").String()
	if err := s.client.Get(ctx, resource, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

// ListComplaints returns all complaints, newest first
func (s *Service) ListComplaints(ctx context.Context) ([]model.Komplain, error) {
	var complaints []model.Komplain
	resource := rest.Table(model.TableKomplain).Select("*").OrderDesc("tanggal_komplain").String()
	if err := s.client.Get(ctx, resource, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

// SetComplaintStatus moves a complaint along pending -> diproses -> selesai
func (s *Service) SetComplaintStatus(ctx context.Context, id, status string) error {
	switch status {
	case model.ComplaintStatusDiproses, model.ComplaintStatusSelesai:
	default:
		return model.NewValidationError("status", "must be diproses or selesai")
	}

	resource := rest.Table(model.TableKomplain).Eq("id", id).String()
	if err := s.client.Patch(ctx, resource, map[string]string{"status": status}, nil); err != nil {
		return err
	}
	s.logger.Info("complaint status updated",
		slog.String("id", id),
		slog.String("status", status),
	)
	return nil
}
