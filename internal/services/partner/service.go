// Package partner manages active partners and candidate verification.
package partner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/rest"
)

// OrphanError reports a candidate promotion that inserted the partner
// record but failed to remove the source candidate. The candidate row is
// left behind and must be cleaned up manually.
type OrphanError struct {
	CandidateID string
	Err         error
}

func (e *OrphanError) Error() string {
	return fmt.Sprintf("candidate %s promoted but not removed: %v", e.CandidateID, e.Err)
}

func (e *OrphanError) Unwrap() error {
	return e.Err
}

// Service manages the mitras and calon_mitra tables
type Service struct {
	client *rest.Client
	logger *slog.Logger
}

// New creates a new partner service
func New(client *rest.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// ListPartners returns all active partners, newest first
func (s *Service) ListPartners(ctx context.Context) ([]model.Mitra, error) {
	var partners []model.Mitra
	resource := rest.Table(model.TableMitra).Select("*").OrderDesc("created_at").String()
	if err := s.client.Get(ctx, resource, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

// SetBlocked updates a partner's block flag
func (s *Service) SetBlocked(ctx context.Context, id string, blocked bool) error {
	resource := rest.Table(model.TableMitra).Eq("id", id).String()
	if err := s.client.Patch(ctx, resource, map[string]bool{"blokir": blocked}, nil); err != nil {
		return err
	}
	s.logger.Info("partner block flag updated",
		slog.String("id", id),
		slog.Bool("blocked", blocked),
	)
	return nil
}

// ListCandidates returns all candidates awaiting verification, newest first
func (s *Service) ListCandidates(ctx context.Context) ([]model.CalonMitra, error) {
	var candidates []model.CalonMitra
	resource := rest.Table(model.TableCalonMitra).Select("*").OrderDesc("created_at").String()
	if err := s.client.Get(ctx, resource, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// Approve promotes a candidate: insert an active partner record built from
// the candidate, then delete the candidate. The two steps are not atomic;
// if the delete fails after a successful insert, an *OrphanError is
// returned and the candidate row remains in place.
func (s *Service) Approve(ctx context.Context, candidate model.CalonMitra) (*model.Mitra, error) {
	partner := model.Mitra{
		Nama:         candidate.Nama,
		Email:        candidate.Email,
		NomorHP:      candidate.NomorHP,
		KTP:          candidate.KTP,
		KK:           candidate.KK,
		Alamat:       candidate.Alamat,
		JenisLayanan: candidate.JenisLayanan,
		Status:       model.PartnerStatusActive,
		Saldo:        0,
		Blokir:       false,
	}

	var inserted []model.Mitra
	if err := s.client.Post(ctx, model.TableMitra, partner, &inserted); err != nil {
		return nil, err
	}
	created := partner
	if len(inserted) > 0 {
		created = inserted[0]
	}

	resource := rest.Table(model.TableCalonMitra).Eq("id", candidate.ID).String()
	if err := s.client.Delete(ctx, resource); err != nil {
		s.logger.Error("candidate delete failed after promotion",
			slog.String("candidate_id", candidate.ID),
			slog.String("error", err.Error()),
		)
		return &created, &OrphanError{CandidateID: candidate.ID, Err: err}
	}

	s.logger.Info("candidate approved",
		slog.String("candidate_id", candidate.ID),
		slog.String("partner_id", created.ID),
	)
	return &created, nil
}

// Reject removes a candidate without promotion
func (s *Service) Reject(ctx context.Context, id string) error {
	resource := rest.Table(model.TableCalonMitra).Eq("id", id).String()
	if err := s.client.Delete(ctx, resource); err != nil {
		return err
	}
	s.logger.Info("candidate rejected", slog.String("candidate_id", id))
	return nil
}
