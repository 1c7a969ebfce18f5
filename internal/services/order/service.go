// Package order reads the pesanan table.
package order

import (
	"context"
	"log/slog"

	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/rest"
)

// Service reads marketplace orders
type Service struct {
	client *rest.Client
	logger *slog.Logger
}

// New creates a new order service
func New(client *rest.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// ListIncoming returns pending orders, newest first
func (s *Service) ListIncoming(ctx context.Context) ([]model.Pesanan, error) {
	var orders []model.Pesanan
	resource := rest.Table(model.TablePesanan).
		Eq("status", model.OrderStatusPending).
		Select("*").
		OrderDesc("tanggal_pesanan").
		String()
	if err := s.client.Get(ctx, resource, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListHistory returns completed and cancelled orders, newest first
func (s *Service) ListHistory(ctx context.Context) ([]model.Pesanan, error) {
	var orders []model.Pesanan
	resource := rest.Table(model.TablePesanan).
		In("status", model.OrderStatusSelesai, model.OrderStatusDibatalkan).
		Select("*").
		OrderDesc("tanggal_pesanan").
		String()
	if err := s.client.Get(ctx, resource, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
