// Package report computes summary statistics over users, partners, and orders.
package report

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/rest"
)

// Summary holds the derived aggregates for the reports view
type Summary struct {
	TotalUsers      int     `json:"total_users"`
	TotalPartners   int     `json:"total_partners"`
	TotalOrders     int     `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	OrdersCompleted int     `json:"orders_completed"`
	OrdersPending   int     `json:"orders_pending"`
}

// Service computes report summaries
type Service struct {
	client *rest.Client
	logger *slog.Logger
}

// New creates a new report service
func New(client *rest.Client, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Summarize issues the three collection reads concurrently and derives the
// aggregates once all have resolved. If any read fails, the whole summary
// fails; there is no partial result.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	var (
		users    []model.User
		partners []model.Mitra
		orders   []model.Pesanan
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.client.Get(ctx, rest.Table(model.TableUsers).Select("*").String(), &users)
	})
	g.Go(func() error {
		return s.client.Get(ctx, rest.Table(model.TableMitra).Select("*").String(), &partners)
	})
	g.Go(func() error {
		return s.client.Get(ctx, rest.Table(model.TablePesanan).Select("*").String(), &orders)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalUsers:    len(users),
		TotalPartners: len(partners),
		TotalOrders:   len(orders),
	}
	for _, order := range orders {
		summary.TotalRevenue += order.TotalBayar
		switch order.Status {
		case model.OrderStatusSelesai:
			summary.OrdersCompleted++
		case model.OrderStatusPending:
			summary.OrdersPending++
		}
	}

	s.logger.Debug("summary computed",
		slog.Int("users", summary.TotalUsers),
		slog.Int("partners", summary.TotalPartners),
		slog.Int("orders", summary.TotalOrders),
	)
	return summary, nil
}
