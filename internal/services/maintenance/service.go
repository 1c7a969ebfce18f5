// Package maintenance implements the destructive full-data reset.
package maintenance

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/smartcare-id/admin-console/internal/model"
)

// ConfirmPhrase must be collected from the operator before ResetAll runs
const ConfirmPhrase = "RESET SEMUA DATA"

// resetOrder lists the tables children-first so unconditional deletes do
// not trip referential constraints.
var resetOrder = []string{
	model.TableRating,
	model.TableKomplain,
	model.TablePesanan,
	model.TableLayanan,
	model.TableMitra,
	model.TableCalonMitra,
	model.TableUsers,
}

// ResetError reports which table's delete aborted the sequence. Tables
// earlier in the order have already been cleared and are not restored.
type ResetError struct {
	Table string
	Err   error
}

func (e *ResetError) Error() string {
	return fmt.Sprintf("reset aborted at table %s: %v", e.Table, e.Err)
}

func (e *ResetError) Unwrap() error {
	return e.Err
}

// deleter is the slice of the REST client ResetAll needs
type deleter interface {
	Delete(ctx context.Context, resource string, headers ...http.Header) error
}

// Service performs the multi-table reset
type Service struct {
	client deleter
	logger *slog.Logger
}

// New creates a new maintenance service
func New(client deleter, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Tables returns the reset order, for display
func Tables() []string {
	out := make([]string, len(resetOrder))
	copy(out, resetOrder)
	return out
}

// ResetAll deletes every row of every table, children before parents. The
// sequence aborts on the first failure; earlier deletions stand. The
// caller must have verified the confirmation phrase.
func (s *Service) ResetAll(ctx context.Context, confirm string) error {
	if confirm != ConfirmPhrase {
		return model.NewValidationError("confirmation", "phrase does not match")
	}

	for _, table := range resetOrder {
		if err := s.client.Delete(ctx, table); err != nil {
			s.logger.Error("reset aborted",
				slog.String("table", table),
				slog.String("error", err.Error()),
			)
			return &ResetError{Table: table, Err: err}
		}
		s.logger.Info("table cleared", slog.String("table", table))
	}
	return nil
}
