package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/services/catalog"
	"github.com/smartcare-id/admin-console/internal/services/directory"
	"github.com/smartcare-id/admin-console/internal/services/feedback"
	"github.com/smartcare-id/admin-console/internal/services/maintenance"
	"github.com/smartcare-id/admin-console/internal/services/order"
	"github.com/smartcare-id/admin-console/internal/services/partner"
	"github.com/smartcare-id/admin-console/internal/services/report"
	"github.com/smartcare-id/admin-console/internal/services/session"
)

// Services bundles everything the shell drives
type Services struct {
	Session     *session.Service
	Directory   *directory.Service
	Partner     *partner.Service
	Catalog     *catalog.Service
	Order       *order.Service
	Feedback    *feedback.Service
	Report      *report.Service
	Maintenance *maintenance.Service
}

// Shell is the console's navigation state machine. It carries exactly two
// pieces of cross-cutting state: whether an admin is authenticated, and
// which view is active. Each view keeps its last fetched collection as
// local state; mutations patch that state in place by id instead of
// re-fetching.
//
// Every operation's error terminates here or at the caller loop; nothing
// propagates past the shell.
type Shell struct {
	services Services
	logger   *slog.Logger
	out      io.Writer

	authenticated bool
	active        ViewID

	// Per-view local list state
	users      []model.User
	partners   []model.Mitra
	candidates []model.CalonMitra
	offerings  []model.Layanan
	incoming   []model.Pesanan
	history    []model.Pesanan
	ratings    []model.Rating
	complaints []model.Komplain
	summary    *report.Summary
}

// NewShell creates a shell writing its renderings to out
func NewShell(services Services, logger *slog.Logger, out io.Writer) *Shell {
	return &Shell{
		services: services,
		logger:   logger,
		out:      out,
		active:   ViewDashboard,
	}
}

// Authenticated reports whether an admin is logged in
func (s *Shell) Authenticated() bool {
	return s.authenticated
}

// Active returns the currently selected view
func (s *Shell) Active() ViewID {
	return s.active
}

// Resume restores the authenticated state from a persisted session, so a
// restarted console stays logged in.
func (s *Shell) Resume(ctx context.Context) error {
	loggedIn, err := s.services.Session.IsLoggedIn(ctx)
	if err != nil {
		return err
	}
	s.authenticated = loggedIn
	s.active = ViewDashboard
	return nil
}

// Login authenticates and moves to the dashboard
func (s *Shell) Login(ctx context.Context, email, password string) error {
	if _, err := s.services.Session.Login(ctx, email, password); err != nil {
		return err
	}
	s.authenticated = true
	s.active = ViewDashboard
	return nil
}

// Register creates a new admin credential. The confirmation must match the
// password; registering does not log in.
func (s *Shell) Register(ctx context.Context, email, password, confirm string) error {
	if password != confirm {
		return model.NewValidationError("password confirmation", "does not match")
	}
	return s.services.Session.Register(ctx, email, password)
}

// Logout clears the session and returns to the unauthenticated state
func (s *Shell) Logout(ctx context.Context) error {
	if err := s.services.Session.Logout(ctx); err != nil {
		return err
	}
	s.authenticated = false
	s.active = ViewDashboard
	return nil
}

// Back returns to the dashboard; there is no navigation history
func (s *Shell) Back() {
	s.active = ViewDashboard
}

// Open activates a view: one read through the matching service, result kept
// as the view's local list. On failure the list is emptied and the error is
// returned for the caller to surface; the shell stays on the previous view.
func (s *Shell) Open(ctx context.Context, view ViewID) error {
	if !s.authenticated {
		return model.ErrNotLoggedIn
	}

	if err := s.fetch(ctx, view); err != nil {
		s.logger.Error("view activation failed",
			slog.String("view", view.String()),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.active = view
	s.render(view)
	return nil
}

// fetch runs the view's read and replaces its local state. The mapping is
// total over ViewID; views without a backing read just clear nothing.
func (s *Shell) fetch(ctx context.Context, view ViewID) error {
	var err error
	switch view {
	case ViewDashboard, ViewAdminSettings, ViewAddService, ViewReset:
		// No backing collection
	case ViewUsers:
		s.users = nil
		s.users, err = s.services.Directory.List(ctx)
	case ViewPartners, ViewBlockPartners:
		s.partners = nil
		s.partners, err = s.services.Partner.ListPartners(ctx)
	case ViewVerifyPartners:
		s.candidates = nil
		s.candidates, err = s.services.Partner.ListCandidates(ctx)
	case ViewServices:
		s.offerings = nil
		s.offerings, err = s.services.Catalog.List(ctx)
	case ViewTariffs:
		s.offerings = nil
		s.offerings, err = s.services.Catalog.ListByName(ctx)
	case ViewIncomingOrders:
		s.incoming = nil
		s.incoming, err = s.services.Order.ListIncoming(ctx)
	case ViewOrderHistory:
		s.history = nil
		s.history, err = s.services.Order.ListHistory(ctx)
	case ViewRatings:
		s.ratings = nil
		s.ratings, err = s.services.Feedback.ListRatings(ctx)
	case ViewComplaints:
		s.complaints = nil
		s.complaints, err = s.services.Feedback.ListComplaints(ctx)
	case ViewReports:
		s.summary = nil
		s.summary, err = s.services.Report.Summarize(ctx)
	}
	return err
}

// BlockPartner flips a partner's block flag and patches the local list
func (s *Shell) BlockPartner(ctx context.Context, id string, blocked bool) error {
	if err := s.services.Partner.SetBlocked(ctx, id, blocked); err != nil {
		return err
	}
	for i := range s.partners {
		if s.partners[i].ID == id {
			s.partners[i].Blokir = blocked
		}
	}
	return nil
}

// ApproveCandidate promotes the candidate with the given id. On success the
// candidate leaves the local list. On any failure the local list is left
// untouched, since the candidate row still exists on the backend. That
// includes the partial failure where the partner record was inserted but
// the candidate row remained; the returned error says which case occurred.
func (s *Shell) ApproveCandidate(ctx context.Context, id string) error {
	candidate, ok := s.findCandidate(id)
	if !ok {
		return model.ErrCandidateNotFound
	}

	if _, err := s.services.Partner.Approve(ctx, candidate); err != nil {
		return err
	}

	s.removeCandidate(id)
	return nil
}

// RejectCandidate deletes the candidate and removes it from the local list
func (s *Shell) RejectCandidate(ctx context.Context, id string) error {
	if _, ok := s.findCandidate(id); !ok {
		return model.ErrCandidateNotFound
	}
	if err := s.services.Partner.Reject(ctx, id); err != nil {
		return err
	}
	s.removeCandidate(id)
	return nil
}

// AddService creates a new offering and appends it to the local list
func (s *Shell) AddService(ctx context.Context, layanan model.Layanan) error {
	created, err := s.services.Catalog.Add(ctx, layanan)
	if err != nil {
		return err
	}
	s.offerings = append(s.offerings, *created)
	return nil
}

// UpdateTariff parses and applies a new tariff, patching the local list
func (s *Shell) UpdateTariff(ctx context.Context, id, rawTariff string) error {
	tarif, err := catalog.ParseTariff(rawTariff)
	if err != nil {
		return err
	}
	if err := s.services.Catalog.SetTariff(ctx, id, tarif); err != nil {
		return err
	}
	for i := range s.offerings {
		if s.offerings[i].ID == id {
			s.offerings[i].Tarif = tarif
		}
	}
	return nil
}

// SetComplaintStatus advances a complaint and patches the local list
func (s *Shell) SetComplaintStatus(ctx context.Context, id, status string) error {
	if err := s.services.Feedback.SetComplaintStatus(ctx, id, status); err != nil {
		return err
	}
	for i := range s.complaints {
		if s.complaints[i].ID == id {
			s.complaints[i].Status = status
		}
	}
	return nil
}

// UpdateAdmin rewrites the logged-in admin's credential. The session
// follows the rename, so the operator stays logged in.
func (s *Shell) UpdateAdmin(ctx context.Context, newEmail, newPassword, confirm string) error {
	if newPassword != confirm {
		return model.NewValidationError("password confirmation", "does not match")
	}
	current, err := s.services.Session.CurrentAdmin(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return model.ErrNotLoggedIn
	}
	return s.services.Session.UpdateAdmin(ctx, current.Email, newEmail, newPassword)
}

// ResetAll runs the destructive multi-table reset
func (s *Shell) ResetAll(ctx context.Context, confirm string) error {
	return s.services.Maintenance.ResetAll(ctx, confirm)
}

// Local state accessors, for rendering and tests

func (s *Shell) Users() []model.User             { return s.users }
func (s *Shell) Partners() []model.Mitra         { return s.partners }
func (s *Shell) Candidates() []model.CalonMitra  { return s.candidates }
func (s *Shell) Offerings() []model.Layanan      { return s.offerings }
func (s *Shell) IncomingOrders() []model.Pesanan { return s.incoming }
func (s *Shell) OrderHistory() []model.Pesanan   { return s.history }
func (s *Shell) Ratings() []model.Rating         { return s.ratings }
func (s *Shell) Complaints() []model.Komplain    { return s.complaints }
func (s *Shell) Summary() *report.Summary        { return s.summary }

func (s *Shell) findCandidate(id string) (model.CalonMitra, bool) {
	for _, c := range s.candidates {
		if c.ID == id {
			return c, true
		}
	}
	return model.CalonMitra{}, false
}

func (s *Shell) removeCandidate(id string) {
	kept := s.candidates[:0]
	for _, c := range s.candidates {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.candidates = kept
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
