package console

import (
	"github.com/smartcare-id/admin-console/internal/model"
)

// render writes the active view's local state to the shell's output. The
// mapping is total over ViewID.
func (s *Shell) render(view ViewID) {
	s.printf("== %s ==\n", view.Title())

	switch view {
	case ViewDashboard:
		s.renderDashboard()
	case ViewVerifyPartners:
		s.renderCandidates()
	case ViewPartners, ViewBlockPartners:
		s.renderPartners()
	case ViewUsers:
		s.renderUsers()
	case ViewAdminSettings:
		s.printf("Commands: update-admin <new-email> <new-password> <confirm>\n")
	case ViewServices, ViewTariffs:
		s.renderOfferings()
	case ViewAddService:
		s.printf("Commands: add-service <name>;<description>;<tariff>;<category>\n")
	case ViewIncomingOrders:
		s.renderOrders(s.incoming)
	case ViewOrderHistory:
		s.renderOrders(s.history)
	case ViewComplaints:
		s.renderComplaints()
	case ViewReports:
		s.renderSummary()
	case ViewRatings:
		s.renderRatings()
	case ViewReset:
		s.printf("This deletes every row of every table. Confirm with:\n")
		s.printf("  reset RESET SEMUA DATA\n")
	}
}

func (s *Shell) renderDashboard() {
	s.printf("Views:\n")
	for _, id := range ViewIDs() {
		if id == ViewDashboard {
			continue
		}
		s.printf("  %-16s %s\n", id.String(), id.Title())
	}
}

func (s *Shell) renderUsers() {
	if len(s.users) == 0 {
		s.printf("No users.\n")
		return
	}
	for _, u := range s.users {
		s.printf("  [%s] %s <%s> saldo=%.0f\n", u.ID, u.Nama, u.Email, u.Saldo)
	}
	s.printf("%d users\n", len(s.users))
}

func (s *Shell) renderPartners() {
	if len(s.partners) == 0 {
		s.printf("No partners.\n")
		return
	}
	for _, m := range s.partners {
		blocked := ""
		if m.Blokir {
			blocked = " [BLOKIR]"
		}
		s.printf("  [%s] %s <%s> %s status=%s%s\n", m.ID, m.Nama, m.Email, m.JenisLayanan, m.Status, blocked)
	}
	s.printf("%d partners\n", len(s.partners))
}

func (s *Shell) renderCandidates() {
	if len(s.candidates) == 0 {
		s.printf("No candidates awaiting verification.\n")
		return
	}
	for _, c := range s.candidates {
		s.printf("  [%s] %s <%s> %s ktp=%s alamat=%s\n", c.ID, c.Nama, c.Email, c.JenisLayanan, c.KTP, c.Alamat)
	}
	s.printf("%d candidates\n", len(s.candidates))
}

func (s *Shell) renderOfferings() {
	if len(s.offerings) == 0 {
		s.printf("No services.\n")
		return
	}
	for _, l := range s.offerings {
		active := "aktif"
		if !l.Aktif {
			active = "nonaktif"
		}
		s.printf("  [%s] %s (%s) tarif=%.0f %s\n", l.ID, l.NamaLayanan, l.Kategori, l.Tarif, active)
	}
	s.printf("%d services\n", len(s.offerings))
}

func (s *Shell) renderOrders(orders []model.Pesanan) {
	if len(orders) == 0 {
		s.printf("No orders.\n")
		return
	}
	for _, p := range orders {
		s.printf("  [%s] user=%s mitra=%s status=%s total=%.0f %s\n",
			p.ID, p.UserID, p.MitraID, p.Status, p.TotalBayar, p.TanggalPesanan)
	}
	s.printf("%d orders\n", len(orders))
}

func (s *Shell) renderComplaints() {
	if len(s.complaints) == 0 {
		s.printf("No complaints.\n")
		return
	}
	for _, k := range s.complaints {
		s.printf("  [%s] status=%s pesanan=%s: %s\n", k.ID, k.Status, k.PesananID, k.IsiKomplain)
	}
	s.printf("%d complaints\n", len(s.complaints))
}

func (s *Shell) renderRatings() {
	if len(s.ratings) == 0 {
		s.printf("No ratings.\n")
		return
	}
	for _, r := range s.ratings {
		s.printf("  [%s] mitra=%s nilai=%.1f: %s\n", r.ID, r.MitraID, r.NilaiRating, r.Komentar)
	}
	s.printf("%d ratings\n", len(s.ratings))
}

func (s *Shell) renderSummary() {
	if s.summary == nil {
		s.printf("No report data.\n")
		return
	}
	s.printf("  Total user      : %d\n", s.summary.TotalUsers)
	s.printf("  Total mitra     : %d\n", s.summary.TotalPartners)
	s.printf("  Total pesanan   : %d\n", s.summary.TotalOrders)
	s.printf("  Total pendapatan: %.0f\n", s.summary.TotalRevenue)
	s.printf("  Pesanan selesai : %d\n", s.summary.OrdersCompleted)
	s.printf("  Pesanan pending : %d\n", s.summary.OrdersPending)
}
