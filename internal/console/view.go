package console

import "fmt"

// ViewID identifies one of the console's screens. The set is closed: every
// ViewID has a name and a handler, and parsing rejects anything else.
type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewVerifyPartners
	ViewPartners
	ViewUsers
	ViewBlockPartners
	ViewAdminSettings
	ViewServices
	ViewAddService
	ViewTariffs
	ViewIncomingOrders
	ViewOrderHistory
	ViewComplaints
	ViewReports
	ViewRatings
	ViewReset
)

var viewNames = map[ViewID]string{
	ViewDashboard:      "dashboard",
	ViewVerifyPartners: "verify-partners",
	ViewPartners:       "partners",
	ViewUsers:          "users",
	ViewBlockPartners:  "block-partners",
	ViewAdminSettings:  "admin-settings",
	ViewServices:       "services",
	ViewAddService:     "add-service",
	ViewTariffs:        "tariffs",
	ViewIncomingOrders: "incoming-orders",
	ViewOrderHistory:   "order-history",
	ViewComplaints:     "complaints",
	ViewReports:        "reports",
	ViewRatings:        "ratings",
	ViewReset:          "reset",
}

var viewTitles = map[ViewID]string{
	ViewDashboard:      "Dashboard",
	ViewVerifyPartners: "Verifikasi Calon Mitra",
	ViewPartners:       "Daftar Mitra Aktif",
	ViewUsers:          "Daftar User",
	ViewBlockPartners:  "Blokir/Buka Blokir Mitra",
	ViewAdminSettings:  "Pengaturan Akun Admin",
	ViewServices:       "Daftar Layanan Aktif",
	ViewAddService:     "Tambah Layanan Baru",
	ViewTariffs:        "Kelola Tarif Layanan",
	ViewIncomingOrders: "Pesanan Masuk",
	ViewOrderHistory:   "Riwayat Pesanan",
	ViewComplaints:     "Keluhan/Komplain User",
	ViewReports:        "Laporan Harian/Bulanan",
	ViewRatings:        "Data Rating Mitra",
	ViewReset:          "Reset Semua Data",
}

// String returns the view's command name
func (v ViewID) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("ViewID(%d)", int(v))
}

// Title returns the view's display title
func (v ViewID) Title() string {
	return viewTitles[v]
}

// ParseViewID resolves a command name to a ViewID
func ParseViewID(name string) (ViewID, error) {
	for id, n := range viewNames {
		if n == name {
			return id, nil
		}
	}
	return ViewDashboard, fmt.Errorf("unknown view: %q", name)
}

// ViewIDs returns all views in menu order
func ViewIDs() []ViewID {
	return []ViewID{
		ViewDashboard,
		ViewVerifyPartners,
		ViewPartners,
		ViewUsers,
		ViewBlockPartners,
		ViewAdminSettings,
		ViewServices,
		ViewAddService,
		ViewTariffs,
		ViewIncomingOrders,
		ViewOrderHistory,
		ViewComplaints,
		ViewReports,
		ViewRatings,
		ViewReset,
	}
}
