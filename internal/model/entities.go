package model

// Backend table names, in the PostgREST resource namespace.
const (
	TableUsers      = "users"
	TableMitra      = "mitras"
	TableCalonMitra = "calon_mitra"
	TableLayanan    = "layanan"
	TablePesanan    = "pesanan"
	TableRating     = "rating"
	TableKomplain   = "komplain"
)

// Order statuses as stored by the backend.
const (
	OrderStatusPending    = "pending"
	OrderStatusSelesai    = "selesai"
	OrderStatusDibatalkan = "dibatalkan"
)

// Complaint statuses.
const (
	ComplaintStatusPending  = "pending"
	ComplaintStatusDiproses = "diproses"
	ComplaintStatusSelesai  = "selesai"
)

// PartnerStatusActive is the status given to a partner promoted from the
// candidate table.
const PartnerStatusActive = "aktif"

// User is an end user of the marketplace.
type User struct {
	ID        string  `json:"id"`
	Nama      string  `json:"nama"`
	Email     string  `json:"email"`
	NomorHP   string  `json:"nomor_hp"`
	Alamat    string  `json:"alamat"`
	Saldo     float64 `json:"saldo"`
	CreatedAt string  `json:"created_at"`
}

// Mitra is an active service partner.
type Mitra struct {
	ID           string  `json:"id,omitempty"`
	Nama         string  `json:"nama"`
	Email        string  `json:"email"`
	NomorHP      string  `json:"nomor_hp"`
	KTP          string  `json:"ktp,omitempty"`
	KK           string  `json:"kk,omitempty"`
	Alamat       string  `json:"alamat,omitempty"`
	JenisLayanan string  `json:"jenis_layanan"`
	Status       string  `json:"status"`
	Saldo        float64 `json:"saldo"`
	Blokir       bool    `json:"blokir"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

// CalonMitra is a candidate partner awaiting verification.
type CalonMitra struct {
	ID           string `json:"id"`
	Nama         string `json:"nama"`
	Email        string `json:"email"`
	NomorHP      string `json:"nomor_hp"`
	KTP          string `json:"ktp"`
	KK           string `json:"kk"`
	Alamat       string `json:"alamat"`
	JenisLayanan string `json:"jenis_layanan"`
	CreatedAt    string `json:"created_at"`
}

// Layanan is a service offering with its tariff.
type Layanan struct {
	ID          string  `json:"id,omitempty"`
	NamaLayanan string  `json:"nama_layanan"`
	Deskripsi   string  `json:"deskripsi"`
	Tarif       float64 `json:"tarif"`
	Kategori    string  `json:"kategori"`
	Aktif       bool    `json:"aktif"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// Pesanan is an order linking a user, a partner, and a service.
type Pesanan struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	MitraID        string  `json:"mitra_id"`
	LayananID      string  `json:"layanan_id"`
	Status         string  `json:"status"`
	TotalBayar     float64 `json:"total_bayar"`
	AlamatPesanan  string  `json:"alamat_pesanan"`
	Catatan        string  `json:"catatan"`
	TanggalPesanan string  `json:"tanggal_pesanan"`
	TanggalSelesai string  `json:"tanggal_selesai,omitempty"`
}

// Rating is a user's review of a completed order.
type Rating struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	MitraID       string  `json:"mitra_id"`
	PesananID     string  `json:"pesanan_id"`
	NilaiRating   float64 `json:"nilai_rating"`
	Komentar      string  `json:"komentar"`
	TanggalRating string  `json:"tanggal_rating"`
}

// Komplain is a user complaint about an order.
type Komplain struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	MitraID         string `json:"mitra_id"`
	PesananID       string `json:"pesanan_id"`
	IsiKomplain     string `json:"isi_komplain"`
	Status          string `json:"status"`
	TanggalKomplain string `json:"tanggal_komplain"`
}
