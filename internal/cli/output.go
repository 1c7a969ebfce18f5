package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/services/report"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []model.User:
		o.printUsers(v)
	case []model.Mitra:
		o.printPartners(v)
	case []model.CalonMitra:
		o.printCandidates(v)
	case []model.Layanan:
		o.printServices(v)
	case []model.Pesanan:
		o.printOrders(v)
	case []model.Rating:
		o.printRatings(v)
	case []model.Komplain:
		o.printComplaints(v)
	case *report.Summary:
		o.printSummary(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printUsers(users []model.User) {
	for _, u := range users {
		fmt.Printf("%s  %-20s %-30s saldo=%.0f\n", u.ID, u.Nama, u.Email, u.Saldo)
	}
	fmt.Printf("Total: %d users\n", len(users))
}

func (o *Output) printPartners(partners []model.Mitra) {
	for _, m := range partners {
		blocked := ""
		if m.Blokir {
			blocked = " [BLOKIR]"
		}
		fmt.Printf("%s  %-20s %-30s %-15s %s%s\n", m.ID, m.Nama, m.Email, m.JenisLayanan, m.Status, blocked)
	}
	fmt.Printf("Total: %d partners\n", len(partners))
}

func (o *Output) printCandidates(candidates []model.CalonMitra) {
	for _, c := range candidates {
		fmt.Printf("%s  %-20s %-30s %s\n", c.ID, c.Nama, c.Email, c.JenisLayanan)
	}
	fmt.Printf("Total: %d candidates\n", len(candidates))
}

func (o *Output) printServices(services []model.Layanan) {
	for _, l := range services {
		active := "aktif"
		if !l.Aktif {
			active = "nonaktif"
		}
		fmt.Printf("%s  %-25s %-15s tarif=%.0f %s\n", l.ID, l.NamaLayanan, l.Kategori, l.Tarif, active)
	}
	fmt.Printf("Total: %d services\n", len(services))
}

func (o *Output) printOrders(orders []model.Pesanan) {
	for _, p := range orders {
		fmt.Printf("%s  user=%s mitra=%s %-10s total=%.0f %s\n",
			p.ID, p.UserID, p.MitraID, p.Status, p.TotalBayar, p.TanggalPesanan)
	}
	fmt.Printf("Total: %d orders\n", len(orders))
}

func (o *Output) printRatings(ratings []model.Rating) {
	for _, r := range ratings {
		fmt.Printf("%s  mitra=%s nilai=%.1f %s\n", r.ID, r.MitraID, r.NilaiRating, r.Komentar)
	}
	fmt.Printf("Total: %d ratings\n", len(ratings))
}

func (o *Output) printComplaints(complaints []model.Komplain) {
	for _, k := range complaints {
		fmt.Printf("%s  pesanan=%s %-10s %s\n", k.ID, k.PesananID, k.Status, k.IsiKomplain)
	}
	fmt.Printf("Total: %d complaints\n", len(complaints))
}

func (o *Output) printSummary(s *report.Summary) {
	fmt.Printf("Total user      : %d\n", s.TotalUsers)
	fmt.Printf("Total mitra     : %d\n", s.TotalPartners)
	fmt.Printf("Total pesanan   : %d\n", s.TotalOrders)
	fmt.Printf("Total pendapatan: %.0f\n", s.TotalRevenue)
	fmt.Printf("Pesanan selesai : %d\n", s.OrdersCompleted)
	fmt.Printf("Pesanan pending : %d\n", s.OrdersPending)
}
