package resttest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcare-id/admin-console/internal/model"
	"github.com/smartcare-id/admin-console/internal/rest"
	"github.com/smartcare-id/admin-console/internal/testutil"
)

func newServerAndClient(t *testing.T) (*Server, *rest.Client) {
	t.Helper()
	server := NewServer("test-key", testutil.NopLogger())
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return server, rest.NewClient(ts.URL, "test-key", testutil.NopLogger())
}

func TestGetFiltersAndOrders(t *testing.T) {
	server, client := newServerAndClient(t)
	require.NoError(t, server.Seed(model.TablePesanan,
		model.Pesanan{ID: "1", Status: "pending", TanggalPesanan: "2025-01-01"},
		model.Pesanan{ID: "2", Status: "selesai", TanggalPesanan: "2025-01-02"},
		model.Pesanan{ID: "3", Status: "pending", TanggalPesanan: "2025-01-03"},
	))

	var orders []model.Pesanan
	err := client.Get(context.Background(), "pesanan?status=eq.pending&select=*&order=tanggal_pesanan.desc", &orders)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "3", orders[0].ID)
	assert.Equal(t, "1", orders[1].ID)
}

func TestGetInFilter(t *testing.T) {
	server, client := newServerAndClient(t)
	require.NoError(t, server.Seed(model.TablePesanan,
		model.Pesanan{ID: "1", Status: "pending"},
		model.Pesanan{ID: "2", Status: "selesai"},
		model.Pesanan{ID: "3", Status: "dibatalkan"},
	))

	var orders []model.Pesanan
	err := client.Get(context.Background(), "pesanan?status=in.(selesai,dibatalkan)&select=*", &orders)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestPostAssignsID(t *testing.T) {
	server, client := newServerAndClient(t)

	var inserted []model.Layanan
	err := client.Post(context.Background(), "layanan", model.Layanan{NamaLayanan: "Cuci AC", Tarif: 75000, Aktif: true}, &inserted)
	require.NoError(t, err)
	require.Len(t, inserted, 1)
	assert.NotEmpty(t, inserted[0].ID)
	assert.NotEmpty(t, inserted[0].CreatedAt)

	assert.Len(t, server.Rows(model.TableLayanan), 1)
}

func TestPatchByID(t *testing.T) {
	server, client := newServerAndClient(t)
	require.NoError(t, server.Seed(model.TableMitra,
		model.Mitra{ID: "m1", Nama: "Asep", Blokir: false},
		model.Mitra{ID: "m2", Nama: "Dedi", Blokir: false},
	))

	err := client.Patch(context.Background(), "mitras?id=eq.m1", map[string]bool{"blokir": true}, nil)
	require.NoError(t, err)

	rows := server.Rows(model.TableMitra)
	for _, row := range rows {
		if row["id"] == "m1" {
			assert.Equal(t, true, row["blokir"])
		} else {
			assert.Equal(t, false, row["blokir"])
		}
	}
}

func TestDeleteFilteredAndUnfiltered(t *testing.T) {
	server, client := newServerAndClient(t)
	require.NoError(t, server.Seed(model.TableCalonMitra,
		model.CalonMitra{ID: "c1"},
		model.CalonMitra{ID: "c2"},
	))

	require.NoError(t, client.Delete(context.Background(), "calon_mitra?id=eq.c1"))
	assert.Len(t, server.Rows(model.TableCalonMitra), 1)

	require.NoError(t, client.Delete(context.Background(), "calon_mitra"))
	assert.Empty(t, server.Rows(model.TableCalonMitra))
}

func TestRejectsWrongAPIKey(t *testing.T) {
	server := NewServer("right-key", testutil.NopLogger())
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	client := rest.NewClient(ts.URL, "wrong-key", testutil.NopLogger())

	err := client.Get(context.Background(), "users", nil)
	var reqErr *rest.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusUnauthorized, reqErr.Status)
}

func TestForcedFailureIsOneShot(t *testing.T) {
	server, client := newServerAndClient(t)
	server.FailWith(http.MethodGet, "users", http.StatusInternalServerError)

	err := client.Get(context.Background(), "users?select=*", nil)
	var reqErr *rest.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)

	require.NoError(t, client.Get(context.Background(), "users?select=*", nil))
}

func TestCallLogRecordsOrder(t *testing.T) {
	server, client := newServerAndClient(t)

	_ = client.Get(context.Background(), "users?select=*", nil)
	_ = client.Delete(context.Background(), "rating")

	calls := server.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, Call{Method: http.MethodGet, Table: "users"}, calls[0])
	assert.Equal(t, Call{Method: http.MethodDelete, Table: "rating"}, calls[1])
}
