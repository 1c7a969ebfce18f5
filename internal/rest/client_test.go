package rest

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcare-id/admin-console/internal/testutil"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-anon-key", testutil.NopLogger())
}

func TestGetDecodesCollection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/users", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","nama":"Budi"}]`))
	})

	var result []map[string]any
	err := client.Get(context.Background(), "users?select=*", &result)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Budi", result[0]["nama"])
}

func TestFixedHeadersAttached(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		_, _ = w.Write([]byte(`[]`))
	})

	err := client.Get(context.Background(), "users", nil)
	require.NoError(t, err)
}

func TestExtraHeadersMerge(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "exact", r.Header.Get("X-Client-Info"))
		assert.Equal(t, "test-anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
		_, _ = w.Write([]byte(`[]`))
	})

	// A caller-supplied credential header must not displace the fixed one.
	extra := http.Header{}
	extra.Set("X-Client-Info", "exact")
	extra.Set("apikey", "spoofed")
	err := client.Get(context.Background(), "users", nil, extra)
	require.NoError(t, err)
}

func TestNon2xxSurfacesStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusInternalServerError} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", status)
		})

		// result must be left untouched: no parse is attempted on errors
		result := []map[string]any{{"sentinel": true}}
		err := client.Get(context.Background(), "users", &result)

		var reqErr *RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, status, reqErr.Status)
		assert.Len(t, result, 1)
		assert.Equal(t, true, result[0]["sentinel"])
	}
}

func TestPatchSendsBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.42", r.URL.Query().Get("id"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"blokir":true}`, string(body))
		_, _ = w.Write([]byte(`[{"id":"42","blokir":true}]`))
	})

	err := client.Patch(context.Background(), "mitras?id=eq.42", map[string]bool{"blokir": true}, nil)
	require.NoError(t, err)
}

func TestDeleteUnfiltered(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/rest/v1/rating", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Delete(context.Background(), "rating")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Get(ctx, "users", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestQueryBuilder(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want string
	}{
		{
			name: "bare table",
			q:    Table("rating"),
			want: "rating",
		},
		{
			name: "select with order",
			q:    Table("users").Select("*").OrderDesc("created_at"),
			want: "users?select=*&order=created_at.desc",
		},
		{
			name: "eq filter",
			q:    Table("pesanan").Eq("status", "pending").Select("*").OrderDesc("tanggal_pesanan"),
			want: "pesanan?status=eq.pending&select=*&order=tanggal_pesanan.desc",
		},
		{
			name: "in filter",
			q:    Table("pesanan").In("status", "selesai", "dibatalkan").Select("*"),
			want: "pesanan?status=in.(selesai,dibatalkan)&select=*",
		},
		{
			name: "ascending order",
			q:    Table("layanan").Select("*").OrderAsc("nama_layanan"),
			want: "layanan?select=*&order=nama_layanan.asc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.String())
		})
	}
}
