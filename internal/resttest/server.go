package resttest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/smartcare-id/admin-console/internal/dependencies/random"
	"github.com/smartcare-id/admin-console/internal/middleware"
)

// recordIDAlphabet is the alphabet for generated record ids
const recordIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Call records one request the server observed
type Call struct {
	Method string
	Table  string
}

type failureKey struct {
	method string
	table  string
}

// Server is an in-memory stand-in for the tabular REST backend. It speaks
// the subset of the PostgREST grammar the console emits: select, eq. and
// in.(...) filters, order=field.asc|desc, PATCH/DELETE by filter, POST with
// return=representation. Records live as JSON objects per table.
//
// It exists for tests and for the fake-backend dev command; it is not a
// general PostgREST implementation.
type Server struct {
	mu       sync.Mutex
	tables   map[string][]map[string]any
	calls    []Call
	failures map[failureKey][]int

	apiKey  string
	random  random.Random
	handler http.Handler
}

// NewServer creates a fake backend. If apiKey is non-empty, requests must
// present it in the apikey header.
func NewServer(apiKey string, logger *slog.Logger) *Server {
	s := &Server{
		tables:   make(map[string][]map[string]any),
		failures: make(map[failureKey][]int),
		apiKey:   apiKey,
		random:   random.New(),
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/rest/v1").Subrouter()
	api.Use(middleware.Recovery(logger))
	api.Use(middleware.Logging(logger))
	api.HandleFunc("/{table}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/{table}", s.handlePost).Methods(http.MethodPost)
	api.HandleFunc("/{table}", s.handlePatch).Methods(http.MethodPatch)
	api.HandleFunc("/{table}", s.handleDelete).Methods(http.MethodDelete)

	s.handler = r
	return s
}

// Handler returns the HTTP handler for mounting or httptest
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Seed inserts records into a table. Each record is marshalled through JSON,
// so typed model structs work directly.
func (s *Server) Seed(table string, records ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		var row map[string]any
		if err := json.Unmarshal(data, &row); err != nil {
			return err
		}
		s.tables[table] = append(s.tables[table], row)
	}
	return nil
}

// Rows returns a copy of a table's rows
func (s *Server) Rows(table string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]map[string]any, 0, len(s.tables[table]))
	for _, row := range s.tables[table] {
		copied := make(map[string]any, len(row))
		for k, v := range row {
			copied[k] = v
		}
		rows = append(rows, copied)
	}
	return rows
}

// Calls returns the requests observed so far, in order
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// ResetCalls clears the recorded call log
func (s *Server) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// FailWith queues a one-shot failure status for the next request with the
// given method and table.
func (s *Server) FailWith(method, table string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := failureKey{method: method, table: table}
	s.failures[key] = append(s.failures[key], status)
}

// begin records the call, authenticates, and pops any queued failure.
// It returns false when the handler must not proceed.
func (s *Server) begin(w http.ResponseWriter, r *http.Request, table string) bool {
	s.mu.Lock()
	s.calls = append(s.calls, Call{Method: r.Method, Table: table})

	if s.apiKey != "" && r.Header.Get("apikey") != s.apiKey {
		s.mu.Unlock()
		writeError(w, http.StatusUnauthorized, "invalid api key")
		return false
	}

	key := failureKey{method: r.Method, table: table}
	if queued := s.failures[key]; len(queued) > 0 {
		status := queued[0]
		s.failures[key] = queued[1:]
		s.mu.Unlock()
		writeError(w, status, "forced failure")
		return false
	}
	s.mu.Unlock()
	return true
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]
	if !s.begin(w, r, table) {
		return
	}

	s.mu.Lock()
	rows := filterRows(s.tables[table], r.URL.Query())
	s.mu.Unlock()

	orderRows(rows, r.URL.Query().Get("order"))
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]
	if !s.begin(w, r, table) {
		return
	}

	var row map[string]any
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	if _, ok := row["id"]; !ok {
		row["id"] = s.random.String(8, recordIDAlphabet)
	}
	if _, ok := row["created_at"]; !ok {
		row["created_at"] = time.Now().UTC().Format(time.RFC3339)
	}

	s.mu.Lock()
	s.tables[table] = append(s.tables[table], row)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, []map[string]any{row})
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]
	if !s.begin(w, r, table) {
		return
	}

	var changes map[string]any
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	s.mu.Lock()
	updated := []map[string]any{}
	for _, row := range s.tables[table] {
		if matches(row, r.URL.Query()) {
			for k, v := range changes {
				row[k] = v
			}
			updated = append(updated, row)
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]
	if !s.begin(w, r, table) {
		return
	}

	s.mu.Lock()
	var kept []map[string]any
	for _, row := range s.tables[table] {
		if !matches(row, r.URL.Query()) {
			kept = append(kept, row)
		}
	}
	s.tables[table] = kept
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// filterRows returns copies of the rows matching the query's filters
func filterRows(rows []map[string]any, query map[string][]string) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		if matches(row, query) {
			copied := make(map[string]any, len(row))
			for k, v := range row {
				copied[k] = v
			}
			out = append(out, copied)
		}
	}
	return out
}

// matches applies every eq./in. filter in the query to the row. The select
// and order parameters are not filters.
func matches(row map[string]any, query map[string][]string) bool {
	for field, values := range query {
		if field == "select" || field == "order" {
			continue
		}
		for _, raw := range values {
			switch {
			case strings.HasPrefix(raw, "eq."):
				if stringify(row[field]) != strings.TrimPrefix(raw, "eq.") {
					return false
				}
			case strings.HasPrefix(raw, "in.(") && strings.HasSuffix(raw, ")"):
				list := strings.TrimSuffix(strings.TrimPrefix(raw, "in.("), ")")
				found := false
				for _, candidate := range strings.Split(list, ",") {
					if stringify(row[field]) == candidate {
						found = true
						break
					}
				}
				if !found {
					return false
				}
			}
		}
	}
	return true
}

// orderRows sorts rows in place by an order=field.direction expression
func orderRows(rows []map[string]any, order string) {
	if order == "" {
		return
	}
	field := order
	desc := false
	if cut, ok := strings.CutSuffix(order, ".desc"); ok {
		field, desc = cut, true
	} else if cut, ok := strings.CutSuffix(order, ".asc"); ok {
		field = cut
	}

	sort.SliceStable(rows, func(i, j int) bool {
		less := compareValues(rows[i][field], rows[j][field])
		if desc {
			return !less
		}
		return less
	})
}

func compareValues(a, b any) bool {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		return af < bf
	}
	return stringify(a) < stringify(b)
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", v)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		data = []any{}
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
