package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriankd/maintenance-plus/internal/common"
	"github.com/adriankd/maintenance-plus/internal/entity"
	"github.com/adriankd/maintenance-plus/internal/export"
	"github.com/adriankd/maintenance-plus/internal/repository"
)

// fakeInvoiceRepo implements repository.InvoiceRepository in memory.
type fakeInvoiceRepo struct {
	headers  map[int]*entity.InvoiceHeader
	lines    map[int][]*entity.InvoiceLine
	created  []*repository.CreateInvoiceRequest
	deleted  []int
	migrated bool
	nextID   int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		headers: make(map[int]*entity.InvoiceHeader),
		lines:   make(map[int][]*entity.InvoiceLine),
		nextID:  1,
	}
}

func (f *fakeInvoiceRepo) seed(number string, vehicleID int, total float64) *entity.InvoiceHeader {
	h := &entity.InvoiceHeader{
		ID:             f.nextID,
		VehicleID:      vehicleID,
		InvoiceDate:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		InvoiceNumber:  number,
		TotalCost:      total,
		TotalPartsCost: total / 2,
		TotalLaborCost: total / 2,
		CreatedAt:      time.Now().UTC(),
	}
	f.headers[h.ID] = h
	f.nextID++
	return h
}

func (f *fakeInvoiceRepo) Create(_ context.Context, req *repository.CreateInvoiceRequest) (*entity.InvoiceHeader, error) {
	for _, h := range f.headers {
		if h.InvoiceNumber == req.InvoiceNumber {
			return nil, common.NewAppError("CONSTRAINT_VIOLATION", "duplicate invoice number", common.ErrConstraint)
		}
	}
	f.created = append(f.created, req)
	h := &entity.InvoiceHeader{
		ID:             f.nextID,
		VehicleID:      req.VehicleID,
		InvoiceDate:    req.InvoiceDate,
		InvoiceNumber:  req.InvoiceNumber,
		TotalCost:      req.TotalCost,
		TotalPartsCost: req.TotalPartsCost,
		TotalLaborCost: req.TotalLaborCost,
		CreatedAt:      time.Now().UTC(),
	}
	f.headers[h.ID] = h
	f.nextID++
	return h, nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, id int) (*entity.InvoiceHeader, error) {
	h, ok := f.headers[id]
	if !ok {
		return nil, common.NewAppError("INVOICE_NOT_FOUND", "invoice does not exist", common.ErrNotFound)
	}
	return h, nil
}

func (f *fakeInvoiceRepo) GetByNumber(_ context.Context, number string) (*entity.InvoiceHeader, error) {
	for _, h := range f.headers {
		if h.InvoiceNumber == number {
			return h, nil
		}
	}
	return nil, common.NewAppError("INVOICE_NOT_FOUND", "invoice does not exist", common.ErrNotFound)
}

func (f *fakeInvoiceRepo) List(_ context.Context, filter repository.ListInvoicesFilter) ([]*entity.InvoiceHeader, error) {
	var result []*entity.InvoiceHeader
	for _, h := range f.headers {
		if filter.VehicleID != nil && h.VehicleID != *filter.VehicleID {
			continue
		}
		result = append(result, h)
	}
	return result, nil
}

func (f *fakeInvoiceRepo) ListLines(_ context.Context, invoiceID int) ([]*entity.InvoiceLine, error) {
	if _, ok := f.headers[invoiceID]; !ok {
		return nil, common.NewAppError("INVOICE_NOT_FOUND", "invoice does not exist", common.ErrNotFound)
	}
	return f.lines[invoiceID], nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.headers[id]; !ok {
		return common.NewAppError("INVOICE_NOT_FOUND", "invoice does not exist", common.ErrNotFound)
	}
	delete(f.headers, id)
	delete(f.lines, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeInvoiceRepo) Migrate(context.Context) error {
	f.migrated = true
	return nil
}

func newTestServer(repo repository.InvoiceRepository, ping PingFunc) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(repo, export.NewService(repo, logger), ping, logger)
}

func doRequest(s *Server, method, target, remoteAddr string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

const validInvoiceBody = `{
	"vehicle_id": 42,
	"invoice_date": "2024-03-15",
	"invoice_number": "INV-1001",
	"total_cost": 245.50,
	"total_parts_cost": 120.00,
	"total_labor_cost": 125.50,
	"odometer": 88123,
	"confidence_score": 97.25,
	"lines": [
		{"line_number": 1, "category": "Parts", "part_number": "BRK-2210", "unit_cost": 60.00, "quantity": 2, "total_line_cost": 120.00, "confidence_score": 99.1},
		{"line_number": 2, "category": "labour", "unit_cost": 125.50, "quantity": 1, "total_line_cost": 125.50}
	]
}`

func TestListInvoices(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.seed("INV-1001", 42, 245.50)
	repo.seed("INV-1002", 7, 80.00)
	s := newTestServer(repo, nil)

	rec := doRequest(s, http.MethodGet, "/api/invoices", "198.51.100.7:1234", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)

	rec = doRequest(s, http.MethodGet, "/api/invoices?vehicle_id=42", "198.51.100.7:1234", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)

	rec = doRequest(s, http.MethodGet, "/api/invoices?vehicle_id=abc", "198.51.100.7:1234", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/invoices?from_date=15-03-2024", "198.51.100.7:1234", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetInvoice(t *testing.T) {
	repo := newFakeInvoiceRepo()
	seeded := repo.seed("INV-1001", 42, 245.50)
	s := newTestServer(repo, nil)

	rec := doRequest(s, http.MethodGet, "/api/invoices/1", "198.51.100.7:1234", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got entity.InvoiceHeader
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, seeded.InvoiceNumber, got.InvoiceNumber)

	rec = doRequest(s, http.MethodGet, "/api/invoices/999", "198.51.100.7:1234", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/invoices/zero", "198.51.100.7:1234", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetInvoiceByNumber(t *testing.T) {
	repo := newFakeInvoiceRepo()
	repo.seed("INV-1001", 42, 245.50)
	s := newTestServer(repo, nil)

	rec := doRequest(s, http.MethodGet, "/api/invoices/number/INV-1001", "198.51.100.7:1234", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/invoices/number/NOPE", "198.51.100.7:1234", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateInvoice(t *testing.T) {
	t.Run("loopback caller creates invoice", func(t *testing.T) {
		repo := newFakeInvoiceRepo()
		s := newTestServer(repo, nil)

		rec := doRequest(s, http.MethodPost, "/api/invoices", "127.0.0.1:50000", validInvoiceBody)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		require.Len(t, repo.created, 1)

		req := repo.created[0]
		assert.Equal(t, "INV-1001", req.InvoiceNumber)
		require.Len(t, req.Lines, 2)
		// free-text category is canonicalized before persisting
		assert.Equal(t, "Labor", req.Lines[1].Category)
	})

	t.Run("remote caller is forbidden", func(t *testing.T) {
		repo := newFakeInvoiceRepo()
		s := newTestServer(repo, nil)

		rec := doRequest(s, http.MethodPost, "/api/invoices", "198.51.100.7:1234", validInvoiceBody)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, repo.created)
	})

	t.Run("invalid payloads are rejected before persistence", func(t *testing.T) {
		bad := []struct {
			name string
			body string
		}{
			{"negative total cost", strings.Replace(validInvoiceBody, `"total_cost": 245.50`, `"total_cost": -0.01`, 1)},
			{"zero quantity", strings.Replace(validInvoiceBody, `"quantity": 2`, `"quantity": 0`, 1)},
			{"confidence above range", strings.Replace(validInvoiceBody, `"confidence_score": 97.25`, `"confidence_score": 100.01`, 1)},
			{"missing invoice number", strings.Replace(validInvoiceBody, `"invoice_number": "INV-1001",`, ``, 1)},
			{"bad date format", strings.Replace(validInvoiceBody, `"invoice_date": "2024-03-15"`, `"invoice_date": "15/03/2024"`, 1)},
			{"duplicate line numbers", strings.Replace(validInvoiceBody, `"line_number": 2`, `"line_number": 1`, 1)},
			{"no lines", `{"vehicle_id": 1, "invoice_date": "2024-03-15", "invoice_number": "INV-2", "total_cost": 1, "total_parts_cost": 0, "total_labor_cost": 1, "lines": []}`},
			{"not json", `{{{`},
		}
		for _, tt := range bad {
			t.Run(tt.name, func(t *testing.T) {
				repo := newFakeInvoiceRepo()
				s := newTestServer(repo, nil)
				rec := doRequest(s, http.MethodPost, "/api/invoices", "127.0.0.1:50000", tt.body)
				assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
				assert.Empty(t, repo.created)
			})
		}
	})

	t.Run("boundary values pass", func(t *testing.T) {
		repo := newFakeInvoiceRepo()
		s := newTestServer(repo, nil)

		body := strings.Replace(validInvoiceBody, `"quantity": 2`, `"quantity": 0.01`, 1)
		body = strings.Replace(body, `"confidence_score": 97.25`, `"confidence_score": 100`, 1)
		rec := doRequest(s, http.MethodPost, "/api/invoices", "127.0.0.1:50000", body)
		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("duplicate invoice number conflicts", func(t *testing.T) {
		repo := newFakeInvoiceRepo()
		repo.seed("INV-1001", 42, 245.50)
		s := newTestServer(repo, nil)

		rec := doRequest(s, http.MethodPost, "/api/invoices", "127.0.0.1:50000", validInvoiceBody)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestDeleteInvoice(t *testing.T) {
	t.Run("loopback caller deletes", func(t *testing.T) {
		repo := newFakeInvoiceRepo()
		repo.seed("INV-1001", 42, 245.50)
		s := newTestServer(repo, nil)

		rec := doRequest(s, http.MethodDelete, "/api/invoices/1", "[::1]:50000", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []int{1}, repo.deleted)
	})

	t.Run("remote caller is forbidden", func(t *testing.T) {
		repo := newFakeInvoiceRepo()
		repo.seed("INV-1001", 42, 245.50)
		s := newTestServer(repo, nil)

		rec := doRequest(s, http.MethodDelete, "/api/invoices/1", "198.51.100.7:1234", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, repo.deleted)
	})

	t.Run("missing invoice", func(t *testing.T) {
		repo := newFakeInvoiceRepo()
		s := newTestServer(repo, nil)

		rec := doRequest(s, http.MethodDelete, "/api/invoices/7", "127.0.0.1:50000", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMigrateSchema(t *testing.T) {
	repo := newFakeInvoiceRepo()
	s := newTestServer(repo, nil)

	rec := doRequest(s, http.MethodPost, "/internal/schema/migrate", "127.0.0.1:50000", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, repo.migrated)

	repo2 := newFakeInvoiceRepo()
	s2 := newTestServer(repo2, nil)
	rec = doRequest(s2, http.MethodPost, "/internal/schema/migrate", "198.51.100.7:1234", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, repo2.migrated)
}

func TestHealthz(t *testing.T) {
	repo := newFakeInvoiceRepo()

	s := newTestServer(repo, func(context.Context) error { return nil })
	rec := doRequest(s, http.MethodGet, "/healthz", "198.51.100.7:1234", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	s = newTestServer(repo, func(context.Context) error { return context.DeadlineExceeded })
	rec = doRequest(s, http.MethodGet, "/healthz", "198.51.100.7:1234", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListCategories(t *testing.T) {
	s := newTestServer(newFakeInvoiceRepo(), nil)
	rec := doRequest(s, http.MethodGet, "/api/categories", "198.51.100.7:1234", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Categories, "Parts")
	assert.Contains(t, resp.Categories, "Labor")
}
