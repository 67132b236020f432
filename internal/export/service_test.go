package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/adriankd/maintenance-plus/internal/entity"
	"github.com/adriankd/maintenance-plus/internal/repository"
)

type stubInvoiceRepo struct {
	invoices []*entity.InvoiceHeader
	gotFrom  *time.Time
	gotTo    *time.Time
}

func (s *stubInvoiceRepo) Create(context.Context, *repository.CreateInvoiceRequest) (*entity.InvoiceHeader, error) {
	panic("not used")
}
func (s *stubInvoiceRepo) GetByID(context.Context, int) (*entity.InvoiceHeader, error) {
	panic("not used")
}
func (s *stubInvoiceRepo) GetByNumber(context.Context, string) (*entity.InvoiceHeader, error) {
	panic("not used")
}
func (s *stubInvoiceRepo) ListLines(context.Context, int) ([]*entity.InvoiceLine, error) {
	panic("not used")
}
func (s *stubInvoiceRepo) Delete(context.Context, int) error { panic("not used") }
func (s *stubInvoiceRepo) Migrate(context.Context) error     { panic("not used") }

func (s *stubInvoiceRepo) List(_ context.Context, filter repository.ListInvoicesFilter) ([]*entity.InvoiceHeader, error) {
	s.gotFrom = filter.FromDate
	s.gotTo = filter.ToDate
	return s.invoices, nil
}

func TestExportInvoicesXLSX(t *testing.T) {
	odometer := 88123
	confidence := 97.25
	repo := &stubInvoiceRepo{
		invoices: []*entity.InvoiceHeader{
			{
				ID:              1,
				VehicleID:       42,
				InvoiceDate:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				InvoiceNumber:   "INV-1001",
				TotalCost:       245.5,
				TotalPartsCost:  120,
				TotalLaborCost:  125.5,
				Odometer:        &odometer,
				ConfidenceScore: &confidence,
				CreatedAt:       time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC),
			},
			{
				ID:             2,
				VehicleID:      7,
				InvoiceDate:    time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
				InvoiceNumber:  "INV-1002",
				TotalCost:      80,
				TotalPartsCost: 80,
				TotalLaborCost: 0,
				CreatedAt:      time.Date(2024, 4, 2, 17, 30, 0, 0, time.UTC),
			},
		},
	}

	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, err := svc.ExportInvoicesXLSX(context.Background(), repository.ListInvoicesFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	get := func(cell string) string {
		v, err := wb.GetCellValue("Invoices", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Invoice Number", get("A1"))
	assert.Equal(t, "Created At", get("I1"))

	assert.Equal(t, "INV-1001", get("A2"))
	assert.Equal(t, "42", get("B2"))
	assert.Equal(t, "2024-03-15", get("C2"))
	assert.Equal(t, "245.50", get("D2"))
	assert.Equal(t, "97.25", get("H2"))

	assert.Equal(t, "INV-1002", get("A3"))
	// optional fields render empty
	assert.Equal(t, "", get("G3"))
	assert.Equal(t, "", get("H3"))
}

func TestExportWindowDefaultsToToday(t *testing.T) {
	repo := &stubInvoiceRepo{}
	svc := NewService(repo, nil)

	from := time.Date(2024, 3, 1, 13, 45, 0, 0, time.UTC)
	_, err := svc.ExportInvoicesXLSX(context.Background(), repository.ListInvoicesFilter{FromDate: &from})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFrom)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *repo.gotFrom)
	require.NotNil(t, repo.gotTo, "open-ended window should close at today")
}
