package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adriankd/maintenance-plus/gen/ent"
	"github.com/adriankd/maintenance-plus/internal/common"
)

// newTestRepo migrates the schema into an embedded in-memory database and
// hands back the raw *sql.DB so tests can assert storage-level behavior
// (check constraints, cascades) underneath the generated client.
func newTestRepo(t *testing.T) (InvoiceRepository, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	t.Cleanup(func() { _ = client.Close() })

	repo := NewInvoiceRepository(client, testLogger())
	require.NoError(t, repo.Migrate(context.Background()))
	return repo, db
}

func intp(v int) *int         { return &v }
func f64p(v float64) *float64 { return &v }
func strp(v string) *string   { return &v }

func ymd(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newInvoiceRequest(number string, vehicleID int, day time.Time) *CreateInvoiceRequest {
	return &CreateInvoiceRequest{
		VehicleID:       vehicleID,
		InvoiceDate:     day,
		InvoiceNumber:   number,
		TotalCost:       245.50,
		TotalPartsCost:  120.00,
		TotalLaborCost:  125.50,
		Odometer:        intp(88123),
		ConfidenceScore: f64p(97.25),
		// intentionally out of order; reads must come back sorted
		Lines: []CreateLineRequest{
			{LineNumber: 2, Category: "Labor", UnitCost: 125.50, Quantity: 1, TotalLineCost: 125.50},
			{LineNumber: 1, Category: "Parts", PartNumber: strp("BRK-2210"), UnitCost: 60.00, Quantity: 2, TotalLineCost: 120.00, ConfidenceScore: f64p(99.1)},
		},
	}
}

func TestInvoiceRepositoryCreateAndGet(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newInvoiceRequest("INV-1001", 42, ymd(2024, 3, 15)))
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, created.Lines, 2)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", got.InvoiceNumber)
	assert.Equal(t, 42, got.VehicleID)
	require.NotNil(t, got.Odometer)
	assert.Equal(t, 88123, *got.Odometer)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, 1, got.Lines[0].LineNumber)
	assert.Equal(t, 2, got.Lines[1].LineNumber)
	require.NotNil(t, got.Lines[0].PartNumber)
	assert.Equal(t, "BRK-2210", *got.Lines[0].PartNumber)
	assert.Nil(t, got.Lines[1].PartNumber)

	byNumber, err := repo.GetByNumber(ctx, "INV-1001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNumber.ID)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = repo.GetByNumber(ctx, "NOPE")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInvoiceRepositoryListFilters(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for _, seed := range []struct {
		number    string
		vehicleID int
		day       time.Time
	}{
		{"INV-1", 42, ymd(2024, 1, 10)},
		{"INV-2", 42, ymd(2024, 3, 15)},
		{"INV-3", 7, ymd(2024, 6, 1)},
	} {
		_, err := repo.Create(ctx, newInvoiceRequest(seed.number, seed.vehicleID, seed.day))
		require.NoError(t, err)
	}

	all, err := repo.List(ctx, ListInvoicesFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// ordered by invoice date
	assert.Equal(t, "INV-1", all[0].InvoiceNumber)
	assert.Equal(t, "INV-3", all[2].InvoiceNumber)

	byVehicle, err := repo.List(ctx, ListInvoicesFilter{VehicleID: intp(42)})
	require.NoError(t, err)
	assert.Len(t, byVehicle, 2)

	from := ymd(2024, 2, 1)
	fromOnly, err := repo.List(ctx, ListInvoicesFilter{FromDate: &from})
	require.NoError(t, err)
	assert.Len(t, fromOnly, 2)

	to := ymd(2024, 4, 1)
	window, err := repo.List(ctx, ListInvoicesFilter{FromDate: &from, ToDate: &to})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, "INV-2", window[0].InvoiceNumber)
}

func TestInvoiceRepositoryDuplicateInvoiceNumber(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, newInvoiceRequest("INV-1001", 42, ymd(2024, 3, 15)))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newInvoiceRequest("INV-1001", 7, ymd(2024, 4, 1)))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConstraint)
}

func TestInvoiceRepositoryDuplicateLineNumberRollsBack(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	req := newInvoiceRequest("INV-1001", 42, ymd(2024, 3, 15))
	req.Lines[0].LineNumber = 1
	req.Lines[1].LineNumber = 1

	_, err := repo.Create(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConstraint)

	// the header must not survive the failed transaction
	_, err = repo.GetByNumber(ctx, "INV-1001")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInvoiceRepositoryRejectsInvalidValues(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	negative := newInvoiceRequest("INV-NEG", 42, ymd(2024, 3, 15))
	negative.TotalCost = -0.01
	_, err := repo.Create(ctx, negative)
	require.Error(t, err)

	zeroQty := newInvoiceRequest("INV-QTY0", 42, ymd(2024, 3, 15))
	zeroQty.Lines[0].Quantity = 0
	_, err = repo.Create(ctx, zeroQty)
	require.Error(t, err)

	boundary := newInvoiceRequest("INV-EDGE", 42, ymd(2024, 3, 15))
	boundary.Lines[0].Quantity = 0.01
	boundary.ConfidenceScore = f64p(100)
	_, err = repo.Create(ctx, boundary)
	require.NoError(t, err)
}

func TestInvoiceRepositoryDeleteCascades(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newInvoiceRequest("INV-1001", 42, ymd(2024, 3, 15)))
	require.NoError(t, err)

	var lineCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "InvoiceLines"`).Scan(&lineCount))
	require.Equal(t, 2, lineCount)

	require.NoError(t, repo.Delete(ctx, created.ID))

	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "InvoiceLines"`).Scan(&lineCount))
	assert.Zero(t, lineCount)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

// TestStorageHeaderChecks drives raw SQL underneath the generated client so
// the check constraints themselves decide, not the client-side validators.
func TestStorageHeaderChecks(t *testing.T) {
	_, db := newTestRepo(t)

	const insertHeader = `INSERT INTO "InvoiceHeader"
		("VehicleID", "InvoiceDate", "InvoiceNumber", "TotalCost", "TotalPartsCost", "TotalLaborCost", "Odometer", "ConfidenceScore")
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	tests := []struct {
		name                string
		number              string
		total, parts, labor float64
		odometer            any
		confidence          any
		ok                  bool
	}{
		{"all money at zero", "RAW-1", 0, 0, 0, 0, 0.0, true},
		{"confidence at upper bound", "RAW-2", 10, 5, 5, nil, 100.0, true},
		{"nullable columns omitted", "RAW-3", 10, 5, 5, nil, nil, true},
		{"negative total cost", "RAW-4", -0.01, 0, 0, nil, nil, false},
		{"negative parts cost", "RAW-5", 0, -0.01, 0, nil, nil, false},
		{"negative labor cost", "RAW-6", 0, 0, -0.01, nil, nil, false},
		{"negative odometer", "RAW-7", 0, 0, 0, -1, nil, false},
		{"confidence above range", "RAW-8", 0, 0, 0, nil, 100.01, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.Exec(insertHeader, 1, "2024-03-15", tt.number, tt.total, tt.parts, tt.labor, tt.odometer, tt.confidence)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, "constraint")
		})
	}

	t.Run("duplicate invoice number", func(t *testing.T) {
		_, err := db.Exec(insertHeader, 1, "2024-03-15", "RAW-1", 0, 0, 0, nil, nil)
		require.Error(t, err)
		assert.ErrorContains(t, err, "constraint")
	})

	t.Run("created at defaults in the database", func(t *testing.T) {
		var createdAt string
		require.NoError(t, db.QueryRow(`SELECT "CreatedAt" FROM "InvoiceHeader" WHERE "InvoiceNumber" = ?`, "RAW-1").Scan(&createdAt))
		assert.NotEmpty(t, createdAt)
	})
}

func TestStorageLineChecks(t *testing.T) {
	_, db := newTestRepo(t)

	res, err := db.Exec(`INSERT INTO "InvoiceHeader"
		("VehicleID", "InvoiceDate", "InvoiceNumber", "TotalCost", "TotalPartsCost", "TotalLaborCost")
		VALUES (1, '2024-03-15', 'RAW-LINES', 10, 5, 5)`)
	require.NoError(t, err)
	headerID, err := res.LastInsertId()
	require.NoError(t, err)

	const insertLine = `INSERT INTO "InvoiceLines"
		("InvoiceID", "LineNumber", "Category", "UnitCost", "Quantity", "TotalLineCost", "ConfidenceScore")
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	tests := []struct {
		name             string
		invoiceID        int64
		lineNumber       int
		unit, qty, total float64
		confidence       any
		ok               bool
	}{
		{"smallest positive quantity", headerID, 1, 60, 0.01, 0.60, nil, true},
		{"confidence at upper bound", headerID, 2, 1, 1, 1, 100.0, true},
		{"zero line number", headerID, 0, 1, 1, 1, nil, false},
		{"zero quantity", headerID, 3, 1, 0, 1, nil, false},
		{"negative unit cost", headerID, 4, -0.01, 1, 1, nil, false},
		{"negative total line cost", headerID, 5, 1, 1, -0.01, nil, false},
		{"confidence above range", headerID, 6, 1, 1, 1, 100.01, false},
		{"unknown invoice id", 424242, 7, 1, 1, 1, nil, false},
		{"duplicate line number for invoice", headerID, 1, 1, 1, 1, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.Exec(insertLine, tt.invoiceID, tt.lineNumber, "Parts", tt.unit, tt.qty, tt.total, tt.confidence)
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, "constraint")
		})
	}
}
