package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/adriankd/maintenance-plus/gen/ent"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceheader"
	"github.com/adriankd/maintenance-plus/gen/ent/invoiceline"
	"github.com/adriankd/maintenance-plus/internal/common"
	"github.com/adriankd/maintenance-plus/internal/entity"
	"github.com/adriankd/maintenance-plus/internal/utils"
)

// CreateLineRequest is a single line of a new invoice.
type CreateLineRequest struct {
	LineNumber      int
	Category        string
	PartNumber      *string
	UnitCost        float64
	Quantity        float64
	TotalLineCost   float64
	ConfidenceScore *float64
}

// CreateInvoiceRequest wraps parameters for creating a header with its lines.
type CreateInvoiceRequest struct {
	VehicleID       int
	InvoiceDate     time.Time
	InvoiceNumber   string
	TotalCost       float64
	TotalPartsCost  float64
	TotalLaborCost  float64
	Odometer        *int
	ConfidenceScore *float64
	Lines           []CreateLineRequest
}

// ListInvoicesFilter narrows List results; nil fields are ignored.
type ListInvoicesFilter struct {
	VehicleID *int
	FromDate  *time.Time
	ToDate    *time.Time
}

type InvoiceRepository interface {
	Create(ctx context.Context, req *CreateInvoiceRequest) (*entity.InvoiceHeader, error)
	GetByID(ctx context.Context, id int) (*entity.InvoiceHeader, error)
	GetByNumber(ctx context.Context, invoiceNumber string) (*entity.InvoiceHeader, error)
	List(ctx context.Context, filter ListInvoicesFilter) ([]*entity.InvoiceHeader, error)
	ListLines(ctx context.Context, invoiceID int) ([]*entity.InvoiceLine, error)
	Delete(ctx context.Context, id int) error
	Migrate(ctx context.Context) error
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) Create(ctx context.Context, req *CreateInvoiceRequest) (*entity.InvoiceHeader, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		r.logger.Error("failed to begin transaction", "error", err)
		return nil, common.WrapError(err, "begin transaction")
	}

	header, err := tx.InvoiceHeader.Create().
		SetVehicleID(req.VehicleID).
		SetInvoiceDate(req.InvoiceDate).
		SetInvoiceNumber(req.InvoiceNumber).
		SetTotalCost(req.TotalCost).
		SetTotalPartsCost(req.TotalPartsCost).
		SetTotalLaborCost(req.TotalLaborCost).
		SetNillableOdometer(req.Odometer).
		SetNillableConfidenceScore(req.ConfidenceScore).
		Save(ctx)
	if err != nil {
		return nil, r.rollback(tx, req.InvoiceNumber, err)
	}

	bulk := make([]*ent.InvoiceLineCreate, len(req.Lines))
	for i, ln := range req.Lines {
		bulk[i] = tx.InvoiceLine.Create().
			SetInvoiceID(header.ID).
			SetLineNumber(ln.LineNumber).
			SetCategory(ln.Category).
			SetNillablePartNumber(ln.PartNumber).
			SetUnitCost(ln.UnitCost).
			SetQuantity(ln.Quantity).
			SetTotalLineCost(ln.TotalLineCost).
			SetNillableConfidenceScore(ln.ConfidenceScore)
	}
	lines, err := tx.InvoiceLine.CreateBulk(bulk...).Save(ctx)
	if err != nil {
		return nil, r.rollback(tx, req.InvoiceNumber, err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit invoice", "invoice_number", req.InvoiceNumber, "error", err)
		return nil, common.WrapError(err, "commit invoice")
	}

	result := utils.ToInvoiceHeader(header)
	result.Lines = make([]*entity.InvoiceLine, len(lines))
	for i, ln := range lines {
		result.Lines[i] = utils.ToInvoiceLine(ln)
	}
	r.logger.Info("invoice created", "invoice_id", result.ID, "invoice_number", result.InvoiceNumber, "lines", len(result.Lines))
	return result, nil
}

func (r *invoiceRepository) rollback(tx *ent.Tx, invoiceNumber string, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		r.logger.Error("rollback failed", "invoice_number", invoiceNumber, "error", rerr)
	}
	if ent.IsConstraintError(err) {
		r.logger.Warn("invoice rejected by constraint", "invoice_number", invoiceNumber, "error", err)
		return common.NewAppError("CONSTRAINT_VIOLATION", err.Error(), common.ErrConstraint)
	}
	r.logger.Error("failed to create invoice", "invoice_number", invoiceNumber, "error", err)
	return common.WrapError(err, "create invoice")
}

func (r *invoiceRepository) GetByID(ctx context.Context, id int) (*entity.InvoiceHeader, error) {
	header, err := r.client.InvoiceHeader.Query().
		Where(invoiceheader.ID(id)).
		WithLines(func(q *ent.InvoiceLineQuery) {
			q.Order(invoiceline.ByLineNumber())
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("INVOICE_NOT_FOUND", "invoice does not exist", common.ErrNotFound)
		}
		r.logger.Error("failed to get invoice", "invoice_id", id, "error", err)
		return nil, err
	}
	return utils.ToInvoiceHeaderWithLines(header), nil
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, invoiceNumber string) (*entity.InvoiceHeader, error) {
	header, err := r.client.InvoiceHeader.Query().
		Where(invoiceheader.InvoiceNumber(invoiceNumber)).
		WithLines(func(q *ent.InvoiceLineQuery) {
			q.Order(invoiceline.ByLineNumber())
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("INVOICE_NOT_FOUND", "invoice does not exist", common.ErrNotFound)
		}
		r.logger.Error("failed to get invoice by number", "invoice_number", invoiceNumber, "error", err)
		return nil, err
	}
	return utils.ToInvoiceHeaderWithLines(header), nil
}

func (r *invoiceRepository) List(ctx context.Context, filter ListInvoicesFilter) ([]*entity.InvoiceHeader, error) {
	q := r.client.InvoiceHeader.Query()
	if filter.VehicleID != nil {
		q = q.Where(invoiceheader.VehicleID(*filter.VehicleID))
	}
	if filter.FromDate != nil {
		q = q.Where(invoiceheader.InvoiceDateGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(invoiceheader.InvoiceDateLTE(*filter.ToDate))
	}
	headers, err := q.Order(invoiceheader.ByInvoiceDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}

	result := make([]*entity.InvoiceHeader, len(headers))
	for i, h := range headers {
		result[i] = utils.ToInvoiceHeader(h)
	}
	return result, nil
}

func (r *invoiceRepository) ListLines(ctx context.Context, invoiceID int) ([]*entity.InvoiceLine, error) {
	exists, err := r.client.InvoiceHeader.Query().
		Where(invoiceheader.ID(invoiceID)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check invoice", "invoice_id", invoiceID, "error", err)
		return nil, err
	}
	if !exists {
		return nil, common.NewAppError("INVOICE_NOT_FOUND", "invoice does not exist", common.ErrNotFound)
	}

	lines, err := r.client.InvoiceLine.Query().
		Where(invoiceline.InvoiceID(invoiceID)).
		Order(invoiceline.ByLineNumber()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoice lines", "invoice_id", invoiceID, "error", err)
		return nil, err
	}

	result := make([]*entity.InvoiceLine, len(lines))
	for i, ln := range lines {
		result[i] = utils.ToInvoiceLine(ln)
	}
	return result, nil
}

// Delete removes a header; its lines go with it via the cascade FK.
func (r *invoiceRepository) Delete(ctx context.Context, id int) error {
	err := r.client.InvoiceHeader.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("INVOICE_NOT_FOUND", "invoice does not exist", common.ErrNotFound)
		}
		r.logger.Error("failed to delete invoice", "invoice_id", id, "error", err)
		return err
	}
	r.logger.Info("invoice deleted", "invoice_id", id)
	return nil
}

// Migrate creates or updates the InvoiceHeader/InvoiceLines tables.
func (r *invoiceRepository) Migrate(ctx context.Context) error {
	if err := r.client.Schema.Create(ctx); err != nil {
		r.logger.Error("schema migration failed", "error", err)
		return common.WrapError(err, "schema migration")
	}
	r.logger.Info("schema migration complete")
	return nil
}
