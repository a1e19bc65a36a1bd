package quotations

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"freightmarket/internal/entities"
	"freightmarket/internal/repository"
	"freightmarket/internal/service/quotation"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const quotationColumns = `q.id, q.request_id, r.customer_id, q.vendor_id, q.created_by,
	q.total_amount, q.current_amount, q.validity_hours, q.status, q.created_at, q.updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, q entities.Quotation) (*entities.Quotation, error) {
	query := `INSERT INTO quotations
		(request_id, vendor_id, created_by, total_amount, current_amount, validity_hours, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, request_id, vendor_id, created_by, total_amount, current_amount,
			validity_hours, status, created_at, updated_at`

	var model QuotationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		q.RequestID,
		q.VendorID,
		q.CreatedBy.String(),
		q.TotalAmount,
		q.CurrentAmount,
		q.ValidityHours,
		q.Status.String(),
	).Scan(
		&model.ID,
		&model.RequestID,
		&model.VendorID,
		&model.CreatedBy,
		&model.TotalAmount,
		&model.CurrentAmount,
		&model.ValidityHours,
		&model.Status,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, quotation.ErrQuotationExists
		}
		return nil, fmt.Errorf("unexpected quotations repository create error: %w", err)
	}

	itemQuery := `INSERT INTO quotation_items (quotation_id, truck_type_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, quotation_id, truck_type_id, quantity, unit_price`

	items := make([]QuotationItemDB, 0, len(q.Items))
	for _, item := range q.Items {
		var itemModel QuotationItemDB
		err := r.querier.QueryRow(
			ctx,
			itemQuery,
			model.ID,
			item.TruckTypeID,
			item.Quantity,
			item.UnitPrice,
		).Scan(
			&itemModel.ID,
			&itemModel.QuotationID,
			&itemModel.TruckTypeID,
			&itemModel.Quantity,
			&itemModel.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected quotations repository create error: %w", err)
		}
		items = append(items, itemModel)
	}

	created := ToDomain(&model, items)
	customerID, err := r.customerID(ctx, model.RequestID)
	if err != nil {
		return nil, err
	}
	created.CustomerID = customerID

	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Quotation, error) {
	query := `SELECT ` + quotationColumns + `
		FROM quotations q
		JOIN shipment_requests r ON r.id = q.request_id
		WHERE q.id = $1`

	var model QuotationDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.RequestID,
		&model.CustomerID,
		&model.VendorID,
		&model.CreatedBy,
		&model.TotalAmount,
		&model.CurrentAmount,
		&model.ValidityHours,
		&model.Status,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, quotation.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("unexpected quotations repository getbyid error: %w", err)
	}

	items, err := r.listItems(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&model, items), nil
}

func (r *Repository) ListByRequestID(ctx context.Context, requestID int64) ([]entities.Quotation, error) {
	query := `SELECT ` + quotationColumns + `
		FROM quotations q
		JOIN shipment_requests r ON r.id = q.request_id
		WHERE q.request_id = $1
		ORDER BY q.id`

	rows, err := r.querier.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("unexpected quotations repository listbyrequestid error: %w", err)
	}
	defer rows.Close()

	quotations, err := scanQuotations(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected quotations repository listbyrequestid error: %w", err)
	}
	return quotations, nil
}

func (r *Repository) Update(ctx context.Context, id int64, modify entities.QuotationModify) (*entities.Quotation, error) {
	builder := qb.Update("quotations")

	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.CurrentAmount != nil {
		builder = builder.Set("current_amount", *modify.CurrentAmount)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": id}).
		Suffix(`RETURNING id, request_id, vendor_id, created_by, total_amount, current_amount,
			validity_hours, status, created_at, updated_at`)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected quotations repository update error: %w", err)
	}

	var model QuotationDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&model.ID,
		&model.RequestID,
		&model.VendorID,
		&model.CreatedBy,
		&model.TotalAmount,
		&model.CurrentAmount,
		&model.ValidityHours,
		&model.Status,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, quotation.ErrQuotationNotFound
		}
		return nil, fmt.Errorf("unexpected quotations repository update error: %w", err)
	}

	updated := ToDomain(&model, nil)
	customerID, err := r.customerID(ctx, model.RequestID)
	if err != nil {
		return nil, err
	}
	updated.CustomerID = customerID

	return updated, nil
}

func (r *Repository) CountAcceptedByRequestID(ctx context.Context, requestID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM quotations WHERE request_id = $1 AND status = 'accepted'`

	var count int64
	err := r.querier.QueryRow(ctx, query, requestID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected quotations repository countaccepted error: %w", err)
	}
	return count, nil
}

func (r *Repository) AcceptGuarded(ctx context.Context, id int64, requestID int64, finalAmount decimal.Decimal) (*entities.Quotation, error) {
	query := `UPDATE quotations
		SET status = 'accepted', current_amount = $3, updated_at = NOW()
		WHERE id = $1
			AND status IN ('pending', 'sent', 'negotiating')
			AND NOT EXISTS (
				SELECT 1 FROM quotations WHERE request_id = $2 AND status = 'accepted'
			)
		RETURNING id, request_id, vendor_id, created_by, total_amount, current_amount,
			validity_hours, status, created_at, updated_at`

	var model QuotationDB
	err := r.querier.QueryRow(ctx, query, id, requestID, finalAmount).Scan(
		&model.ID,
		&model.RequestID,
		&model.VendorID,
		&model.CreatedBy,
		&model.TotalAmount,
		&model.CurrentAmount,
		&model.ValidityHours,
		&model.Status,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, quotation.ErrRequestAlreadyFulfilled
		}
		// losing a serializable race against a sibling accept is the
		// same outcome as losing the guard
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, quotation.ErrRequestAlreadyFulfilled
		}
		return nil, fmt.Errorf("unexpected quotations repository acceptguarded error: %w", err)
	}

	accepted := ToDomain(&model, nil)
	customerID, err := r.customerID(ctx, model.RequestID)
	if err != nil {
		return nil, err
	}
	accepted.CustomerID = customerID

	return accepted, nil
}

func (r *Repository) RejectOpenSiblings(ctx context.Context, requestID int64, exceptID int64) ([]entities.Quotation, error) {
	query := `UPDATE quotations
		SET status = 'rejected', updated_at = NOW()
		WHERE request_id = $1
			AND id <> $2
			AND status IN ('pending', 'sent', 'negotiating')
		RETURNING id, request_id, vendor_id, created_by, total_amount, current_amount,
			validity_hours, status, created_at, updated_at`

	rows, err := r.querier.Query(ctx, query, requestID, exceptID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, quotation.ErrRequestAlreadyFulfilled
		}
		return nil, fmt.Errorf("unexpected quotations repository rejectopensiblings error: %w", err)
	}
	defer rows.Close()

	rejected, err := scanUpdated(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected quotations repository rejectopensiblings error: %w", err)
	}
	return rejected, nil
}

func (r *Repository) ExpireDue(ctx context.Context, now time.Time) ([]entities.Quotation, error) {
	// the status list is the guard: terminal quotations are untouched
	// no matter how old they are
	query := `UPDATE quotations
		SET status = 'expired', updated_at = NOW()
		WHERE status IN ('pending', 'sent', 'negotiating')
			AND created_at + validity_hours * INTERVAL '1 hour' <= $1
		RETURNING id, request_id, vendor_id, created_by, total_amount, current_amount,
			validity_hours, status, created_at, updated_at`

	rows, err := r.querier.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("unexpected quotations repository expiredue error: %w", err)
	}
	defer rows.Close()

	expired, err := scanUpdated(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected quotations repository expiredue error: %w", err)
	}
	return expired, nil
}

func (r *Repository) customerID(ctx context.Context, requestID int64) (int64, error) {
	var customerID int64
	err := r.querier.QueryRow(ctx,
		`SELECT customer_id FROM shipment_requests WHERE id = $1`, requestID,
	).Scan(&customerID)
	if err != nil {
		return 0, fmt.Errorf("unexpected quotations repository customerid error: %w", err)
	}
	return customerID, nil
}

func (r *Repository) listItems(ctx context.Context, quotationID int64) ([]QuotationItemDB, error) {
	query := `SELECT id, quotation_id, truck_type_id, quantity, unit_price
		FROM quotation_items
		WHERE quotation_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("unexpected quotations repository listitems error: %w", err)
	}
	defer rows.Close()

	items := make([]QuotationItemDB, 0, 2)
	for rows.Next() {
		var item QuotationItemDB
		err := rows.Scan(&item.ID, &item.QuotationID, &item.TruckTypeID, &item.Quantity, &item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("unexpected quotations repository listitems error: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected quotations repository listitems error: %w", err)
	}

	return items, nil
}

// scanQuotations reads rows that include the customer_id join column.
func scanQuotations(rows pgx.Rows) ([]entities.Quotation, error) {
	quotations := make([]entities.Quotation, 0, 4)
	for rows.Next() {
		var model QuotationDB
		err := rows.Scan(
			&model.ID,
			&model.RequestID,
			&model.CustomerID,
			&model.VendorID,
			&model.CreatedBy,
			&model.TotalAmount,
			&model.CurrentAmount,
			&model.ValidityHours,
			&model.Status,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, *ToDomain(&model, nil))
	}
	return quotations, rows.Err()
}

// scanUpdated reads bare quotation rows returned from bulk updates.
func scanUpdated(rows pgx.Rows) ([]entities.Quotation, error) {
	quotations := make([]entities.Quotation, 0, 4)
	for rows.Next() {
		var model QuotationDB
		err := rows.Scan(
			&model.ID,
			&model.RequestID,
			&model.VendorID,
			&model.CreatedBy,
			&model.TotalAmount,
			&model.CurrentAmount,
			&model.ValidityHours,
			&model.Status,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, *ToDomain(&model, nil))
	}
	return quotations, rows.Err()
}
