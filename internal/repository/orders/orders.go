package orders

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"freightmarket/internal/entities"
	"freightmarket/internal/repository"
	"freightmarket/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_number, quotation_id, customer_id, vendor_id, truck_id, driver_id,
	pickup_city, drop_city, scheduled_pickup_at, scheduled_delivery_at,
	actual_pickup_at, actual_delivery_at, total_amount, estimated_weight_kg, actual_weight_kg,
	delivery_otp, otp_verified, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, o entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders
		(order_number, quotation_id, customer_id, vendor_id, pickup_city, drop_city,
		 scheduled_pickup_at, scheduled_delivery_at, total_amount, estimated_weight_kg,
		 delivery_otp, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + orderColumns

	model, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		o.Number,
		o.QuotationID,
		o.CustomerID,
		o.VendorID,
		o.PickupCity,
		o.DropCity,
		o.ScheduledPickupAt,
		o.ScheduledDeliveryAt,
		o.TotalAmount,
		o.EstimatedWeightKg,
		o.DeliveryOTP,
		o.Status.String(),
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrDuplicateOrder
		}
		return nil, fmt.Errorf("unexpected orders repository create error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	model, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected orders repository getbyid error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) Update(ctx context.Context, id int64, modify entities.OrderModify) (*entities.Order, error) {
	builder := r.updateBuilder(modify).Where(sq.Eq{"id": id})

	model, err := r.runUpdate(ctx, builder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected orders repository update error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) UpdateGuarded(ctx context.Context, id int64, previous entities.OrderStatus, modify entities.OrderModify) (*entities.Order, error) {
	builder := r.updateBuilder(modify).
		Where(sq.Eq{"id": id, "status": previous.String()})

	model, err := r.runUpdate(ctx, builder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrStatusConflict
		}
		// a serializable abort means a concurrent transition won
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, order.ErrStatusConflict
		}
		return nil, fmt.Errorf("unexpected orders repository updateguarded error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) AppendHistory(ctx context.Context, entry entities.OrderStatusHistory) (*entities.OrderStatusHistory, error) {
	query := `INSERT INTO order_status_history
		(order_id, previous_status, new_status, actor_id, actor_role, lat, lon, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, order_id, previous_status, new_status, actor_id, actor_role, lat, lon, notes, created_at`

	var model StatusHistoryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		entry.OrderID,
		entry.PreviousStatus.String(),
		entry.NewStatus.String(),
		entry.ActorID,
		entry.ActorRole.String(),
		entry.Lat,
		entry.Lon,
		entry.Notes,
	).Scan(
		&model.ID,
		&model.OrderID,
		&model.PreviousStatus,
		&model.NewStatus,
		&model.ActorID,
		&model.ActorRole,
		&model.Lat,
		&model.Lon,
		&model.Notes,
		&model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected orders repository appendhistory error: %w", err)
	}

	return HistoryToDomain(&model), nil
}

func (r *Repository) ListHistory(ctx context.Context, orderID int64) ([]entities.OrderStatusHistory, error) {
	query := `SELECT id, order_id, previous_status, new_status, actor_id, actor_role, lat, lon, notes, created_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected orders repository listhistory error: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.OrderStatusHistory, 0, 8)
	for rows.Next() {
		var model StatusHistoryDB
		err := rows.Scan(
			&model.ID,
			&model.OrderID,
			&model.PreviousStatus,
			&model.NewStatus,
			&model.ActorID,
			&model.ActorRole,
			&model.Lat,
			&model.Lon,
			&model.Notes,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected orders repository listhistory error: %w", err)
		}
		entries = append(entries, *HistoryToDomain(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected orders repository listhistory error: %w", err)
	}

	return entries, nil
}

func (r *Repository) updateBuilder(modify entities.OrderModify) sq.UpdateBuilder {
	builder := qb.Update("orders")

	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.TruckID != nil {
		builder = builder.Set("truck_id", *modify.TruckID)
	}
	if modify.DriverID != nil {
		builder = builder.Set("driver_id", *modify.DriverID)
	}
	if modify.ActualPickupAt != nil {
		builder = builder.Set("actual_pickup_at", *modify.ActualPickupAt)
	}
	if modify.ActualDeliveryAt != nil {
		builder = builder.Set("actual_delivery_at", *modify.ActualDeliveryAt)
	}
	if modify.ActualWeightKg != nil {
		builder = builder.Set("actual_weight_kg", *modify.ActualWeightKg)
	}
	if modify.OTPVerified != nil {
		builder = builder.Set("otp_verified", *modify.OTPVerified)
	}

	return builder.Set("updated_at", sq.Expr("NOW()"))
}

func (r *Repository) runUpdate(ctx context.Context, builder sq.UpdateBuilder) (*OrderDB, error) {
	query, args, err := builder.Suffix("RETURNING " + orderColumns).ToSql()
	if err != nil {
		return nil, err
	}
	return scanOrder(r.querier.QueryRow(ctx, query, args...))
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var model OrderDB
	err := row.Scan(
		&model.ID,
		&model.Number,
		&model.QuotationID,
		&model.CustomerID,
		&model.VendorID,
		&model.TruckID,
		&model.DriverID,
		&model.PickupCity,
		&model.DropCity,
		&model.ScheduledPickupAt,
		&model.ScheduledDeliveryAt,
		&model.ActualPickupAt,
		&model.ActualDeliveryAt,
		&model.TotalAmount,
		&model.EstimatedWeightKg,
		&model.ActualWeightKg,
		&model.DeliveryOTP,
		&model.OTPVerified,
		&model.Status,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}
