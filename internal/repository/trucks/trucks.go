package trucks

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"freightmarket/internal/entities"
	"freightmarket/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Truck, error) {
	query := `SELECT id, vendor_id, truck_type_id, registration_number, capacity_tons, availability
		FROM trucks
		WHERE id = $1`

	var model TruckDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.VendorID,
		&model.TruckTypeID,
		&model.RegistrationNumber,
		&model.CapacityTons,
		&model.Availability,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrTruckNotFound
		}
		return nil, fmt.Errorf("unexpected trucks repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) SetAvailability(ctx context.Context, id int64, availability entities.TruckAvailability) error {
	query := `UPDATE trucks SET availability = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id, availability.String())
	if err != nil {
		return fmt.Errorf("unexpected trucks repository setavailability error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrTruckNotFound
	}

	return nil
}

func (r *Repository) GetDriverByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT id, vendor_id, name, phone, license_number, available
		FROM drivers
		WHERE id = $1`

	var model DriverDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.VendorID,
		&model.Name,
		&model.Phone,
		&model.LicenseNumber,
		&model.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected trucks repository getdriverbyid error: %w", err)
	}

	return DriverToDomain(&model), nil
}
