package requests

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"freightmarket/internal/entities"
	"freightmarket/internal/service/quotation"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, request entities.ShipmentRequest) (*entities.ShipmentRequest, error) {
	query := `INSERT INTO shipment_requests
		(customer_id, pickup_city, pickup_lat, pickup_lon, drop_city, drop_lat, drop_lon,
		 pickup_date, drop_date, truck_type_id, vehicle_count, weight_kg,
		 budget_min, budget_max, miscellaneous)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, customer_id, pickup_city, pickup_lat, pickup_lon, drop_city, drop_lat, drop_lon,
			pickup_date, drop_date, truck_type_id, vehicle_count, weight_kg,
			budget_min, budget_max, miscellaneous, created_at`

	var model ShipmentRequestDB
	err := r.querier.QueryRow(
		ctx,
		query,
		request.CustomerID,
		request.PickupCity,
		request.PickupLat,
		request.PickupLon,
		request.DropCity,
		request.DropLat,
		request.DropLon,
		request.PickupDate,
		request.DropDate,
		request.TruckTypeID,
		request.VehicleCount,
		request.WeightKg,
		request.BudgetMin,
		request.BudgetMax,
		request.Miscellaneous,
	).Scan(
		&model.ID,
		&model.CustomerID,
		&model.PickupCity,
		&model.PickupLat,
		&model.PickupLon,
		&model.DropCity,
		&model.DropLat,
		&model.DropLon,
		&model.PickupDate,
		&model.DropDate,
		&model.TruckTypeID,
		&model.VehicleCount,
		&model.WeightKg,
		&model.BudgetMin,
		&model.BudgetMax,
		&model.Miscellaneous,
		&model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected requests repository create error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.ShipmentRequest, error) {
	query := `SELECT id, customer_id, pickup_city, pickup_lat, pickup_lon, drop_city, drop_lat, drop_lon,
			pickup_date, drop_date, truck_type_id, vehicle_count, weight_kg,
			budget_min, budget_max, miscellaneous, created_at
		FROM shipment_requests
		WHERE id = $1`

	var model ShipmentRequestDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&model.ID,
		&model.CustomerID,
		&model.PickupCity,
		&model.PickupLat,
		&model.PickupLon,
		&model.DropCity,
		&model.DropLat,
		&model.DropLon,
		&model.PickupDate,
		&model.DropDate,
		&model.TruckTypeID,
		&model.VehicleCount,
		&model.WeightKg,
		&model.BudgetMin,
		&model.BudgetMax,
		&model.Miscellaneous,
		&model.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, quotation.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected requests repository getbyid error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) CreateRanges(ctx context.Context, requestID int64, ranges []entities.PriceRange) ([]entities.PriceRange, error) {
	query := `INSERT INTO price_ranges
		(request_id, min_price, max_price, recommended_price, vehicles_available,
		 vendors_count, deal_probability, route_type, supporting_route_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, request_id, min_price, max_price, recommended_price, vehicles_available,
			vendors_count, deal_probability, route_type, supporting_route_ids, created_at`

	created := make([]entities.PriceRange, 0, len(ranges))
	for _, band := range ranges {
		// miscellaneous bands carry no supporting routes, the column is NOT NULL
		supporting := band.SupportingRouteIDs
		if supporting == nil {
			supporting = []int64{}
		}

		var model PriceRangeDB
		err := r.querier.QueryRow(
			ctx,
			query,
			requestID,
			band.MinPrice,
			band.MaxPrice,
			band.RecommendedPrice,
			band.VehiclesAvailable,
			band.VendorsCount,
			band.DealProbability.String(),
			band.RouteType.String(),
			supporting,
		).Scan(
			&model.ID,
			&model.RequestID,
			&model.MinPrice,
			&model.MaxPrice,
			&model.RecommendedPrice,
			&model.VehiclesAvailable,
			&model.VendorsCount,
			&model.DealProbability,
			&model.RouteType,
			&model.SupportingRouteIDs,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected requests repository createranges error: %w", err)
		}
		created = append(created, *RangeToDomain(&model))
	}

	return created, nil
}

func (r *Repository) ListRanges(ctx context.Context, requestID int64) ([]entities.PriceRange, error) {
	query := `SELECT id, request_id, min_price, max_price, recommended_price, vehicles_available,
			vendors_count, deal_probability, route_type, supporting_route_ids, created_at
		FROM price_ranges
		WHERE request_id = $1
		ORDER BY min_price`

	rows, err := r.querier.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("unexpected requests repository listranges error: %w", err)
	}
	defer rows.Close()

	ranges := make([]entities.PriceRange, 0, 4)
	for rows.Next() {
		var model PriceRangeDB
		err := rows.Scan(
			&model.ID,
			&model.RequestID,
			&model.MinPrice,
			&model.MaxPrice,
			&model.RecommendedPrice,
			&model.VehiclesAvailable,
			&model.VendorsCount,
			&model.DealProbability,
			&model.RouteType,
			&model.SupportingRouteIDs,
			&model.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected requests repository listranges error: %w", err)
		}
		ranges = append(ranges, *RangeToDomain(&model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected requests repository listranges error: %w", err)
	}

	return ranges, nil
}
