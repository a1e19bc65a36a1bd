package routes

import (
	"context"
	"fmt"

	"freightmarket/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListActiveByTruckType loads active routes that carry at least one
// active pricing row for the truck type, with their stops and pricing
// attached.
func (r *Repository) ListActiveByTruckType(ctx context.Context, truckTypeID int64) ([]entities.Route, error) {
	query := `SELECT id, vendor_id, name, origin_city, origin_lat, origin_lon,
			destination_city, destination_lat, destination_lon, total_distance_km, active
		FROM routes
		WHERE active
			AND EXISTS (
				SELECT 1 FROM route_pricing p
				WHERE p.route_id = routes.id AND p.truck_type_id = $1 AND p.active
			)
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, truckTypeID)
	if err != nil {
		return nil, fmt.Errorf("unexpected routes repository list error: %w", err)
	}
	defer rows.Close()

	routeModels := make([]RouteDB, 0, 8)
	routeIDs := make([]int64, 0, 8)
	for rows.Next() {
		var model RouteDB
		err := rows.Scan(
			&model.ID,
			&model.VendorID,
			&model.Name,
			&model.OriginCity,
			&model.OriginLat,
			&model.OriginLon,
			&model.DestinationCity,
			&model.DestinationLat,
			&model.DestinationLon,
			&model.TotalDistanceKm,
			&model.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected routes repository list error: %w", err)
		}
		routeModels = append(routeModels, model)
		routeIDs = append(routeIDs, model.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected routes repository list error: %w", err)
	}
	if len(routeModels) == 0 {
		return []entities.Route{}, nil
	}

	stopsByRoute, err := r.listStops(ctx, routeIDs)
	if err != nil {
		return nil, err
	}
	pricingByRoute, err := r.listPricing(ctx, routeIDs)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Route, 0, len(routeModels))
	for _, model := range routeModels {
		result = append(result, *ToDomain(&model, stopsByRoute[model.ID], pricingByRoute[model.ID]))
	}
	return result, nil
}

func (r *Repository) listStops(ctx context.Context, routeIDs []int64) (map[int64][]RouteStopDB, error) {
	query := `SELECT id, route_id, city, lat, lon, stop_order, distance_from_origin_km, can_pickup, can_drop
		FROM route_stops
		WHERE route_id = ANY($1)
		ORDER BY route_id, stop_order`

	rows, err := r.querier.Query(ctx, query, routeIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected routes repository liststops error: %w", err)
	}
	defer rows.Close()

	stops := make(map[int64][]RouteStopDB, len(routeIDs))
	for rows.Next() {
		var model RouteStopDB
		err := rows.Scan(
			&model.ID,
			&model.RouteID,
			&model.City,
			&model.Lat,
			&model.Lon,
			&model.StopOrder,
			&model.DistanceFromOriginKm,
			&model.CanPickup,
			&model.CanDrop,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected routes repository liststops error: %w", err)
		}
		stops[model.RouteID] = append(stops[model.RouteID], model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected routes repository liststops error: %w", err)
	}

	return stops, nil
}

func (r *Repository) listPricing(ctx context.Context, routeIDs []int64) (map[int64][]RoutePricingDB, error) {
	query := `SELECT p.id, p.route_id, rt.vendor_id, p.truck_type_id, p.from_city, p.to_city,
			p.segment_distance_km, p.base_price, p.price_per_km, p.fuel_charges, p.toll_charges,
			p.loading_charges, p.unloading_charges, p.min_price, p.max_price,
			p.available_vehicles, p.active
		FROM route_pricing p
		JOIN routes rt ON rt.id = p.route_id
		WHERE p.route_id = ANY($1)
		ORDER BY p.route_id, p.id`

	rows, err := r.querier.Query(ctx, query, routeIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected routes repository listpricing error: %w", err)
	}
	defer rows.Close()

	pricing := make(map[int64][]RoutePricingDB, len(routeIDs))
	for rows.Next() {
		var model RoutePricingDB
		err := rows.Scan(
			&model.ID,
			&model.RouteID,
			&model.VendorID,
			&model.TruckTypeID,
			&model.FromCity,
			&model.ToCity,
			&model.SegmentDistanceKm,
			&model.BasePrice,
			&model.PricePerKm,
			&model.FuelCharges,
			&model.TollCharges,
			&model.LoadingCharges,
			&model.UnloadingCharges,
			&model.MinPrice,
			&model.MaxPrice,
			&model.AvailableVehicles,
			&model.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected routes repository listpricing error: %w", err)
		}
		pricing[model.RouteID] = append(pricing[model.RouteID], model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected routes repository listpricing error: %w", err)
	}

	return pricing, nil
}
