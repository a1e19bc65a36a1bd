package routematch

import (
	"context"
	"fmt"

	"freightmarket/internal/entities"
	"freightmarket/internal/service/access"
	"freightmarket/internal/service/pricing"
	"freightmarket/pkg/geo"
)

type RouteMatch struct {
	routes    RouteRepository
	requests  RequestRepository
	txManager TxManager
}

func New(routes RouteRepository, requests RequestRepository, txManager TxManager) *RouteMatch {
	return &RouteMatch{
		routes:    routes,
		requests:  requests,
		txManager: txManager,
	}
}

// MatchAndPrice registers the enquiry and answers it with anonymized
// price bands built from matching vendor routes. A lane no route
// serves gets a single estimated band instead of an empty answer.
func (s *RouteMatch) MatchAndPrice(
	ctx context.Context,
	req entities.ShipmentRequest,
	actor entities.Principal,
) (*entities.ShipmentRequest, []entities.PriceRange, error) {
	if !access.Can(actor.Role, access.ActionCreateEnquiry) {
		return nil, nil, ErrRoleNotAllowed
	}
	req.CustomerID = actor.ID

	if err := validateRequest(req); err != nil {
		return nil, nil, err
	}

	routes, err := s.routes.ListActiveByTruckType(ctx, req.TruckTypeID)
	if err != nil {
		return nil, nil, fmt.Errorf("list routes: %w", err)
	}

	bands, err := s.price(routes, req)
	if err != nil {
		return nil, nil, err
	}
	req.Miscellaneous = len(bands) == 1 && bands[0].RouteType == entities.MatchMiscellaneous

	var (
		created *entities.ShipmentRequest
		ranges  []entities.PriceRange
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = s.requests.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		ranges, err = s.requests.CreateRanges(ctx, created.ID, bands)
		if err != nil {
			return fmt.Errorf("create price ranges: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return created, ranges, nil
}

func (s *RouteMatch) price(routes []entities.Route, req entities.ShipmentRequest) ([]entities.PriceRange, error) {
	var candidates []candidate
	for _, route := range routes {
		if !stopsWellFormed(route) {
			continue
		}
		matchType, pickup, drop := matchRoute(route, req)
		if pickup == nil || drop == nil {
			continue
		}

		row := pickPricing(route, pickup, drop, req)
		if row == nil {
			continue
		}

		quote, err := pricing.Calculate(*row, req.VehicleCount)
		if err != nil {
			// a misconfigured row must not fail the whole enquiry
			continue
		}

		candidates = append(candidates, candidate{
			route:     route,
			pricing:   *row,
			matchType: matchType,
			quote:     quote,
		})
	}

	if len(candidates) > 0 {
		return buildBands(candidates, req), nil
	}

	distance := geo.DistanceKm(
		geo.Point{Lat: req.PickupLat, Lon: req.PickupLon},
		geo.Point{Lat: req.DropLat, Lon: req.DropLon},
	)
	band, err := miscellaneousBand(routes, req, distance)
	if err != nil {
		return nil, err
	}
	return []entities.PriceRange{band}, nil
}
