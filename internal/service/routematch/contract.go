//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routematch_test
package routematch

import (
	"context"

	"freightmarket/internal/entities"
)

type RouteRepository interface {
	// ListActiveByTruckType returns active routes carrying at least
	// one active pricing row for the truck type, with stops and
	// pricing loaded.
	ListActiveByTruckType(ctx context.Context, truckTypeID int64) ([]entities.Route, error)
}

type RequestRepository interface {
	Create(ctx context.Context, request entities.ShipmentRequest) (*entities.ShipmentRequest, error)
	CreateRanges(ctx context.Context, requestID int64, ranges []entities.PriceRange) ([]entities.PriceRange, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
