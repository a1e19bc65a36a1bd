package entities

import "github.com/shopspring/decimal"

// Route is a vendor lane between two cities, optionally with
// intermediate stops in strict travel order.
type Route struct {
	ID              int64
	VendorID        int64
	Name            string
	OriginCity      string
	OriginLat       float64
	OriginLon       float64
	DestinationCity string
	DestinationLat  float64
	DestinationLon  float64
	TotalDistanceKm float64
	Active          bool
	Stops           []RouteStop
	Pricing         []RoutePricing
}

type RouteStop struct {
	ID                   int64
	RouteID              int64
	City                 string
	Lat                  float64
	Lon                  float64
	StopOrder            int
	DistanceFromOriginKm float64
	CanPickup            bool
	CanDrop              bool
}

// RoutePricing prices one truck type on one segment of a route.
type RoutePricing struct {
	ID                int64
	RouteID           int64
	VendorID          int64
	TruckTypeID       int64
	FromCity          string
	ToCity            string
	SegmentDistanceKm float64
	BasePrice         decimal.Decimal
	PricePerKm        decimal.Decimal
	FuelCharges       decimal.Decimal
	TollCharges       decimal.Decimal
	LoadingCharges    decimal.Decimal
	UnloadingCharges  decimal.Decimal
	MinPrice          decimal.Decimal
	MaxPrice          decimal.Decimal
	AvailableVehicles int
	Active            bool
}
