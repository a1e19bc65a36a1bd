package routes

import "github.com/shopspring/decimal"

type RouteDB struct {
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
}

type RouteStopDB struct {
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

type RoutePricingDB struct {
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
