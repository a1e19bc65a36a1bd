package requests

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShipmentRequestDB struct {
	ID            int64
	CustomerID    int64
	PickupCity    string
	PickupLat     float64
	PickupLon     float64
	DropCity      string
	DropLat       float64
	DropLon       float64
	PickupDate    time.Time
	DropDate      time.Time
	TruckTypeID   int64
	VehicleCount  int
	WeightKg      decimal.Decimal
	BudgetMin     *decimal.Decimal
	BudgetMax     *decimal.Decimal
	Miscellaneous bool
	CreatedAt     time.Time
}

type PriceRangeDB struct {
	ID                 int64
	RequestID          int64
	MinPrice           decimal.Decimal
	MaxPrice           decimal.Decimal
	RecommendedPrice   decimal.Decimal
	VehiclesAvailable  int
	VendorsCount       int
	DealProbability    string
	RouteType          string
	SupportingRouteIDs []int64
	CreatedAt          time.Time
}
