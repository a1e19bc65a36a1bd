package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DealProbability string

const (
	ProbabilityLow    DealProbability = "low"
	ProbabilityMedium DealProbability = "medium"
	ProbabilityHigh   DealProbability = "high"
)

func (p DealProbability) String() string {
	return string(p)
}

type RouteMatchType string

const (
	MatchDirect        RouteMatchType = "direct"
	MatchViaStops      RouteMatchType = "via_stops"
	MatchMiscellaneous RouteMatchType = "miscellaneous"
)

func (t RouteMatchType) String() string {
	return string(t)
}

// ShipmentRequest is a customer enquiry for moving cargo.
type ShipmentRequest struct {
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

// PriceRange is an anonymized price band offered against a shipment
// request. Vendor identity stays hidden until a quotation exists.
type PriceRange struct {
	ID                 int64
	RequestID          int64
	MinPrice           decimal.Decimal
	MaxPrice           decimal.Decimal
	RecommendedPrice   decimal.Decimal
	VehiclesAvailable  int
	VendorsCount       int
	DealProbability    DealProbability
	RouteType          RouteMatchType
	SupportingRouteIDs []int64
	CreatedAt          time.Time
}
