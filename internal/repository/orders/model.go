package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID                  int64
	Number              string
	QuotationID         int64
	CustomerID          int64
	VendorID            int64
	TruckID             *int64
	DriverID            *int64
	PickupCity          string
	DropCity            string
	ScheduledPickupAt   time.Time
	ScheduledDeliveryAt time.Time
	ActualPickupAt      *time.Time
	ActualDeliveryAt    *time.Time
	TotalAmount         decimal.Decimal
	EstimatedWeightKg   decimal.Decimal
	ActualWeightKg      *decimal.Decimal
	DeliveryOTP         string
	OTPVerified         bool
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type StatusHistoryDB struct {
	ID             int64
	OrderID        int64
	PreviousStatus string
	NewStatus      string
	ActorID        int64
	ActorRole      string
	Lat            *float64
	Lon            *float64
	Notes          string
	CreatedAt      time.Time
}
