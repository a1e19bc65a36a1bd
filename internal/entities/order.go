package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderCreated        OrderStatus = "created"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderDriverAssigned OrderStatus = "driver_assigned"
	OrderPickup         OrderStatus = "pickup"
	OrderPickedUp       OrderStatus = "picked_up"
	OrderInTransit      OrderStatus = "in_transit"
	OrderDelivered      OrderStatus = "delivered"
	OrderCompleted      OrderStatus = "completed"
	OrderCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

type Order struct {
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
	Status              OrderStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type OrderModify struct {
	Status           *OrderStatus
	TruckID          *int64
	DriverID         *int64
	ActualPickupAt   *time.Time
	ActualDeliveryAt *time.Time
	ActualWeightKg   *decimal.Decimal
	OTPVerified      *bool
}

// OrderStatusHistory is one append-only entry of an order's audit trail.
type OrderStatusHistory struct {
	ID             int64
	OrderID        int64
	PreviousStatus OrderStatus
	NewStatus      OrderStatus
	ActorID        int64
	ActorRole      Role
	Lat            *float64
	Lon            *float64
	Notes          string
	CreatedAt      time.Time
}
