// Package dto holds the JSON request and response bodies of the REST
// surface. Amounts travel as decimal strings.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type EnquiryCreate struct {
	PickupCity   string           `json:"pickup_city"`
	PickupLat    float64          `json:"pickup_lat"`
	PickupLon    float64          `json:"pickup_lon"`
	DropCity     string           `json:"drop_city"`
	DropLat      float64          `json:"drop_lat"`
	DropLon      float64          `json:"drop_lon"`
	PickupDate   time.Time        `json:"pickup_date"`
	DropDate     time.Time        `json:"drop_date"`
	TruckTypeID  int64            `json:"truck_type_id"`
	VehicleCount int              `json:"vehicle_count"`
	WeightKg     decimal.Decimal  `json:"weight_kg"`
	BudgetMin    *decimal.Decimal `json:"budget_min,omitempty"`
	BudgetMax    *decimal.Decimal `json:"budget_max,omitempty"`
}

type PriceRange struct {
	MinPrice          decimal.Decimal `json:"min_price"`
	MaxPrice          decimal.Decimal `json:"max_price"`
	RecommendedPrice  decimal.Decimal `json:"recommended_price"`
	VehiclesAvailable int             `json:"vehicles_available"`
	VendorsCount      int             `json:"vendors_count"`
	DealProbability   string          `json:"deal_probability"`
	RouteType         string          `json:"route_type"`
}

type EnquiryCreateResponse struct {
	RequestID     int64        `json:"request_id"`
	Miscellaneous bool         `json:"miscellaneous"`
	PriceRanges   []PriceRange `json:"price_ranges"`
}

type QuotationItem struct {
	TruckTypeID int64           `json:"truck_type_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type QuotationCreate struct {
	RequestID     int64           `json:"request_id"`
	Items         []QuotationItem `json:"items"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ValidityHours int             `json:"validity_hours,omitempty"`
}

type Quotation struct {
	ID            int64           `json:"id"`
	RequestID     int64           `json:"request_id"`
	VendorID      int64           `json:"vendor_id"`
	Status        string          `json:"status"`
	Items         []QuotationItem `json:"items,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	ValidityHours int             `json:"validity_hours"`
	ExpiresAt     time.Time       `json:"expires_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

type Breakdown struct {
	Base      decimal.Decimal `json:"base"`
	Fuel      decimal.Decimal `json:"fuel"`
	Toll      decimal.Decimal `json:"toll"`
	Loading   decimal.Decimal `json:"loading"`
	Unloading decimal.Decimal `json:"unloading"`
	Other     decimal.Decimal `json:"other"`
}

type NegotiationCreate struct {
	ProposedAmount decimal.Decimal `json:"proposed_amount"`
	Breakdown      *Breakdown      `json:"breakdown,omitempty"`
	Message        string          `json:"message,omitempty"`
}

type Negotiation struct {
	ID             int64           `json:"id"`
	QuotationID    int64           `json:"quotation_id"`
	InitiatedBy    string          `json:"initiated_by"`
	ProposedAmount decimal.Decimal `json:"proposed_amount"`
	Breakdown      *Breakdown      `json:"breakdown,omitempty"`
	Message        string          `json:"message,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type RequestQuotations struct {
	RequestID  int64       `json:"request_id"`
	Quotations []Quotation `json:"quotations"`
}

type QuotationDetail struct {
	Quotation
	Negotiations []Negotiation `json:"negotiations"`
}

type Order struct {
	ID                  int64            `json:"id"`
	OrderNumber         string           `json:"order_number"`
	QuotationID         int64            `json:"quotation_id"`
	CustomerID          int64            `json:"customer_id"`
	VendorID            int64            `json:"vendor_id"`
	TruckID             *int64           `json:"truck_id,omitempty"`
	DriverID            *int64           `json:"driver_id,omitempty"`
	PickupCity          string           `json:"pickup_city"`
	DropCity            string           `json:"drop_city"`
	ScheduledPickupAt   time.Time        `json:"scheduled_pickup_at"`
	ScheduledDeliveryAt time.Time        `json:"scheduled_delivery_at"`
	ActualPickupAt      *time.Time       `json:"actual_pickup_at,omitempty"`
	ActualDeliveryAt    *time.Time       `json:"actual_delivery_at,omitempty"`
	TotalAmount         decimal.Decimal  `json:"total_amount"`
	EstimatedWeightKg   decimal.Decimal  `json:"estimated_weight_kg"`
	ActualWeightKg      *decimal.Decimal `json:"actual_weight_kg,omitempty"`
	DeliveryOTP         string           `json:"delivery_otp,omitempty"`
	OTPVerified         bool             `json:"otp_verified"`
	Status              string           `json:"status"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

type OrderHistoryEntry struct {
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ActorRole      string    `json:"actor_role"`
	Lat            *float64  `json:"lat,omitempty"`
	Lon            *float64  `json:"lon,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type OrderDetail struct {
	Order
	History []OrderHistoryEntry `json:"history"`
}

type QuotationAcceptResponse struct {
	Quotation   Quotation       `json:"quotation"`
	Order       Order           `json:"order"`
	FinalAmount decimal.Decimal `json:"final_amount"`
	Savings     decimal.Decimal `json:"savings"`
}

type OrderStatusUpdate struct {
	Status         string           `json:"status"`
	DriverID       *int64           `json:"driver_id,omitempty"`
	TruckID        *int64           `json:"truck_id,omitempty"`
	ActualWeightKg *decimal.Decimal `json:"actual_weight_kg,omitempty"`
	Lat            *float64         `json:"lat,omitempty"`
	Lon            *float64         `json:"lon,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

type DeliveryVerify struct {
	Code string `json:"code"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
