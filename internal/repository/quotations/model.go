package quotations

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuotationDB struct {
	ID            int64
	RequestID     int64
	CustomerID    int64
	VendorID      int64
	CreatedBy     string
	TotalAmount   decimal.Decimal
	CurrentAmount decimal.Decimal
	ValidityHours int
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type QuotationItemDB struct {
	ID          int64
	QuotationID int64
	TruckTypeID int64
	Quantity    int
	UnitPrice   decimal.Decimal
}
