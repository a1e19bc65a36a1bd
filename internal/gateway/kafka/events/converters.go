package events

import (
	"time"

	"freightmarket/internal/entities"
)

type quotationEvent struct {
	Event         string    `json:"event"`
	QuotationID   int64     `json:"quotation_id"`
	RequestID     int64     `json:"request_id"`
	VendorID      int64     `json:"vendor_id"`
	Status        string    `json:"status"`
	CurrentAmount string    `json:"current_amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type orderEvent struct {
	Event       string    `json:"event"`
	OrderID     int64     `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	QuotationID int64     `json:"quotation_id"`
	CustomerID  int64     `json:"customer_id"`
	VendorID    int64     `json:"vendor_id"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func fromQuotation(event string, q entities.Quotation) quotationEvent {
	return quotationEvent{
		Event:         event,
		QuotationID:   q.ID,
		RequestID:     q.RequestID,
		VendorID:      q.VendorID,
		Status:        q.Status.String(),
		CurrentAmount: q.CurrentAmount.StringFixed(2),
		OccurredAt:    time.Now().UTC(),
	}
}

func fromOrder(event string, o entities.Order) orderEvent {
	return orderEvent{
		Event:       event,
		OrderID:     o.ID,
		OrderNumber: o.Number,
		QuotationID: o.QuotationID,
		CustomerID:  o.CustomerID,
		VendorID:    o.VendorID,
		Status:      o.Status.String(),
		TotalAmount: o.TotalAmount.StringFixed(2),
		OccurredAt:  time.Now().UTC(),
	}
}
