package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuotationStatus string

const (
	QuotationPending     QuotationStatus = "pending"
	QuotationSent        QuotationStatus = "sent"
	QuotationNegotiating QuotationStatus = "negotiating"
	QuotationAccepted    QuotationStatus = "accepted"
	QuotationRejected    QuotationStatus = "rejected"
	QuotationExpired     QuotationStatus = "expired"
)

func (s QuotationStatus) String() string {
	return string(s)
}

// Terminal reports whether the status admits no further transitions.
func (s QuotationStatus) Terminal() bool {
	switch s {
	case QuotationAccepted, QuotationRejected, QuotationExpired:
		return true
	}
	return false
}

// Negotiable reports whether counter-offers may still be made.
func (s QuotationStatus) Negotiable() bool {
	switch s {
	case QuotationPending, QuotationSent, QuotationNegotiating:
		return true
	}
	return false
}

const DefaultValidityHours = 24

type Quotation struct {
	ID        int64
	RequestID int64
	// CustomerID is the owner of the shipment request, denormalized
	// from the request on read.
	CustomerID    int64
	VendorID      int64
	CreatedBy     Role
	Items         []QuotationItem
	TotalAmount   decimal.Decimal
	CurrentAmount decimal.Decimal
	ValidityHours int
	Status        QuotationStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ExpiresAt is the end of the negotiation window.
func (q Quotation) ExpiresAt() time.Time {
	return q.CreatedAt.Add(time.Duration(q.ValidityHours) * time.Hour)
}

type QuotationItem struct {
	ID          int64
	QuotationID int64
	TruckTypeID int64
	Quantity    int
	UnitPrice   decimal.Decimal
}

type QuotationModify struct {
	Status        *QuotationStatus
	CurrentAmount *decimal.Decimal
}

// Breakdown itemizes a proposed amount. All components must sum to the
// proposal within the smallest money unit.
type Breakdown struct {
	Base      decimal.Decimal
	Fuel      decimal.Decimal
	Toll      decimal.Decimal
	Loading   decimal.Decimal
	Unloading decimal.Decimal
	Other     decimal.Decimal
}

func (b Breakdown) Sum() decimal.Decimal {
	return b.Base.Add(b.Fuel).Add(b.Toll).Add(b.Loading).Add(b.Unloading).Add(b.Other)
}

// Negotiation is a single counter-offer in a quotation's append-only
// offer history.
type Negotiation struct {
	ID             int64
	QuotationID    int64
	InitiatedBy    Role
	ProposedAmount decimal.Decimal
	Breakdown      *Breakdown
	Message        string
	CreatedAt      time.Time
}
