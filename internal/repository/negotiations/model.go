package negotiations

import (
	"time"

	"github.com/shopspring/decimal"
)

type NegotiationDB struct {
	ID             int64
	QuotationID    int64
	InitiatedBy    string
	ProposedAmount decimal.Decimal
	BreakBase      *decimal.Decimal
	BreakFuel      *decimal.Decimal
	BreakToll      *decimal.Decimal
	BreakLoading   *decimal.Decimal
	BreakUnloading *decimal.Decimal
	BreakOther     *decimal.Decimal
	Message        string
	CreatedAt      time.Time
}
