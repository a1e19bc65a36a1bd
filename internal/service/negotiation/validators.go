package negotiation

import (
	"github.com/shopspring/decimal"

	"freightmarket/internal/entities"
)

// breakdownTolerance is the smallest money unit; component sums may
// drift from the proposal by at most this much.
var breakdownTolerance = decimal.NewFromFloat(0.01)

func isValidProposal(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

func breakdownMatches(b *entities.Breakdown, proposed decimal.Decimal) bool {
	if b == nil {
		return true
	}
	return b.Sum().Sub(proposed).Abs().LessThanOrEqual(breakdownTolerance)
}

func isParticipant(q *entities.Quotation, actor entities.Principal) bool {
	switch actor.Role {
	case entities.RoleCustomer:
		return actor.ID == q.CustomerID
	case entities.RoleVendor:
		return actor.ID == q.VendorID
	}
	return false
}
