package negotiations

import (
	"github.com/shopspring/decimal"

	"freightmarket/internal/entities"
)

func ToDomain(n *NegotiationDB) *entities.Negotiation {
	if n == nil {
		return nil
	}

	return &entities.Negotiation{
		ID:             n.ID,
		QuotationID:    n.QuotationID,
		InitiatedBy:    entities.Role(n.InitiatedBy),
		ProposedAmount: n.ProposedAmount,
		Breakdown:      breakdownToDomain(n),
		Message:        n.Message,
		CreatedAt:      n.CreatedAt,
	}
}

// breakdownToDomain treats an all-NULL component set as no breakdown.
func breakdownToDomain(n *NegotiationDB) *entities.Breakdown {
	if n.BreakBase == nil && n.BreakFuel == nil && n.BreakToll == nil &&
		n.BreakLoading == nil && n.BreakUnloading == nil && n.BreakOther == nil {
		return nil
	}

	return &entities.Breakdown{
		Base:      orZero(n.BreakBase),
		Fuel:      orZero(n.BreakFuel),
		Toll:      orZero(n.BreakToll),
		Loading:   orZero(n.BreakLoading),
		Unloading: orZero(n.BreakUnloading),
		Other:     orZero(n.BreakOther),
	}
}

func FromDomainBreakdown(b *entities.Breakdown) (base, fuel, toll, loading, unloading, other *decimal.Decimal) {
	if b == nil {
		return nil, nil, nil, nil, nil, nil
	}
	return &b.Base, &b.Fuel, &b.Toll, &b.Loading, &b.Unloading, &b.Other
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
