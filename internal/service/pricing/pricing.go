package pricing

import (
	"github.com/shopspring/decimal"

	"freightmarket/internal/entities"
)

// Quote is the priced outcome of one pricing row for a requested
// vehicle count.
type Quote struct {
	PerVehicle  decimal.Decimal
	Total       decimal.Decimal
	MinTotal    decimal.Decimal
	MaxTotal    decimal.Decimal
	Probability entities.DealProbability
}

// Calculate prices a segment for vehicleCount vehicles. The per-vehicle
// price is base + perKm*distance + surcharges, clamped into the row's
// [MinPrice, MaxPrice] corridor.
func Calculate(p entities.RoutePricing, vehicleCount int) (Quote, error) {
	if vehicleCount <= 0 {
		return Quote{}, ErrInvalidVehicleCount
	}
	if err := validatePricing(p); err != nil {
		return Quote{}, err
	}

	distance := decimal.NewFromFloat(p.SegmentDistanceKm)
	perVehicle := p.BasePrice.
		Add(p.PricePerKm.Mul(distance)).
		Add(p.FuelCharges).
		Add(p.TollCharges).
		Add(p.LoadingCharges).
		Add(p.UnloadingCharges)

	if perVehicle.LessThan(p.MinPrice) {
		perVehicle = p.MinPrice
	}
	if perVehicle.GreaterThan(p.MaxPrice) {
		perVehicle = p.MaxPrice
	}

	count := decimal.NewFromInt(int64(vehicleCount))

	return Quote{
		PerVehicle:  perVehicle.Round(2),
		Total:       perVehicle.Mul(count).Round(2),
		MinTotal:    p.MinPrice.Mul(count).Round(2),
		MaxTotal:    p.MaxPrice.Mul(count).Round(2),
		Probability: quoteProbability(p, perVehicle, vehicleCount),
	}, nil
}

// BandProbability estimates the likelihood of closing a deal inside an
// aggregated price band from vendor and vehicle supply.
func BandProbability(vendors, vehiclesAvailable, vehiclesRequested int) entities.DealProbability {
	switch {
	case vendors >= 3 && vehiclesAvailable >= 2*vehiclesRequested:
		return entities.ProbabilityHigh
	case vendors >= 2 && vehiclesAvailable >= vehiclesRequested:
		return entities.ProbabilityMedium
	default:
		return entities.ProbabilityLow
	}
}

// quoteProbability positions the clamped price inside the corridor: the
// closer to the floor and the larger the spare capacity, the likelier
// the deal.
func quoteProbability(p entities.RoutePricing, perVehicle decimal.Decimal, requested int) entities.DealProbability {
	spread := p.MaxPrice.Sub(p.MinPrice)

	position := decimal.Zero
	if spread.IsPositive() {
		position = perVehicle.Sub(p.MinPrice).Div(spread)
	}

	half := decimal.NewFromFloat(0.5)
	upper := decimal.NewFromFloat(0.9)

	switch {
	case p.AvailableVehicles < requested || position.GreaterThanOrEqual(upper):
		return entities.ProbabilityLow
	case p.AvailableVehicles >= 2*requested && position.LessThanOrEqual(half):
		return entities.ProbabilityHigh
	default:
		return entities.ProbabilityMedium
	}
}

func validatePricing(p entities.RoutePricing) error {
	if p.MinPrice.GreaterThan(p.MaxPrice) {
		return ErrInvalidPricingConfig
	}
	for _, v := range []decimal.Decimal{
		p.BasePrice, p.PricePerKm, p.FuelCharges, p.TollCharges,
		p.LoadingCharges, p.UnloadingCharges, p.MinPrice,
	} {
		if v.IsNegative() {
			return ErrInvalidPricingConfig
		}
	}
	if p.SegmentDistanceKm < 0 {
		return ErrInvalidPricingConfig
	}
	return nil
}
