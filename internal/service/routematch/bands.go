package routematch

import (
	"sort"

	"github.com/shopspring/decimal"

	"freightmarket/internal/entities"
	"freightmarket/internal/service/pricing"
)

// Miscellaneous pricing fallback: a flat per-km rate when no vendor
// has published rows for the truck type, and the estimate markup
// corridor applied on top of the raw estimate.
var (
	fallbackRatePerKm = decimal.NewFromInt(25)
	miscMinMarkup     = decimal.NewFromFloat(1.2)
	miscMaxMarkup     = decimal.NewFromFloat(1.5)
	miscRecMarkup     = decimal.NewFromFloat(1.35)
)

// buildBands aggregates priced candidates into anonymized price bands.
// Candidates whose [min, max] corridors overlap collapse into a single
// band; disjoint corridors stay separate.
func buildBands(candidates []candidate, req entities.ShipmentRequest) []entities.PriceRange {
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i].quote, candidates[j].quote
		if !a.MinTotal.Equal(b.MinTotal) {
			return a.MinTotal.LessThan(b.MinTotal)
		}
		return a.Total.LessThan(b.Total)
	})

	var bands []entities.PriceRange
	group := []candidate{candidates[0]}
	groupMax := candidates[0].quote.MaxTotal

	for _, c := range candidates[1:] {
		if c.quote.MinTotal.GreaterThan(groupMax) {
			bands = append(bands, bandFromGroup(group, req))
			group = group[:0]
			groupMax = c.quote.MaxTotal
		} else if c.quote.MaxTotal.GreaterThan(groupMax) {
			groupMax = c.quote.MaxTotal
		}
		group = append(group, c)
	}
	bands = append(bands, bandFromGroup(group, req))

	return bands
}

func bandFromGroup(group []candidate, req entities.ShipmentRequest) entities.PriceRange {
	best := group[0]
	minPrice := group[0].quote.MinTotal
	maxPrice := group[0].quote.MaxTotal
	vehicles := 0
	vendors := map[int64]struct{}{}
	routeIDs := make([]int64, 0, len(group))
	hasDirect := false

	for _, c := range group {
		if c.quote.MinTotal.LessThan(minPrice) {
			minPrice = c.quote.MinTotal
		}
		if c.quote.MaxTotal.GreaterThan(maxPrice) {
			maxPrice = c.quote.MaxTotal
		}
		if betterOffer(c, best) {
			best = c
		}
		vehicles += c.pricing.AvailableVehicles
		vendors[c.route.VendorID] = struct{}{}
		routeIDs = append(routeIDs, c.route.ID)
		if c.matchType == entities.MatchDirect {
			hasDirect = true
		}
	}

	routeType := entities.MatchViaStops
	if hasDirect {
		routeType = entities.MatchDirect
	}

	return entities.PriceRange{
		MinPrice:           minPrice,
		MaxPrice:           maxPrice,
		RecommendedPrice:   best.quote.Total,
		VehiclesAvailable:  vehicles,
		VendorsCount:       len(vendors),
		DealProbability:    pricing.BandProbability(len(vendors), vehicles, req.VehicleCount),
		RouteType:          routeType,
		SupportingRouteIDs: routeIDs,
	}
}

// betterOffer prefers the lower total, breaking ties on spare capacity.
func betterOffer(a, b candidate) bool {
	if !a.quote.Total.Equal(b.quote.Total) {
		return a.quote.Total.LessThan(b.quote.Total)
	}
	return a.pricing.AvailableVehicles > b.pricing.AvailableVehicles
}

// miscellaneousBand prices an unmatched lane from the average per-km
// rate the truck type trades at, or the flat fallback rate when no
// vendor has published pricing for it.
func miscellaneousBand(routes []entities.Route, req entities.ShipmentRequest, distanceKm float64) (entities.PriceRange, error) {
	if distanceKm <= 0 {
		return entities.PriceRange{}, ErrNoPricingData
	}

	rate := averageRatePerKm(routes, req.TruckTypeID)
	estimate := rate.
		Mul(decimal.NewFromFloat(distanceKm)).
		Mul(decimal.NewFromInt(int64(req.VehicleCount)))

	return entities.PriceRange{
		MinPrice:         estimate.Mul(miscMinMarkup).Round(2),
		MaxPrice:         estimate.Mul(miscMaxMarkup).Round(2),
		RecommendedPrice: estimate.Mul(miscRecMarkup).Round(2),
		DealProbability:  entities.ProbabilityMedium,
		RouteType:        entities.MatchMiscellaneous,
	}, nil
}

func averageRatePerKm(routes []entities.Route, truckTypeID int64) decimal.Decimal {
	sum := decimal.Zero
	n := 0
	for _, route := range routes {
		for _, row := range route.Pricing {
			if !row.Active || row.TruckTypeID != truckTypeID || !row.PricePerKm.IsPositive() {
				continue
			}
			sum = sum.Add(row.PricePerKm)
			n++
		}
	}
	if n == 0 {
		return fallbackRatePerKm
	}
	return sum.Div(decimal.NewFromInt(int64(n)))
}
