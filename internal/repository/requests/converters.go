package requests

import (
	"freightmarket/internal/entities"
)

func ToDomain(r *ShipmentRequestDB) *entities.ShipmentRequest {
	if r == nil {
		return nil
	}

	return &entities.ShipmentRequest{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		PickupCity:    r.PickupCity,
		PickupLat:     r.PickupLat,
		PickupLon:     r.PickupLon,
		DropCity:      r.DropCity,
		DropLat:       r.DropLat,
		DropLon:       r.DropLon,
		PickupDate:    r.PickupDate,
		DropDate:      r.DropDate,
		TruckTypeID:   r.TruckTypeID,
		VehicleCount:  r.VehicleCount,
		WeightKg:      r.WeightKg,
		BudgetMin:     r.BudgetMin,
		BudgetMax:     r.BudgetMax,
		Miscellaneous: r.Miscellaneous,
		CreatedAt:     r.CreatedAt,
	}
}

func RangeToDomain(p *PriceRangeDB) *entities.PriceRange {
	if p == nil {
		return nil
	}

	return &entities.PriceRange{
		ID:                 p.ID,
		RequestID:          p.RequestID,
		MinPrice:           p.MinPrice,
		MaxPrice:           p.MaxPrice,
		RecommendedPrice:   p.RecommendedPrice,
		VehiclesAvailable:  p.VehiclesAvailable,
		VendorsCount:       p.VendorsCount,
		DealProbability:    entities.DealProbability(p.DealProbability),
		RouteType:          entities.RouteMatchType(p.RouteType),
		SupportingRouteIDs: p.SupportingRouteIDs,
		CreatedAt:          p.CreatedAt,
	}
}
