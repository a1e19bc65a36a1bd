package routes

import (
	"freightmarket/internal/entities"
)

func ToDomain(r *RouteDB, stops []RouteStopDB, pricing []RoutePricingDB) *entities.Route {
	if r == nil {
		return nil
	}

	route := &entities.Route{
		ID:              r.ID,
		VendorID:        r.VendorID,
		Name:            r.Name,
		OriginCity:      r.OriginCity,
		OriginLat:       r.OriginLat,
		OriginLon:       r.OriginLon,
		DestinationCity: r.DestinationCity,
		DestinationLat:  r.DestinationLat,
		DestinationLon:  r.DestinationLon,
		TotalDistanceKm: r.TotalDistanceKm,
		Active:          r.Active,
	}

	for _, stop := range stops {
		route.Stops = append(route.Stops, entities.RouteStop{
			ID:                   stop.ID,
			RouteID:              stop.RouteID,
			City:                 stop.City,
			Lat:                  stop.Lat,
			Lon:                  stop.Lon,
			StopOrder:            stop.StopOrder,
			DistanceFromOriginKm: stop.DistanceFromOriginKm,
			CanPickup:            stop.CanPickup,
			CanDrop:              stop.CanDrop,
		})
	}

	for _, row := range pricing {
		route.Pricing = append(route.Pricing, entities.RoutePricing{
			ID:                row.ID,
			RouteID:           row.RouteID,
			VendorID:          row.VendorID,
			TruckTypeID:       row.TruckTypeID,
			FromCity:          row.FromCity,
			ToCity:            row.ToCity,
			SegmentDistanceKm: row.SegmentDistanceKm,
			BasePrice:         row.BasePrice,
			PricePerKm:        row.PricePerKm,
			FuelCharges:       row.FuelCharges,
			TollCharges:       row.TollCharges,
			LoadingCharges:    row.LoadingCharges,
			UnloadingCharges:  row.UnloadingCharges,
			MinPrice:          row.MinPrice,
			MaxPrice:          row.MaxPrice,
			AvailableVehicles: row.AvailableVehicles,
			Active:            row.Active,
		})
	}

	return route
}
