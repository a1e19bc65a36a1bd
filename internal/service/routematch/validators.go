package routematch

import (
	"freightmarket/internal/entities"
	"freightmarket/pkg/geo"
)

func validateRequest(req entities.ShipmentRequest) error {
	pickup := geo.Point{Lat: req.PickupLat, Lon: req.PickupLon}
	drop := geo.Point{Lat: req.DropLat, Lon: req.DropLon}
	if !pickup.Valid() || !drop.Valid() {
		return ErrInvalidCoordinates
	}
	if req.VehicleCount <= 0 {
		return ErrInvalidVehicleCount
	}
	if !req.WeightKg.IsPositive() {
		return ErrInvalidWeight
	}
	if !req.DropDate.IsZero() && req.DropDate.Before(req.PickupDate) {
		return ErrInvalidSchedule
	}
	return nil
}

// stopsWellFormed rejects routes whose stops break the travel-order
// invariant: stop order strictly increasing and distance from origin
// monotonic. Malformed seed data must not produce backward matches.
func stopsWellFormed(route entities.Route) bool {
	for i := 1; i < len(route.Stops); i++ {
		prev, cur := route.Stops[i-1], route.Stops[i]
		if cur.StopOrder <= prev.StopOrder {
			return false
		}
		if cur.DistanceFromOriginKm < prev.DistanceFromOriginKm {
			return false
		}
	}
	return true
}
