package routematch

import (
	"math"

	"freightmarket/internal/entities"
	"freightmarket/internal/service/pricing"
	"freightmarket/pkg/geo"
)

// matchToleranceKm is the operational radius around a route point
// within which a request coordinate counts as served by that point.
const matchToleranceKm = 50.0

// destinationOrder sorts after every stop.
const destinationOrder = math.MaxInt32

type matchPoint struct {
	city     string
	order    int
	endpoint bool
}

type candidate struct {
	route     entities.Route
	pricing   entities.RoutePricing
	matchType entities.RouteMatchType
	quote     pricing.Quote
}

// matchRoute checks whether the route can serve the request's pickup
// and drop. Drops must lie strictly later on the route than pickups;
// backward legs never match.
func matchRoute(route entities.Route, req entities.ShipmentRequest) (entities.RouteMatchType, *matchPoint, *matchPoint) {
	pickupLoc := geo.Point{Lat: req.PickupLat, Lon: req.PickupLon}
	dropLoc := geo.Point{Lat: req.DropLat, Lon: req.DropLon}

	pickup := findPickup(route, pickupLoc)
	if pickup == nil {
		return "", nil, nil
	}
	drop := findDrop(route, dropLoc, pickup.order)
	if drop == nil {
		return "", nil, nil
	}

	if pickup.endpoint && drop.endpoint {
		return entities.MatchDirect, pickup, drop
	}
	return entities.MatchViaStops, pickup, drop
}

func findPickup(route entities.Route, loc geo.Point) *matchPoint {
	origin := geo.Point{Lat: route.OriginLat, Lon: route.OriginLon}
	if geo.WithinKm(loc, origin, matchToleranceKm) {
		return &matchPoint{city: route.OriginCity, order: 0, endpoint: true}
	}

	for _, stop := range route.Stops {
		if !stop.CanPickup {
			continue
		}
		if geo.WithinKm(loc, geo.Point{Lat: stop.Lat, Lon: stop.Lon}, matchToleranceKm) {
			return &matchPoint{city: stop.City, order: stop.StopOrder}
		}
	}
	return nil
}

func findDrop(route entities.Route, loc geo.Point, afterOrder int) *matchPoint {
	destination := geo.Point{Lat: route.DestinationLat, Lon: route.DestinationLon}
	if geo.WithinKm(loc, destination, matchToleranceKm) {
		return &matchPoint{city: route.DestinationCity, order: destinationOrder, endpoint: true}
	}

	for _, stop := range route.Stops {
		if !stop.CanDrop || stop.StopOrder <= afterOrder {
			continue
		}
		if geo.WithinKm(loc, geo.Point{Lat: stop.Lat, Lon: stop.Lon}, matchToleranceKm) {
			return &matchPoint{city: stop.City, order: stop.StopOrder}
		}
	}
	return nil
}

// pickPricing selects the pricing row for a matched leg: an exact
// segment row when one exists, the full lane row otherwise, any
// usable row as a last resort.
func pickPricing(route entities.Route, pickup, drop *matchPoint, req entities.ShipmentRequest) *entities.RoutePricing {
	var fullLane, fallback *entities.RoutePricing

	for i := range route.Pricing {
		row := &route.Pricing[i]
		if !row.Active || row.TruckTypeID != req.TruckTypeID || row.AvailableVehicles < req.VehicleCount {
			continue
		}
		if row.FromCity == pickup.city && row.ToCity == drop.city {
			return row
		}
		if row.FromCity == route.OriginCity && row.ToCity == route.DestinationCity && fullLane == nil {
			fullLane = row
		}
		if fallback == nil {
			fallback = row
		}
	}

	if fullLane != nil {
		return fullLane
	}
	return fallback
}
