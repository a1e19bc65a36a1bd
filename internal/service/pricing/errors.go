package pricing

import "errors"

var (
	ErrInvalidPricingConfig = errors.New("invalid pricing configuration")
	ErrInvalidVehicleCount  = errors.New("invalid vehicle count")
)
