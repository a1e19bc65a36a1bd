package routematch

import "errors"

var (
	ErrRoleNotAllowed      = errors.New("role may not create enquiries")
	ErrInvalidCoordinates  = errors.New("invalid pickup or drop coordinates")
	ErrInvalidVehicleCount = errors.New("vehicle count must be positive")
	ErrInvalidWeight       = errors.New("weight must be positive")
	ErrInvalidSchedule     = errors.New("drop date must not precede pickup date")
	ErrNoPricingData       = errors.New("no pricing data for the requested lane")
)
