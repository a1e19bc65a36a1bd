package entities

import "github.com/shopspring/decimal"

type TruckAvailability string

const (
	TruckAvailable   TruckAvailability = "available"
	TruckBusy        TruckAvailability = "busy"
	TruckMaintenance TruckAvailability = "maintenance"
	TruckInactive    TruckAvailability = "inactive"
)

func (s TruckAvailability) String() string {
	return string(s)
}

type TruckType struct {
	ID   int64
	Name string
}

type Truck struct {
	ID                 int64
	VendorID           int64
	TruckTypeID        int64
	RegistrationNumber string
	CapacityTons       decimal.Decimal
	Availability       TruckAvailability
}

type Driver struct {
	ID            int64
	VendorID      int64
	Name          string
	Phone         string
	LicenseNumber string
	Available     bool
}
