package trucks

import "github.com/shopspring/decimal"

type TruckDB struct {
	ID                 int64
	VendorID           int64
	TruckTypeID        int64
	RegistrationNumber string
	CapacityTons       decimal.Decimal
	Availability       string
}

type DriverDB struct {
	ID            int64
	VendorID      int64
	Name          string
	Phone         string
	LicenseNumber string
	Available     bool
}
