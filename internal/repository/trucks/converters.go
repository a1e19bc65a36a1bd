package trucks

import (
	"freightmarket/internal/entities"
)

func ToDomain(t *TruckDB) *entities.Truck {
	if t == nil {
		return nil
	}

	return &entities.Truck{
		ID:                 t.ID,
		VendorID:           t.VendorID,
		TruckTypeID:        t.TruckTypeID,
		RegistrationNumber: t.RegistrationNumber,
		CapacityTons:       t.CapacityTons,
		Availability:       entities.TruckAvailability(t.Availability),
	}
}

func DriverToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:            d.ID,
		VendorID:      d.VendorID,
		Name:          d.Name,
		Phone:         d.Phone,
		LicenseNumber: d.LicenseNumber,
		Available:     d.Available,
	}
}
