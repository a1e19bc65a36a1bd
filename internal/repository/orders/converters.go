package orders

import (
	"freightmarket/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                  o.ID,
		Number:              o.Number,
		QuotationID:         o.QuotationID,
		CustomerID:          o.CustomerID,
		VendorID:            o.VendorID,
		TruckID:             o.TruckID,
		DriverID:            o.DriverID,
		PickupCity:          o.PickupCity,
		DropCity:            o.DropCity,
		ScheduledPickupAt:   o.ScheduledPickupAt,
		ScheduledDeliveryAt: o.ScheduledDeliveryAt,
		ActualPickupAt:      o.ActualPickupAt,
		ActualDeliveryAt:    o.ActualDeliveryAt,
		TotalAmount:         o.TotalAmount,
		EstimatedWeightKg:   o.EstimatedWeightKg,
		ActualWeightKg:      o.ActualWeightKg,
		DeliveryOTP:         o.DeliveryOTP,
		OTPVerified:         o.OTPVerified,
		Status:              entities.OrderStatus(o.Status),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func HistoryToDomain(h *StatusHistoryDB) *entities.OrderStatusHistory {
	if h == nil {
		return nil
	}

	return &entities.OrderStatusHistory{
		ID:             h.ID,
		OrderID:        h.OrderID,
		PreviousStatus: entities.OrderStatus(h.PreviousStatus),
		NewStatus:      entities.OrderStatus(h.NewStatus),
		ActorID:        h.ActorID,
		ActorRole:      entities.Role(h.ActorRole),
		Lat:            h.Lat,
		Lon:            h.Lon,
		Notes:          h.Notes,
		CreatedAt:      h.CreatedAt,
	}
}
