package dto

import (
	"freightmarket/internal/entities"
)

func FromQuotation(q entities.Quotation) Quotation {
	items := make([]QuotationItem, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, QuotationItem{
			TruckTypeID: item.TruckTypeID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return Quotation{
		ID:            q.ID,
		RequestID:     q.RequestID,
		VendorID:      q.VendorID,
		Status:        q.Status.String(),
		Items:         items,
		TotalAmount:   q.TotalAmount,
		CurrentAmount: q.CurrentAmount,
		ValidityHours: q.ValidityHours,
		ExpiresAt:     q.ExpiresAt(),
		CreatedAt:     q.CreatedAt,
	}
}

func FromNegotiation(n entities.Negotiation) Negotiation {
	var breakdown *Breakdown
	if n.Breakdown != nil {
		breakdown = &Breakdown{
			Base:      n.Breakdown.Base,
			Fuel:      n.Breakdown.Fuel,
			Toll:      n.Breakdown.Toll,
			Loading:   n.Breakdown.Loading,
			Unloading: n.Breakdown.Unloading,
			Other:     n.Breakdown.Other,
		}
	}

	return Negotiation{
		ID:             n.ID,
		QuotationID:    n.QuotationID,
		InitiatedBy:    n.InitiatedBy.String(),
		ProposedAmount: n.ProposedAmount,
		Breakdown:      breakdown,
		Message:        n.Message,
		CreatedAt:      n.CreatedAt,
	}
}

// FromOrder renders an order for the given viewer. The delivery code
// is visible to the customer only, the driver learns it offline.
func FromOrder(o entities.Order, viewer entities.Principal) Order {
	out := Order{
		ID:                  o.ID,
		OrderNumber:         o.Number,
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
		OTPVerified:         o.OTPVerified,
		Status:              o.Status.String(),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}

	if viewer.Role == entities.RoleCustomer && viewer.ID == o.CustomerID {
		out.DeliveryOTP = o.DeliveryOTP
	}
	return out
}

func FromPriceRange(r entities.PriceRange) PriceRange {
	return PriceRange{
		MinPrice:          r.MinPrice,
		MaxPrice:          r.MaxPrice,
		RecommendedPrice:  r.RecommendedPrice,
		VehiclesAvailable: r.VehiclesAvailable,
		VendorsCount:      r.VendorsCount,
		DealProbability:   r.DealProbability.String(),
		RouteType:         r.RouteType.String(),
	}
}

func FromHistoryEntry(h entities.OrderStatusHistory) OrderHistoryEntry {
	return OrderHistoryEntry{
		PreviousStatus: h.PreviousStatus.String(),
		NewStatus:      h.NewStatus.String(),
		ActorRole:      h.ActorRole.String(),
		Lat:            h.Lat,
		Lon:            h.Lon,
		Notes:          h.Notes,
		CreatedAt:      h.CreatedAt,
	}
}
