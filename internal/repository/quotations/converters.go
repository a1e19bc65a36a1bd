package quotations

import (
	"freightmarket/internal/entities"
)

func ToDomain(q *QuotationDB, items []QuotationItemDB) *entities.Quotation {
	if q == nil {
		return nil
	}

	return &entities.Quotation{
		ID:            q.ID,
		RequestID:     q.RequestID,
		CustomerID:    q.CustomerID,
		VendorID:      q.VendorID,
		CreatedBy:     entities.Role(q.CreatedBy),
		Items:         ItemsToDomain(items),
		TotalAmount:   q.TotalAmount,
		CurrentAmount: q.CurrentAmount,
		ValidityHours: q.ValidityHours,
		Status:        entities.QuotationStatus(q.Status),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func ItemsToDomain(items []QuotationItemDB) []entities.QuotationItem {
	if len(items) == 0 {
		return nil
	}

	result := make([]entities.QuotationItem, len(items))
	for i, item := range items {
		result[i] = entities.QuotationItem{
			ID:          item.ID,
			QuotationID: item.QuotationID,
			TruckTypeID: item.TruckTypeID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	return result
}
