package order

import "freightmarket/internal/entities"

// transitions is the absolute order status graph. It binds every role,
// elevated ones included.
var transitions = map[entities.OrderStatus][]entities.OrderStatus{
	entities.OrderCreated:        {entities.OrderConfirmed, entities.OrderCancelled},
	entities.OrderConfirmed:      {entities.OrderDriverAssigned, entities.OrderCancelled},
	entities.OrderDriverAssigned: {entities.OrderPickup, entities.OrderCancelled},
	entities.OrderPickup:         {entities.OrderPickedUp, entities.OrderCancelled},
	entities.OrderPickedUp:       {entities.OrderInTransit},
	entities.OrderInTransit:      {entities.OrderDelivered},
	entities.OrderDelivered:      {entities.OrderCompleted},
}

func canTransition(from, to entities.OrderStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// verificationOpen reports whether the delivery code may be checked:
// cargo must be on the move or dropped, and the order still open.
func verificationOpen(status entities.OrderStatus) bool {
	switch status {
	case entities.OrderPickedUp, entities.OrderInTransit, entities.OrderDelivered:
		return true
	}
	return false
}
