package access

import "freightmarket/internal/entities"

// Action is a named capability checked before a mutating operation.
type Action string

const (
	ActionSubmitQuotation  Action = "quotation.submit"
	ActionNegotiate        Action = "quotation.negotiate"
	ActionAcceptQuotation  Action = "quotation.accept"
	ActionRejectQuotation  Action = "quotation.reject"
	ActionCreateEnquiry    Action = "enquiry.create"
	ActionVerifyDelivery   Action = "order.verify_delivery"
	ActionViewAnyQuotation Action = "quotation.view_any"
	ActionViewAnyOrder     Action = "order.view_any"
)

// allowed is the single source of truth for flat role capabilities.
// There is no role hierarchy: a capability exists only if listed here.
var allowed = map[Action]map[entities.Role]bool{
	ActionCreateEnquiry: {
		entities.RoleCustomer: true,
	},
	ActionSubmitQuotation: {
		entities.RoleVendor: true,
	},
	ActionNegotiate: {
		entities.RoleCustomer: true,
		entities.RoleVendor:   true,
	},
	ActionAcceptQuotation: {
		entities.RoleCustomer: true,
	},
	ActionRejectQuotation: {
		entities.RoleCustomer: true,
		entities.RoleVendor:   true,
		entities.RoleManager:  true,
		entities.RoleAdmin:    true,
	},
	ActionVerifyDelivery: {
		entities.RoleCustomer: true,
		entities.RoleVendor:   true,
	},
	ActionViewAnyQuotation: {
		entities.RoleManager: true,
		entities.RoleAdmin:   true,
	},
	ActionViewAnyOrder: {
		entities.RoleManager: true,
		entities.RoleAdmin:   true,
	},
}

// orderTargets lists the order statuses each role may move an order
// into. Managers and admins bypass the table; the transition graph
// itself is still enforced for everyone.
var orderTargets = map[entities.Role][]entities.OrderStatus{
	entities.RoleCustomer: {
		entities.OrderCancelled,
	},
	entities.RoleVendor: {
		entities.OrderConfirmed,
		entities.OrderDriverAssigned,
		entities.OrderPickup,
		entities.OrderPickedUp,
		entities.OrderInTransit,
		entities.OrderDelivered,
		entities.OrderCompleted,
		entities.OrderCancelled,
	},
}

func Can(role entities.Role, action Action) bool {
	return allowed[action][role]
}

func CanSetOrderStatus(role entities.Role, target entities.OrderStatus) bool {
	if role == entities.RoleManager || role == entities.RoleAdmin {
		return true
	}
	for _, s := range orderTargets[role] {
		if s == target {
			return true
		}
	}
	return false
}
