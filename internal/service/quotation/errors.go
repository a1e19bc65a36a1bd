package quotation

import "errors"

var (
	ErrRoleNotAllowed    = errors.New("role may not perform this operation")
	ErrInvalidAmount     = errors.New("total amount must be positive")
	ErrInvalidValidity   = errors.New("validity hours must be positive")
	ErrNoItems           = errors.New("quotation must contain at least one item")
	ErrItemTotalMismatch = errors.New("item totals do not sum to the quoted amount")
	ErrNotParticipant    = errors.New("actor is not a party to the quotation")

	ErrRequestNotFound   = errors.New("shipment request not found")
	ErrQuotationNotFound = errors.New("quotation not found")
	ErrQuotationExists   = errors.New("vendor already quoted this request")

	ErrAlreadyResolved         = errors.New("quotation already resolved")
	ErrQuotationExpired        = errors.New("quotation validity window has passed")
	ErrRequestAlreadyFulfilled = errors.New("request already has an accepted quotation")
)
