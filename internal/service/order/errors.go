package order

import "errors"

var (
	ErrRoleNotAllowed = errors.New("role may not perform this operation")
	ErrNotParticipant = errors.New("actor is not a party to the order")

	ErrOrderNotFound        = errors.New("order not found")
	ErrQuotationNotAccepted = errors.New("quotation is not accepted")
	ErrDuplicateOrder       = errors.New("order already exists for quotation")

	ErrInvalidTransition      = errors.New("status transition not allowed")
	ErrInsufficientPermission = errors.New("role may not set this status")
	ErrStatusConflict         = errors.New("order status changed concurrently")
	ErrMissingContext         = errors.New("transition requires additional context")

	ErrDriverNotFound = errors.New("driver not found for vendor")
	ErrTruckNotFound  = errors.New("truck not found for vendor")

	ErrOtpNotVerified      = errors.New("delivery code not verified")
	ErrInvalidOtp          = errors.New("delivery code does not match")
	ErrVerificationNotOpen = errors.New("delivery code cannot be verified yet")
)
