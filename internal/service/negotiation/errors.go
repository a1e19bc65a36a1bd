package negotiation

import (
	"errors"

	"freightmarket/internal/service/quotation"
)

var (
	ErrRoleNotAllowed    = errors.New("role may not negotiate")
	ErrInvalidAmount     = errors.New("proposed amount must be positive")
	ErrBreakdownMismatch = errors.New("breakdown does not sum to proposed amount")
	ErrNotParticipant    = errors.New("actor is not a party to the quotation")

	// the quotations repository serves both services, the sentinel is shared
	ErrQuotationNotFound      = quotation.ErrQuotationNotFound
	ErrQuotationNotNegotiable = errors.New("quotation is not open for negotiation")
	ErrQuotationExpired       = errors.New("quotation validity window has passed")
	ErrOutOfTurn              = errors.New("waiting for the other party to respond")

	ErrNegotiationNotFound = errors.New("negotiation not found")
	ErrNotLatestOffer      = errors.New("only the latest offer can be accepted")
	ErrSelfAcceptance      = errors.New("cannot accept your own offer")
)
