package quotation

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"

	"freightmarket/internal/entities"
	"freightmarket/internal/service/access"
)

type Quotation struct {
	repository Repository
	requests   RequestRepository
	orders     OrderCreator
	events     EventPublisher
	txManager  TxManager
}

func New(
	repository Repository,
	requests RequestRepository,
	orders OrderCreator,
	events EventPublisher,
	txManager TxManager,
) *Quotation {
	return &Quotation{
		repository: repository,
		requests:   requests,
		orders:     orders,
		events:     events,
		txManager:  txManager,
	}
}

// Submit creates a vendor's quotation against a shipment request.
// One quotation per vendor per request.
func (q *Quotation) Submit(
	ctx context.Context,
	requestID int64,
	actor entities.Principal,
	items []entities.QuotationItem,
	totalAmount decimal.Decimal,
	validityHours int,
) (*entities.Quotation, error) {
	if !access.Can(actor.Role, access.ActionSubmitQuotation) {
		return nil, ErrRoleNotAllowed
	}
	if !totalAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if !itemsMatchTotal(items, totalAmount) {
		return nil, ErrItemTotalMismatch
	}
	if validityHours == 0 {
		validityHours = entities.DefaultValidityHours
	}
	if validityHours < 0 {
		return nil, ErrInvalidValidity
	}

	var created *entities.Quotation
	err := q.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := q.requests.GetByID(ctx, requestID); err != nil {
			return fmt.Errorf("get request: %w", err)
		}

		var err error
		created, err = q.repository.Create(ctx, entities.Quotation{
			RequestID:     requestID,
			VendorID:      actor.ID,
			CreatedBy:     entities.RoleVendor,
			Items:         items,
			TotalAmount:   totalAmount,
			CurrentAmount: totalAmount,
			ValidityHours: validityHours,
			Status:        entities.QuotationPending,
		})
		if err != nil {
			return fmt.Errorf("create quotation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	q.events.QuotationStatusChanged(ctx, *created)
	return created, nil
}

// AcceptDirect accepts a quotation at its current amount without any
// negotiation round. Customer only.
func (q *Quotation) AcceptDirect(ctx context.Context, quotationID int64, actor entities.Principal) (*entities.Quotation, *entities.Order, error) {
	if !access.Can(actor.Role, access.ActionAcceptQuotation) {
		return nil, nil, ErrRoleNotAllowed
	}
	return q.accept(ctx, quotationID, nil, actor)
}

// AcceptNegotiated accepts a quotation at a negotiated amount. Turn
// and self-acceptance rules are enforced by the negotiation service
// before it delegates here.
func (q *Quotation) AcceptNegotiated(ctx context.Context, quotationID int64, finalAmount decimal.Decimal, actor entities.Principal) (*entities.Quotation, *entities.Order, error) {
	return q.accept(ctx, quotationID, &finalAmount, actor)
}

func (q *Quotation) accept(ctx context.Context, quotationID int64, finalAmount *decimal.Decimal, actor entities.Principal) (*entities.Quotation, *entities.Order, error) {
	var (
		accepted *entities.Quotation
		order    *entities.Order
		rejected []entities.Quotation
	)
	err := q.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := q.repository.GetByID(ctx, quotationID)
		if err != nil {
			return fmt.Errorf("get quotation: %w", err)
		}

		if !canSee(current, actor) {
			return ErrNotParticipant
		}
		if current.Status.Terminal() {
			return ErrAlreadyResolved
		}
		if time.Now().UTC().After(current.ExpiresAt()) {
			return ErrQuotationExpired
		}

		count, err := q.repository.CountAcceptedByRequestID(ctx, current.RequestID)
		if err != nil {
			return fmt.Errorf("count accepted: %w", err)
		}
		if count > 0 {
			return ErrRequestAlreadyFulfilled
		}

		final := current.CurrentAmount
		if finalAmount != nil {
			final = *finalAmount
		}

		// the guarded update loses against a concurrent accept even
		// after the checks above passed
		accepted, err = q.repository.AcceptGuarded(ctx, current.ID, current.RequestID, final)
		if err != nil {
			return fmt.Errorf("accept quotation: %w", err)
		}

		rejected, err = q.repository.RejectOpenSiblings(ctx, current.RequestID, current.ID)
		if err != nil {
			return fmt.Errorf("reject siblings: %w", err)
		}

		order, err = q.orders.CreateFromQuotation(ctx, *accepted, actor)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	q.events.QuotationStatusChanged(ctx, *accepted)
	for _, sibling := range rejected {
		q.events.QuotationStatusChanged(ctx, sibling)
	}
	q.events.OrderCreated(ctx, *order)
	return accepted, order, nil
}

// Reject resolves the quotation negatively. Idempotent rejection is
// not offered: a second attempt reports the quotation as resolved.
func (q *Quotation) Reject(ctx context.Context, quotationID int64, actor entities.Principal) (*entities.Quotation, error) {
	if !access.Can(actor.Role, access.ActionRejectQuotation) {
		return nil, ErrRoleNotAllowed
	}

	var updated *entities.Quotation
	err := q.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := q.repository.GetByID(ctx, quotationID)
		if err != nil {
			return fmt.Errorf("get quotation: %w", err)
		}
		if !canSee(current, actor) {
			return ErrNotParticipant
		}
		if current.Status.Terminal() {
			return ErrAlreadyResolved
		}

		updated, err = q.repository.Update(ctx, current.ID, entities.QuotationModify{
			Status: pointer.To(entities.QuotationRejected),
		})
		if err != nil {
			return fmt.Errorf("update quotation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	q.events.QuotationStatusChanged(ctx, *updated)
	return updated, nil
}

// ExpireDue moves every quotation past its validity window into the
// expired state and reports how many were swept. Terminal quotations
// are never touched.
func (q *Quotation) ExpireDue(ctx context.Context) (int64, error) {
	expired, err := q.repository.ExpireDue(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("expire due quotations: %w", err)
	}

	for _, quotation := range expired {
		q.events.QuotationStatusChanged(ctx, quotation)
	}
	return int64(len(expired)), nil
}

// Get returns the quotation if the actor may see it.
func (q *Quotation) Get(ctx context.Context, quotationID int64, actor entities.Principal) (*entities.Quotation, error) {
	quotation, err := q.repository.GetByID(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	if !canSee(quotation, actor) {
		return nil, ErrQuotationNotFound
	}
	return quotation, nil
}

// ListByRequest returns the customer's view of all quotations against
// one of their requests.
func (q *Quotation) ListByRequest(ctx context.Context, requestID int64, actor entities.Principal) ([]entities.Quotation, error) {
	request, err := q.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if actor.Role == entities.RoleCustomer && actor.ID != request.CustomerID {
		return nil, ErrRequestNotFound
	}

	quotations, err := q.repository.ListByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}

	if actor.Role == entities.RoleVendor {
		own := make([]entities.Quotation, 0, 1)
		for _, quotation := range quotations {
			if quotation.VendorID == actor.ID {
				own = append(own, quotation)
			}
		}
		return own, nil
	}
	return quotations, nil
}
