package negotiation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"

	"freightmarket/internal/entities"
	"freightmarket/internal/service/access"
)

type Negotiation struct {
	repository Repository
	quotations QuotationRepository
	acceptor   QuotationAcceptor
	events     EventPublisher
	txManager  TxManager
}

func New(
	repository Repository,
	quotations QuotationRepository,
	acceptor QuotationAcceptor,
	events EventPublisher,
	txManager TxManager,
) *Negotiation {
	return &Negotiation{
		repository: repository,
		quotations: quotations,
		acceptor:   acceptor,
		events:     events,
		txManager:  txManager,
	}
}

// AcceptResult is the outcome of accepting an offer: the resolved
// quotation, the order it produced and the money saved relative to the
// quotation's opening amount.
type AcceptResult struct {
	Quotation   entities.Quotation
	Order       entities.Order
	FinalAmount decimal.Decimal
	Savings     decimal.Decimal
}

// CreateOffer appends a counter-offer to the quotation's history.
// Offers strictly alternate between the two parties; with an empty
// history the quotation's author counts as the last initiator.
func (n *Negotiation) CreateOffer(
	ctx context.Context,
	quotationID int64,
	actor entities.Principal,
	proposed decimal.Decimal,
	breakdown *entities.Breakdown,
	message string,
) (*entities.Negotiation, error) {
	if !access.Can(actor.Role, access.ActionNegotiate) {
		return nil, ErrRoleNotAllowed
	}
	if !isValidProposal(proposed) {
		return nil, ErrInvalidAmount
	}
	if !breakdownMatches(breakdown, proposed) {
		return nil, ErrBreakdownMismatch
	}

	var (
		created *entities.Negotiation
		updated *entities.Quotation
	)
	err := n.txManager.Do(ctx, func(ctx context.Context) error {
		quotation, err := n.quotations.GetByID(ctx, quotationID)
		if err != nil {
			return fmt.Errorf("get quotation: %w", err)
		}

		if !isParticipant(quotation, actor) {
			return ErrNotParticipant
		}
		if !quotation.Status.Negotiable() {
			return ErrQuotationNotNegotiable
		}
		if time.Now().UTC().After(quotation.ExpiresAt()) {
			return ErrQuotationExpired
		}

		lastInitiator := quotation.CreatedBy
		latest, err := n.repository.GetLatestByQuotationID(ctx, quotation.ID)
		switch {
		case err == nil:
			lastInitiator = latest.InitiatedBy
		case errors.Is(err, ErrNegotiationNotFound):
		default:
			return fmt.Errorf("get latest offer: %w", err)
		}
		if lastInitiator == actor.Role {
			return ErrOutOfTurn
		}

		created, err = n.repository.Create(ctx, entities.Negotiation{
			QuotationID:    quotation.ID,
			InitiatedBy:    actor.Role,
			ProposedAmount: proposed,
			Breakdown:      breakdown,
			Message:        message,
		})
		if err != nil {
			return fmt.Errorf("create offer: %w", err)
		}

		updated, err = n.quotations.Update(ctx, quotation.ID, entities.QuotationModify{
			Status:        pointer.To(entities.QuotationNegotiating),
			CurrentAmount: &proposed,
		})
		if err != nil {
			return fmt.Errorf("update quotation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	n.events.QuotationStatusChanged(ctx, *updated)
	return created, nil
}

// AcceptOffer resolves the negotiation by accepting its quotation at
// the latest proposed amount. Only the counterparty of the latest
// offer may accept, and only the latest offer is acceptable. All
// guards run inside the accepting transaction: a counter-offer
// committed after the caller's read invalidates the accept instead of
// being silently overridden.
func (n *Negotiation) AcceptOffer(ctx context.Context, negotiationID int64, actor entities.Principal) (*AcceptResult, error) {
	if !access.Can(actor.Role, access.ActionNegotiate) {
		return nil, ErrRoleNotAllowed
	}

	var result *AcceptResult
	err := n.txManager.Do(ctx, func(ctx context.Context) error {
		offer, err := n.repository.GetByID(ctx, negotiationID)
		if err != nil {
			return fmt.Errorf("get offer: %w", err)
		}

		quotation, err := n.quotations.GetByID(ctx, offer.QuotationID)
		if err != nil {
			return fmt.Errorf("get quotation: %w", err)
		}
		if !isParticipant(quotation, actor) {
			return ErrNotParticipant
		}

		// re-read immediately before the accept commits
		latest, err := n.repository.GetLatestByQuotationID(ctx, offer.QuotationID)
		if err != nil {
			return fmt.Errorf("get latest offer: %w", err)
		}
		if latest.ID != offer.ID {
			return ErrNotLatestOffer
		}
		if latest.InitiatedBy == actor.Role {
			return ErrSelfAcceptance
		}

		// the acceptor's own transaction joins this one
		accepted, order, err := n.acceptor.AcceptNegotiated(ctx, offer.QuotationID, latest.ProposedAmount, actor)
		if err != nil {
			return err
		}

		result = &AcceptResult{
			Quotation:   *accepted,
			Order:       *order,
			FinalAmount: latest.ProposedAmount,
			Savings:     accepted.TotalAmount.Sub(latest.ProposedAmount).Abs(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// History returns the quotation's offers in chronological order.
// Visibility is limited to the two parties and elevated roles.
func (n *Negotiation) History(ctx context.Context, quotationID int64, actor entities.Principal) ([]entities.Negotiation, error) {
	quotation, err := n.quotations.GetByID(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	if !isParticipant(quotation, actor) && !access.Can(actor.Role, access.ActionViewAnyQuotation) {
		return nil, ErrNotParticipant
	}

	offers, err := n.repository.ListByQuotationID(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}
