package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"freightmarket/internal/entities"
	"freightmarket/internal/service/access"
)

type Order struct {
	repository Repository
	requests   RequestRepository
	trucks     TruckRepository
	numbers    NumberFactory
	otps       OTPFactory
	events     EventPublisher
	txManager  TxManager
}

func New(
	repository Repository,
	requests RequestRepository,
	trucks TruckRepository,
	numbers NumberFactory,
	otps OTPFactory,
	events EventPublisher,
	txManager TxManager,
) *Order {
	return &Order{
		repository: repository,
		requests:   requests,
		trucks:     trucks,
		numbers:    numbers,
		otps:       otps,
		events:     events,
		txManager:  txManager,
	}
}

// StatusContext carries the operational payload of a transition.
// Which fields are required depends on the target status.
type StatusContext struct {
	DriverID       *int64
	TruckID        *int64
	ActualWeightKg *decimal.Decimal
	Lat            *float64
	Lon            *float64
	Notes          string
}

// CreateFromQuotation materializes an order from an accepted
// quotation. It runs in the caller's transaction: acceptance and order
// creation commit or roll back together.
func (o *Order) CreateFromQuotation(ctx context.Context, quotation entities.Quotation, actor entities.Principal) (*entities.Order, error) {
	if quotation.Status != entities.QuotationAccepted {
		return nil, ErrQuotationNotAccepted
	}

	request, err := o.requests.GetByID(ctx, quotation.RequestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	otp, err := o.otps.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate delivery code: %w", err)
	}

	created, err := o.repository.Create(ctx, entities.Order{
		Number:              o.numbers.Next(time.Now().UTC()),
		QuotationID:         quotation.ID,
		CustomerID:          quotation.CustomerID,
		VendorID:            quotation.VendorID,
		PickupCity:          request.PickupCity,
		DropCity:            request.DropCity,
		ScheduledPickupAt:   request.PickupDate,
		ScheduledDeliveryAt: request.DropDate,
		TotalAmount:         quotation.CurrentAmount,
		EstimatedWeightKg:   request.WeightKg,
		DeliveryOTP:         otp,
		Status:              entities.OrderCreated,
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	_, err = o.repository.AppendHistory(ctx, entities.OrderStatusHistory{
		OrderID:   created.ID,
		NewStatus: entities.OrderCreated,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}

	return created, nil
}

// UpdateStatus moves the order along the status graph. The transition
// is checked against the graph for everyone, against the role table
// for non-elevated actors, and against the stored status at write time
// so concurrent updates conflict instead of overwriting each other.
func (o *Order) UpdateStatus(
	ctx context.Context,
	orderID int64,
	newStatus entities.OrderStatus,
	actor entities.Principal,
	statusCtx StatusContext,
) (*entities.Order, *entities.OrderStatusHistory, error) {
	var (
		updated *entities.Order
		entry   *entities.OrderStatusHistory
	)
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !isParty(current, actor) {
			return ErrNotParticipant
		}
		if !canTransition(current.Status, newStatus) {
			return ErrInvalidTransition
		}
		if !access.CanSetOrderStatus(actor.Role, newStatus) {
			return ErrInsufficientPermission
		}

		modify := entities.OrderModify{Status: &newStatus}
		if err := o.applySideEffects(ctx, current, newStatus, statusCtx, &modify); err != nil {
			return err
		}

		updated, err = o.repository.UpdateGuarded(ctx, current.ID, current.Status, modify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		entry, err = o.repository.AppendHistory(ctx, entities.OrderStatusHistory{
			OrderID:        current.ID,
			PreviousStatus: current.Status,
			NewStatus:      newStatus,
			ActorID:        actor.ID,
			ActorRole:      actor.Role,
			Lat:            statusCtx.Lat,
			Lon:            statusCtx.Lon,
			Notes:          statusCtx.Notes,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	o.events.OrderStatusChanged(ctx, *updated)
	return updated, entry, nil
}

func (o *Order) applySideEffects(
	ctx context.Context,
	current *entities.Order,
	newStatus entities.OrderStatus,
	statusCtx StatusContext,
	modify *entities.OrderModify,
) error {
	now := time.Now().UTC()

	switch newStatus {
	case entities.OrderDriverAssigned:
		if statusCtx.DriverID == nil {
			return ErrMissingContext
		}
		driver, err := o.trucks.GetDriverByID(ctx, *statusCtx.DriverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		if driver.VendorID != current.VendorID {
			return ErrDriverNotFound
		}
		modify.DriverID = statusCtx.DriverID

		if statusCtx.TruckID != nil {
			truck, err := o.trucks.GetByID(ctx, *statusCtx.TruckID)
			if err != nil {
				return fmt.Errorf("get truck: %w", err)
			}
			if truck.VendorID != current.VendorID {
				return ErrTruckNotFound
			}
			modify.TruckID = statusCtx.TruckID
			if err := o.trucks.SetAvailability(ctx, truck.ID, entities.TruckBusy); err != nil {
				return fmt.Errorf("claim truck: %w", err)
			}
		}

	case entities.OrderPickedUp:
		modify.ActualPickupAt = &now
		if statusCtx.ActualWeightKg != nil {
			modify.ActualWeightKg = statusCtx.ActualWeightKg
		}

	case entities.OrderDelivered:
		modify.ActualDeliveryAt = &now

	case entities.OrderCompleted:
		if !current.OTPVerified {
			return ErrOtpNotVerified
		}
		if current.TruckID != nil {
			if err := o.trucks.SetAvailability(ctx, *current.TruckID, entities.TruckAvailable); err != nil {
				return fmt.Errorf("release truck: %w", err)
			}
		}

	case entities.OrderCancelled:
		if current.TruckID != nil {
			if err := o.trucks.SetAvailability(ctx, *current.TruckID, entities.TruckAvailable); err != nil {
				return fmt.Errorf("release truck: %w", err)
			}
		}
	}

	return nil
}

// VerifyDeliveryCode checks the delivery code handed over at the drop
// point. Verification is idempotent and a precondition of completion.
func (o *Order) VerifyDeliveryCode(ctx context.Context, orderID int64, code string, actor entities.Principal) (*entities.Order, error) {
	if !access.Can(actor.Role, access.ActionVerifyDelivery) {
		return nil, ErrRoleNotAllowed
	}

	var verified *entities.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !isParty(current, actor) {
			return ErrNotParticipant
		}
		if current.OTPVerified {
			verified = current
			return nil
		}
		if !verificationOpen(current.Status) {
			return ErrVerificationNotOpen
		}
		if current.DeliveryOTP != code {
			return ErrInvalidOtp
		}

		ok := true
		verified, err = o.repository.Update(ctx, current.ID, entities.OrderModify{OTPVerified: &ok})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return verified, nil
}

// Get returns the order if the actor may see it.
func (o *Order) Get(ctx context.Context, orderID int64, actor entities.Principal) (*entities.Order, error) {
	current, err := o.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !isParty(current, actor) {
		return nil, ErrOrderNotFound
	}
	return current, nil
}

// History returns the order's append-only audit trail.
func (o *Order) History(ctx context.Context, orderID int64, actor entities.Principal) ([]entities.OrderStatusHistory, error) {
	current, err := o.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if !isParty(current, actor) {
		return nil, ErrOrderNotFound
	}

	entries, err := o.repository.ListHistory(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

func isParty(order *entities.Order, actor entities.Principal) bool {
	switch actor.Role {
	case entities.RoleCustomer:
		return actor.ID == order.CustomerID
	case entities.RoleVendor:
		return actor.ID == order.VendorID
	}
	return access.Can(actor.Role, access.ActionViewAnyOrder)
}
