//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quotation_test
package quotation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"freightmarket/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, quotation entities.Quotation) (*entities.Quotation, error)
	GetByID(ctx context.Context, id int64) (*entities.Quotation, error)
	ListByRequestID(ctx context.Context, requestID int64) ([]entities.Quotation, error)
	Update(ctx context.Context, id int64, modify entities.QuotationModify) (*entities.Quotation, error)

	CountAcceptedByRequestID(ctx context.Context, requestID int64) (int64, error)
	// AcceptGuarded flips the quotation to accepted only while it is
	// still open and no sibling has been accepted. No row matched
	// means a concurrent actor won.
	AcceptGuarded(ctx context.Context, id int64, requestID int64, finalAmount decimal.Decimal) (*entities.Quotation, error)
	RejectOpenSiblings(ctx context.Context, requestID int64, exceptID int64) ([]entities.Quotation, error)
	ExpireDue(ctx context.Context, now time.Time) ([]entities.Quotation, error)
}

type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.ShipmentRequest, error)
}

type OrderCreator interface {
	CreateFromQuotation(ctx context.Context, quotation entities.Quotation, actor entities.Principal) (*entities.Order, error)
}

type EventPublisher interface {
	QuotationStatusChanged(ctx context.Context, quotation entities.Quotation)
	OrderCreated(ctx context.Context, order entities.Order)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
