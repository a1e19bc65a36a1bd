//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=negotiation_test
package negotiation

import (
	"context"

	"github.com/shopspring/decimal"

	"freightmarket/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, negotiation entities.Negotiation) (*entities.Negotiation, error)
	GetByID(ctx context.Context, id int64) (*entities.Negotiation, error)
	GetLatestByQuotationID(ctx context.Context, quotationID int64) (*entities.Negotiation, error)
	ListByQuotationID(ctx context.Context, quotationID int64) ([]entities.Negotiation, error)
}

type QuotationRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Quotation, error)
	Update(ctx context.Context, id int64, modify entities.QuotationModify) (*entities.Quotation, error)
}

type QuotationAcceptor interface {
	AcceptNegotiated(ctx context.Context, quotationID int64, finalAmount decimal.Decimal, actor entities.Principal) (*entities.Quotation, *entities.Order, error)
}

type EventPublisher interface {
	QuotationStatusChanged(ctx context.Context, quotation entities.Quotation)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
