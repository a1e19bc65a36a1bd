//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quotation_get_test
package quotation_get

import (
	"context"

	"freightmarket/internal/entities"
	"freightmarket/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Get(ctx context.Context, quotationID int64, actor entities.Principal) (*entities.Quotation, error)
}

type NegotiationService interface {
	History(ctx context.Context, quotationID int64, actor entities.Principal) ([]entities.Negotiation, error)
}
