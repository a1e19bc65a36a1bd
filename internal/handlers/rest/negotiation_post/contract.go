//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=negotiation_post_test
package negotiation_post

import (
	"context"

	"github.com/shopspring/decimal"

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
	CreateOffer(ctx context.Context, quotationID int64, actor entities.Principal, proposed decimal.Decimal, breakdown *entities.Breakdown, message string) (*entities.Negotiation, error)
}
