//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quotation_post_test
package quotation_post

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
	Submit(ctx context.Context, requestID int64, actor entities.Principal, items []entities.QuotationItem, totalAmount decimal.Decimal, validityHours int) (*entities.Quotation, error)
}
