//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_quotations_get_test
package request_quotations_get

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
	ListByRequest(ctx context.Context, requestID int64, actor entities.Principal) ([]entities.Quotation, error)
}
