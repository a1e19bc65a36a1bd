//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_verify_post_test
package order_verify_post

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
	VerifyDeliveryCode(ctx context.Context, orderID int64, code string, actor entities.Principal) (*entities.Order, error)
}
