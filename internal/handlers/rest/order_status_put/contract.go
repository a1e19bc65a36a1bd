//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_put_test
package order_status_put

import (
	"context"

	"freightmarket/internal/entities"
	"freightmarket/internal/service/order"
	"freightmarket/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateStatus(ctx context.Context, orderID int64, newStatus entities.OrderStatus, actor entities.Principal, statusCtx order.StatusContext) (*entities.Order, *entities.OrderStatusHistory, error)
}
