//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"freightmarket/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, id int64, modify entities.OrderModify) (*entities.Order, error)
	// UpdateGuarded applies the modify only while the order still has
	// the given status. No row matched means a concurrent actor won.
	UpdateGuarded(ctx context.Context, id int64, previous entities.OrderStatus, modify entities.OrderModify) (*entities.Order, error)

	AppendHistory(ctx context.Context, entry entities.OrderStatusHistory) (*entities.OrderStatusHistory, error)
	ListHistory(ctx context.Context, orderID int64) ([]entities.OrderStatusHistory, error)
}

type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.ShipmentRequest, error)
}

type TruckRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Truck, error)
	SetAvailability(ctx context.Context, id int64, availability entities.TruckAvailability) error
	GetDriverByID(ctx context.Context, id int64) (*entities.Driver, error)
}

type NumberFactory interface {
	Next(now time.Time) string
}

type OTPFactory interface {
	Generate() (string, error)
}

type EventPublisher interface {
	OrderStatusChanged(ctx context.Context, order entities.Order)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
