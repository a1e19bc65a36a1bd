//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=enquiry_post_test
package enquiry_post

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
	MatchAndPrice(ctx context.Context, req entities.ShipmentRequest, actor entities.Principal) (*entities.ShipmentRequest, []entities.PriceRange, error)
}
