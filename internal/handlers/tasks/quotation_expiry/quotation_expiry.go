package quotation_expiry

import (
	"context"
	"time"

	"freightmarket/pkg/logger"
)

type Service interface {
	ExpireDue(ctx context.Context) (int64, error)
}

// QuotationExpiry sweeps quotations whose validity window has passed.
type QuotationExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewQuotationExpiry(log logger.Logger, service Service, interval time.Duration) *QuotationExpiry {
	return &QuotationExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (q *QuotationExpiry) TTL() time.Duration {
	return q.interval
}

func (q *QuotationExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, q.interval)
	defer cancel()

	expired, err := q.service.ExpireDue(ctxWithTimeout)

	if expired > 0 {
		q.log.With(
			logger.NewField("expired_quotations", expired),
		).Info("quotation expiry sweep")
	}

	return err
}

func (q *QuotationExpiry) Info() string {
	return "quotation expiry"
}
