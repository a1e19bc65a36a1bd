package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"

	"freightmarket/internal/entities"
	"freightmarket/pkg/logger"
)

const (
	eventQuotationStatusChanged = "quotation.status.changed"
	eventOrderCreated           = "order.created"
	eventOrderStatusChanged     = "order.status.changed"
)

// Gateway publishes domain state changes after commit. Delivery is
// best effort: a broker failure is logged and counted, never bubbled
// up into the request that caused the change.
type Gateway struct {
	log            gatewayLogger
	producer       producer
	quotationTopic string
	orderTopic     string
}

func New(log gatewayLogger, producer producer, quotationTopic, orderTopic string) *Gateway {
	return &Gateway{
		log:            log,
		producer:       producer,
		quotationTopic: quotationTopic,
		orderTopic:     orderTopic,
	}
}

func (g *Gateway) QuotationStatusChanged(_ context.Context, quotation entities.Quotation) {
	payload := fromQuotation(eventQuotationStatusChanged, quotation)
	g.send(g.quotationTopic, eventQuotationStatusChanged, strconv.FormatInt(quotation.ID, 10), payload)
}

func (g *Gateway) OrderCreated(_ context.Context, order entities.Order) {
	payload := fromOrder(eventOrderCreated, order)
	g.send(g.orderTopic, eventOrderCreated, strconv.FormatInt(order.ID, 10), payload)
}

func (g *Gateway) OrderStatusChanged(_ context.Context, order entities.Order) {
	payload := fromOrder(eventOrderStatusChanged, order)
	g.send(g.orderTopic, eventOrderStatusChanged, strconv.FormatInt(order.ID, 10), payload)
}

func (g *Gateway) send(topic, event, key string, payload interface{}) {
	value, err := json.Marshal(payload)
	if err != nil {
		EventsFailedTotal.WithLabelValues(topic, event).Inc()
		g.log.Error("failed to marshal event",
			logger.NewField("event", event),
			logger.NewField("error", err),
		)
		return
	}

	_, _, err = g.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		EventsFailedTotal.WithLabelValues(topic, event).Inc()
		g.log.Error("failed to publish event",
			logger.NewField("event", event),
			logger.NewField("topic", topic),
			logger.NewField("error", err),
		)
		return
	}

	EventsPublishedTotal.WithLabelValues(topic, event).Inc()
}
