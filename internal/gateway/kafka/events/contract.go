package events

import (
	"github.com/IBM/sarama"

	"freightmarket/pkg/logger"
)

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

type gatewayLogger interface {
	Error(msg string, fields ...logger.Field)
}
