package order_number

import "time"

const prefix = "ORD"

type OrderNumberFactory struct{}

func New() *OrderNumberFactory {
	return &OrderNumberFactory{}
}

// Next derives a human readable order number from the creation time.
func (f *OrderNumberFactory) Next(now time.Time) string {
	return prefix + now.UTC().Format("20060102150405")
}
