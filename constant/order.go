package constant

import "fmt"

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventUpdated       OrderEventType = "order.updated"
	OrderEventDeleted       OrderEventType = "order.deleted"
	OrderDetailEventCreated OrderEventType = "order_detail.created"
	OrderDetailEventUpdated OrderEventType = "order_detail.updated"
	OrderDetailEventDeleted OrderEventType = "order_detail.deleted"
)

const (
	OrderEventsExchange = "order_events"
	OrderEventsQueue    = "order_events_queue"

	orderCacheKeyPrefix = "order:"
)

// OrderCacheKey is the redis key holding the serialized order.
func OrderCacheKey(orderID uint64) string {
	return fmt.Sprintf("%s%d", orderCacheKeyPrefix, orderID)
}
