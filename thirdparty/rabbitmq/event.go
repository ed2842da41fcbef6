package rabbitmq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/e-commerce-orders/constant"
)

// OrderEvent is published after every successful write to an order or one of its details.
type OrderEvent struct {
	EventID       string                  `json:"event_id"`
	Type          constant.OrderEventType `json:"type"`
	OrderID       uint64                  `json:"order_id"`
	OrderDetailID uint64                  `json:"order_detail_id,omitempty"`
	OccurredAt    time.Time               `json:"occurred_at"`
}

func NewOrderEvent(eventType constant.OrderEventType, orderID, orderDetailID uint64) OrderEvent {
	return OrderEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		OrderID:       orderID,
		OrderDetailID: orderDetailID,
		OccurredAt:    time.Now().UTC(),
	}
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, evt OrderEvent) error
}
