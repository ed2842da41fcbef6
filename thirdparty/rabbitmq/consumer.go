package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/muhammadheryan/e-commerce-orders/constant"
	"github.com/muhammadheryan/e-commerce-orders/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// ErrDeliveriesClosed is returned by Run when the broker closes the delivery channel.
var ErrDeliveriesClosed = errors.New("rabbitmq: deliveries channel closed")

// bindingKeys subscribes the queue to every order and order detail event.
var bindingKeys = []string{"order.#", "order_detail.#"}

type EventHandler func(ctx context.Context, evt OrderEvent) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	queue   string
}

func NewConsumer(url, queue string) (*Consumer, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	c := &Consumer{conn: conn, channel: channel, queue: queue}
	if err := c.setup(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Consumer) setup() error {
	if err := declareExchange(c.channel); err != nil {
		return err
	}

	_, err := c.channel.QueueDeclare(
		c.queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	for _, key := range bindingKeys {
		if err := c.channel.QueueBind(c.queue, key, constant.OrderEventsExchange, false, nil); err != nil {
			return err
		}
	}
	return nil
}

// Run consumes until ctx is cancelled or the broker closes the channel.
func (c *Consumer) Run(ctx context.Context, handle EventHandler) error {
	if err := c.channel.Qos(10, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.ConsumeWithContext(
		ctx,
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrDeliveriesClosed
			}
			c.dispatch(ctx, msg, handle)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, msg amqp091.Delivery, handle EventHandler) {
	var evt OrderEvent
	if err := json.Unmarshal(msg.Body, &evt); err != nil {
		// a malformed message would never succeed, so drop it
		logger.Error("[Consumer] unmarshal order event", zap.String("error", err.Error()), zap.String("message_id", msg.MessageId))
		_ = msg.Ack(false)
		return
	}

	if err := handle(ctx, evt); err != nil {
		logger.Error("[Consumer] handle order event",
			zap.String("error", err.Error()),
			zap.String("event_id", evt.EventID),
			zap.String("type", string(evt.Type)),
		)
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
