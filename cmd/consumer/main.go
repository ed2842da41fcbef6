package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/e-commerce-orders/cmd/config"
	redisclient "github.com/muhammadheryan/e-commerce-orders/cmd/redis"
	"github.com/muhammadheryan/e-commerce-orders/constant"
	redisRepo "github.com/muhammadheryan/e-commerce-orders/repository/redis"
	"github.com/muhammadheryan/e-commerce-orders/thirdparty/rabbitmq"
	"github.com/muhammadheryan/e-commerce-orders/utils/logger"
	"go.uber.org/zap"
)

// Consumes order events and evicts the cached order so every API replica
// sees writes made by the others.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if !cfg.RabbitMQ.Enabled {
		logger.Info("RabbitMQ disabled, order event consumer not started")
		return
	}

	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	consumer, err := rabbitmq.NewConsumer(cfg.GetAMQPURL(), constant.OrderEventsQueue)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Order event consumer running", zap.String("queue", constant.OrderEventsQueue))
	if err := consumer.Run(ctx, newCacheEvictor(redisRepo.NewRepository())); err != nil {
		logger.Error("consumer stopped", zap.Error(err))
		return
	}
	logger.Info("Order event consumer stopped")
}

func newCacheEvictor(cache redisRepo.Repository) rabbitmq.EventHandler {
	return func(ctx context.Context, evt rabbitmq.OrderEvent) error {
		logger.Info("order event",
			zap.String("event_id", evt.EventID),
			zap.String("type", string(evt.Type)),
			zap.Uint64("order_id", evt.OrderID),
			zap.Uint64("order_detail_id", evt.OrderDetailID),
		)
		return cache.Delete(ctx, constant.OrderCacheKey(evt.OrderID))
	}
}
