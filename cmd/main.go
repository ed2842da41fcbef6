package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	orderapp "github.com/muhammadheryan/e-commerce-orders/application/order"
	orderdetailapp "github.com/muhammadheryan/e-commerce-orders/application/orderdetail"
	"github.com/muhammadheryan/e-commerce-orders/cmd/config"
	redisclient "github.com/muhammadheryan/e-commerce-orders/cmd/redis"
	_ "github.com/muhammadheryan/e-commerce-orders/docs"
	orderRepo "github.com/muhammadheryan/e-commerce-orders/repository/order"
	orderDetailRepo "github.com/muhammadheryan/e-commerce-orders/repository/orderdetail"
	productRepo "github.com/muhammadheryan/e-commerce-orders/repository/product"
	redisRepo "github.com/muhammadheryan/e-commerce-orders/repository/redis"
	txRepo "github.com/muhammadheryan/e-commerce-orders/repository/tx"
	userRepo "github.com/muhammadheryan/e-commerce-orders/repository/user"
	"github.com/muhammadheryan/e-commerce-orders/thirdparty/rabbitmq"
	"github.com/muhammadheryan/e-commerce-orders/transport"
	"github.com/muhammadheryan/e-commerce-orders/utils/logger"
	validatorx "github.com/muhammadheryan/e-commerce-orders/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title E-COMMERCE ORDERS API
// @version 1.0
// @description Orders and order details of the e-commerce platform
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Events are optional; the interface stays nil when RabbitMQ is off
	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.GetAMQPURL())
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	OrderRepo := orderRepo.NewOrderRepository(db)
	OrderDetailRepo := orderDetailRepo.NewOrderDetailRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	OrderApp := orderapp.NewOrderApp(cfg, OrderRepo, UserRepo, RedisRepo, publisher)
	OrderDetailApp := orderdetailapp.NewOrderDetailApp(TxRepo, OrderRepo, ProductRepo, OrderDetailRepo, publisher)

	httpTransport := transport.NewTransport(OrderApp, OrderDetailApp, db)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("failed server", zap.Error(err))
	}
}
