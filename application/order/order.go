package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/muhammadheryan/e-commerce-orders/cmd/config"
	"github.com/muhammadheryan/e-commerce-orders/constant"
	"github.com/muhammadheryan/e-commerce-orders/model"
	orderrepo "github.com/muhammadheryan/e-commerce-orders/repository/order"
	redisrepo "github.com/muhammadheryan/e-commerce-orders/repository/redis"
	userrepo "github.com/muhammadheryan/e-commerce-orders/repository/user"
	"github.com/muhammadheryan/e-commerce-orders/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/e-commerce-orders/utils/errors"
	"github.com/muhammadheryan/e-commerce-orders/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	ListOrders(ctx context.Context) ([]model.OrderEntity, error)
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderEntity, error)
	GetOrder(ctx context.Context, id uint64) (*model.OrderEntity, error)
	UpdateOrder(ctx context.Context, id uint64, req *model.OrderRequest) (*model.OrderEntity, error)
	DeleteOrder(ctx context.Context, id uint64) error
}

type orderAppImpl struct {
	config    *config.Config
	orderRepo orderrepo.OrderRepository
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	publisher rabbitmq.EventPublisher
}

// NewOrderApp wires the order use cases. publisher may be nil, in which case no events are sent.
func NewOrderApp(config *config.Config, orderRepo orderrepo.OrderRepository, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, publisher rabbitmq.EventPublisher) OrderApp {
	return &orderAppImpl{
		config:    config,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		publisher: publisher,
	}
}

func (s *orderAppImpl) ListOrders(ctx context.Context) ([]model.OrderEntity, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		logger.Ctx(ctx).Error("[ListOrders] err orderRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return orders, nil
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderEntity, error) {
	if err := s.ensureUser(ctx, "CreateOrder", req.UserID); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.Create(ctx, &model.OrderEntity{
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		ReceiverAddress: req.ReceiverAddress,
		Description:     req.Description,
		UserID:          req.UserID,
	})
	if err != nil {
		logger.Ctx(ctx).Error("[CreateOrder] err orderRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, rabbitmq.NewOrderEvent(constant.OrderEventCreated, order.ID, 0))
	return order, nil
}

// GetOrder reads through the redis cache. Cache failures only cost a DB round trip.
func (s *orderAppImpl) GetOrder(ctx context.Context, id uint64) (*model.OrderEntity, error) {
	key := constant.OrderCacheKey(id)

	cached, err := s.redisRepo.Get(ctx, key)
	switch {
	case err == nil:
		var order model.OrderEntity
		if err := json.Unmarshal([]byte(cached), &order); err == nil {
			return &order, nil
		}
		logger.Ctx(ctx).Warn("[GetOrder] corrupt cache entry", zap.String("key", key))
	case !errors.Is(err, redisrepo.ErrNotFound):
		logger.Ctx(ctx).Warn("[GetOrder] err redisRepo.Get", zap.String("error", err.Error()))
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		logger.Ctx(ctx).Error("[GetOrder] err orderRepo.GetByID", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, cerr.SetCustomError(constant.ErrOrderNotFound)
	}

	if payload, err := json.Marshal(order); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, key, string(payload), s.config.Cache.OrderTTL); err != nil {
			logger.Ctx(ctx).Warn("[GetOrder] err redisRepo.SetWithTTL", zap.String("error", err.Error()))
		}
	}

	return order, nil
}

// UpdateOrder replaces every writable field of the order.
func (s *orderAppImpl) UpdateOrder(ctx context.Context, id uint64, req *model.OrderRequest) (*model.OrderEntity, error) {
	existing, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		logger.Ctx(ctx).Error("[UpdateOrder] err orderRepo.GetByID", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, cerr.SetCustomError(constant.ErrOrderNotFound)
	}

	if err := s.ensureUser(ctx, "UpdateOrder", req.UserID); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.Update(ctx, &model.OrderEntity{
		ID:              id,
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		ReceiverAddress: req.ReceiverAddress,
		Description:     req.Description,
		UserID:          req.UserID,
		CreatedAt:       existing.CreatedAt,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cerr.SetCustomError(constant.ErrOrderNotFound)
		}
		logger.Ctx(ctx).Error("[UpdateOrder] err orderRepo.Update", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	s.evict(ctx, id)
	s.publish(ctx, rabbitmq.NewOrderEvent(constant.OrderEventUpdated, id, 0))
	return updated, nil
}

func (s *orderAppImpl) DeleteOrder(ctx context.Context, id uint64) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cerr.SetCustomError(constant.ErrOrderNotFound)
		}
		logger.Ctx(ctx).Error("[DeleteOrder] err orderRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}

	s.evict(ctx, id)
	s.publish(ctx, rabbitmq.NewOrderEvent(constant.OrderEventDeleted, id, 0))
	return nil
}

func (s *orderAppImpl) ensureUser(ctx context.Context, op string, userID uint64) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		logger.Ctx(ctx).Error("["+op+"] err userRepo.Exists", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return cerr.SetCustomError(constant.ErrUserNotFound)
	}
	return nil
}

func (s *orderAppImpl) evict(ctx context.Context, id uint64) {
	if err := s.redisRepo.Delete(ctx, constant.OrderCacheKey(id)); err != nil {
		logger.Ctx(ctx).Warn("[OrderApp] err redisRepo.Delete", zap.String("error", err.Error()), zap.Uint64("order_id", id))
	}
}

func (s *orderAppImpl) publish(ctx context.Context, evt rabbitmq.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
		logger.Ctx(ctx).Error("[OrderApp] publish order event", zap.String("error", err.Error()), zap.String("type", string(evt.Type)))
	}
}
