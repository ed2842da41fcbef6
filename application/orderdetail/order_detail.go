package orderdetail

import (
	"context"
	"database/sql"
	"errors"

	"github.com/muhammadheryan/e-commerce-orders/constant"
	"github.com/muhammadheryan/e-commerce-orders/model"
	orderrepo "github.com/muhammadheryan/e-commerce-orders/repository/order"
	orderdetailrepo "github.com/muhammadheryan/e-commerce-orders/repository/orderdetail"
	productrepo "github.com/muhammadheryan/e-commerce-orders/repository/product"
	txrepo "github.com/muhammadheryan/e-commerce-orders/repository/tx"
	"github.com/muhammadheryan/e-commerce-orders/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/e-commerce-orders/utils/errors"
	"github.com/muhammadheryan/e-commerce-orders/utils/logger"
	"go.uber.org/zap"
)

// OrderDetailApp manages the line items of an order. The order id always
// comes from the caller's path and every lookup is scoped by it.
type OrderDetailApp interface {
	ListOrderDetails(ctx context.Context, orderID uint64) ([]model.OrderDetailResponse, error)
	CreateOrderDetail(ctx context.Context, orderID uint64, req *model.CreateOrderDetailRequest) (*model.OrderDetailResponse, error)
	GetOrderDetail(ctx context.Context, orderID, id uint64) (*model.OrderDetailResponse, error)
	UpdateOrderDetail(ctx context.Context, orderID, id uint64, req *model.UpdateOrderDetailRequest) (*model.OrderDetailResponse, error)
	DeleteOrderDetail(ctx context.Context, orderID, id uint64) error
}

type orderDetailAppImpl struct {
	txRepo          txrepo.TxRepository
	orderRepo       orderrepo.OrderRepository
	productRepo     productrepo.ProductRepository
	orderDetailRepo orderdetailrepo.OrderDetailRepository
	publisher       rabbitmq.EventPublisher
}

func NewOrderDetailApp(txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, productRepo productrepo.ProductRepository, orderDetailRepo orderdetailrepo.OrderDetailRepository, publisher rabbitmq.EventPublisher) OrderDetailApp {
	return &orderDetailAppImpl{
		txRepo:          txRepo,
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		orderDetailRepo: orderDetailRepo,
		publisher:       publisher,
	}
}

// ListOrderDetails returns an empty list for an order without details.
func (s *orderDetailAppImpl) ListOrderDetails(ctx context.Context, orderID uint64) ([]model.OrderDetailResponse, error) {
	rows, err := s.orderDetailRepo.ListByOrder(ctx, orderID)
	if err != nil {
		logger.Ctx(ctx).Error("[ListOrderDetails] err orderDetailRepo.ListByOrder", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	res := make([]model.OrderDetailResponse, 0, len(rows))
	for i := range rows {
		res = append(res, rows[i].ToResponse())
	}
	return res, nil
}

func (s *orderDetailAppImpl) CreateOrderDetail(ctx context.Context, orderID uint64, req *model.CreateOrderDetailRequest) (*model.OrderDetailResponse, error) {
	if req.OrderID != nil && *req.OrderID != orderID {
		return nil, cerr.SetCustomError(constant.ErrOrderMismatch)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Ctx(ctx).Error("[CreateOrderDetail] begin tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		logger.Ctx(ctx).Error("[CreateOrderDetail] get order", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, cerr.SetCustomError(constant.ErrOrderNotFound)
	}

	product, err := s.productRepo.GetByIDTx(ctx, tx, req.ProductID)
	if err != nil {
		logger.Ctx(ctx).Error("[CreateOrderDetail] get product", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, cerr.SetCustomError(constant.ErrProductNotFound)
	}

	id, err := s.orderDetailRepo.CreateTx(ctx, tx, &model.OrderDetailEntity{
		OrderID:   orderID,
		ProductID: product.ID,
		Amount:    *req.Amount,
		Price:     *req.Price,
		Discount:  *req.Discount,
	})
	if err != nil {
		logger.Ctx(ctx).Error("[CreateOrderDetail] insert detail", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	row, err := s.orderDetailRepo.GetTx(ctx, tx, orderID, id)
	if err != nil || row == nil {
		logger.Ctx(ctx).Error("[CreateOrderDetail] reload detail", zap.Error(err), zap.Uint64("order_detail_id", id))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Ctx(ctx).Error("[CreateOrderDetail] commit tx", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publish(ctx, rabbitmq.NewOrderEvent(constant.OrderDetailEventCreated, orderID, id))

	res := row.ToResponse()
	return &res, nil
}

func (s *orderDetailAppImpl) GetOrderDetail(ctx context.Context, orderID, id uint64) (*model.OrderDetailResponse, error) {
	row, err := s.orderDetailRepo.Get(ctx, orderID, id)
	if err != nil {
		logger.Ctx(ctx).Error("[GetOrderDetail] err orderDetailRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return nil, cerr.SetCustomError(constant.ErrOrderDetailNotFound)
	}

	res := row.ToResponse()
	return &res, nil
}

// UpdateOrderDetail replaces amount, price and discount. The order and
// product links are fixed once the detail exists.
func (s *orderDetailAppImpl) UpdateOrderDetail(ctx context.Context, orderID, id uint64, req *model.UpdateOrderDetailRequest) (*model.OrderDetailResponse, error) {
	err := s.orderDetailRepo.Update(ctx, &model.OrderDetailEntity{
		ID:       id,
		OrderID:  orderID,
		Amount:   *req.Amount,
		Price:    *req.Price,
		Discount: *req.Discount,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cerr.SetCustomError(constant.ErrOrderDetailNotFound)
		}
		logger.Ctx(ctx).Error("[UpdateOrderDetail] err orderDetailRepo.Update", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	row, err := s.orderDetailRepo.Get(ctx, orderID, id)
	if err != nil {
		logger.Ctx(ctx).Error("[UpdateOrderDetail] err orderDetailRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		// deleted between the update and the read back
		return nil, cerr.SetCustomError(constant.ErrOrderDetailNotFound)
	}

	s.publish(ctx, rabbitmq.NewOrderEvent(constant.OrderDetailEventUpdated, orderID, id))

	res := row.ToResponse()
	return &res, nil
}

func (s *orderDetailAppImpl) DeleteOrderDetail(ctx context.Context, orderID, id uint64) error {
	if err := s.orderDetailRepo.Delete(ctx, orderID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cerr.SetCustomError(constant.ErrOrderDetailNotFound)
		}
		logger.Ctx(ctx).Error("[DeleteOrderDetail] err orderDetailRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, rabbitmq.NewOrderEvent(constant.OrderDetailEventDeleted, orderID, id))
	return nil
}

func (s *orderDetailAppImpl) publish(ctx context.Context, evt rabbitmq.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
		logger.Ctx(ctx).Error("[OrderDetailApp] publish order event", zap.String("error", err.Error()), zap.String("type", string(evt.Type)))
	}
}
