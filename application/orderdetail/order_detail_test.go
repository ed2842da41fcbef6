package orderdetail_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	apporderdetail "github.com/muhammadheryan/e-commerce-orders/application/orderdetail"
	"github.com/muhammadheryan/e-commerce-orders/constant"
	ordermocks "github.com/muhammadheryan/e-commerce-orders/mocks/repository/order"
	orderdetailmocks "github.com/muhammadheryan/e-commerce-orders/mocks/repository/orderdetail"
	productmocks "github.com/muhammadheryan/e-commerce-orders/mocks/repository/product"
	txmocks "github.com/muhammadheryan/e-commerce-orders/mocks/repository/tx"
	rabbitmocks "github.com/muhammadheryan/e-commerce-orders/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/e-commerce-orders/model"
	"github.com/muhammadheryan/e-commerce-orders/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/e-commerce-orders/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo          *txmocks.TxRepository
	orderRepo       *ordermocks.OrderRepository
	productRepo     *productmocks.ProductRepository
	orderDetailRepo *orderdetailmocks.OrderDetailRepository
	publisher       *rabbitmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:          txmocks.NewTxRepository(t),
		orderRepo:       ordermocks.NewOrderRepository(t),
		productRepo:     productmocks.NewProductRepository(t),
		orderDetailRepo: orderdetailmocks.NewOrderDetailRepository(t),
		publisher:       rabbitmocks.NewEventPublisher(t),
	}
}

func (f fields) app() apporderdetail.OrderDetailApp {
	return apporderdetail.NewOrderDetailApp(f.txRepo, f.orderRepo, f.productRepo, f.orderDetailRepo, f.publisher)
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func detailEvent(eventType constant.OrderEventType, orderID, detailID uint64) interface{} {
	return mock.MatchedBy(func(evt rabbitmq.OrderEvent) bool {
		return evt.Type == eventType && evt.OrderID == orderID && evt.OrderDetailID == detailID
	})
}

func uint64Ptr(v uint64) *uint64 { return &v }

func int64Ptr(v int64) *int64 { return &v }

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleRow(orderID, id uint64) *model.OrderDetailRow {
	return &model.OrderDetailRow{
		OrderDetailEntity: model.OrderDetailEntity{
			ID:        id,
			OrderID:   orderID,
			ProductID: 3,
			Amount:    2,
			Price:     decimal.RequireFromString("10.00"),
			Discount:  decimal.RequireFromString("0.00"),
		},
		ReceiverName:       "A",
		UserID:             1,
		CreatedAt:          time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		ProductName:        "Widget",
		ProductDescription: "A widget",
		ProductPrice:       decimal.RequireFromString("12.50"),
	}
}

func createRequest() *model.CreateOrderDetailRequest {
	return &model.CreateOrderDetailRequest{
		ProductID: 3,
		Amount:    int64Ptr(2),
		Price:     decimalPtr("10.00"),
		Discount:  decimalPtr("0.00"),
	}
}

func TestOrderDetailApp_ListOrderDetails(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantLen  int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: details expanded",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("ListByOrder", mock.Anything, uint64(5)).
					Return([]model.OrderDetailRow{*sampleRow(5, 1), *sampleRow(5, 2)}, nil).Once()
			},
			wantLen: 2,
		},
		{
			name: "success: order without details",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("ListByOrder", mock.Anything, uint64(5)).Return(nil, nil).Once()
			},
			wantLen: 0,
		},
		{
			name: "error: repository failure",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("ListByOrder", mock.Anything, uint64(5)).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().ListOrderDetails(context.Background(), 5)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListOrderDetails() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			require.NotNil(t, got)
			assert.Len(t, got, tt.wantLen)
			for _, d := range got {
				assert.Equal(t, uint64(5), d.Order.ID)
				assert.Equal(t, "Widget", d.Product.Name)
			}
		})
	}
}

func TestOrderDetailApp_CreateOrderDetail(t *testing.T) {
	tx := &sqlx.Tx{}

	tests := []struct {
		name     string
		req      func() *model.CreateOrderDetailRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: detail created and committed",
			req:  createRequest,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(&model.OrderEntity{ID: 5}, nil).Once()
				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.ProductEntity{ID: 3}, nil).Once()
				f.orderDetailRepo.On("CreateTx", mock.Anything, tx, mock.MatchedBy(func(d *model.OrderDetailEntity) bool {
					return d.OrderID == 5 && d.ProductID == 3 && d.Amount == 2 &&
						d.Price.Equal(decimal.RequireFromString("10")) && d.Discount.IsZero()
				})).Return(uint64(11), nil).Once()
				f.orderDetailRepo.On("GetTx", mock.Anything, tx, uint64(5), uint64(11)).Return(sampleRow(5, 11), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishOrderEvent", mock.Anything, detailEvent(constant.OrderDetailEventCreated, 5, 11)).Return(nil).Once()
			},
		},
		{
			name: "success: matching body order id is accepted",
			req: func() *model.CreateOrderDetailRequest {
				r := createRequest()
				r.OrderID = uint64Ptr(5)
				return r
			},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(&model.OrderEntity{ID: 5}, nil).Once()
				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.ProductEntity{ID: 3}, nil).Once()
				f.orderDetailRepo.On("CreateTx", mock.Anything, tx, mock.Anything).Return(uint64(11), nil).Once()
				f.orderDetailRepo.On("GetTx", mock.Anything, tx, uint64(5), uint64(11)).Return(sampleRow(5, 11), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "error: body order id differs from path",
			req: func() *model.CreateOrderDetailRequest {
				r := createRequest()
				r.OrderID = uint64Ptr(6)
				return r
			},
			mockCall: func(f fields) {},
			wantErr:  true,
			errCode:  constant.ErrOrderMismatch,
		},
		{
			name: "error: begin tx fails",
			req:  createRequest,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("too many connections")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: order not found rolls back",
			req:  createRequest,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOrderNotFound,
		},
		{
			name: "error: product not found rolls back",
			req:  createRequest,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(&model.OrderEntity{ID: 5}, nil).Once()
				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrProductNotFound,
		},
		{
			name: "error: insert fails rolls back",
			req:  createRequest,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(&model.OrderEntity{ID: 5}, nil).Once()
				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.ProductEntity{ID: 3}, nil).Once()
				f.orderDetailRepo.On("CreateTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("fk violation")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: commit fails rolls back",
			req:  createRequest,
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetByIDTx", mock.Anything, tx, uint64(5)).Return(&model.OrderEntity{ID: 5}, nil).Once()
				f.productRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(&model.ProductEntity{ID: 3}, nil).Once()
				f.orderDetailRepo.On("CreateTx", mock.Anything, tx, mock.Anything).Return(uint64(11), nil).Once()
				f.orderDetailRepo.On("GetTx", mock.Anything, tx, uint64(5), uint64(11)).Return(sampleRow(5, 11), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(errors.New("connection reset")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().CreateOrderDetail(context.Background(), 5, tt.req())
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrderDetail() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			assert.Equal(t, uint64(11), got.ID)
			assert.Equal(t, uint64(5), got.Order.ID)
			assert.Equal(t, uint64(3), got.Product.ID)
			assert.True(t, got.Product.Price.Equal(decimal.RequireFromString("12.50")))
		})
	}
}

func TestOrderDetailApp_GetOrderDetail(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: detail belongs to order",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("Get", mock.Anything, uint64(5), uint64(11)).Return(sampleRow(5, 11), nil).Once()
			},
		},
		{
			name: "error: detail under another order",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("Get", mock.Anything, uint64(5), uint64(11)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOrderDetailNotFound,
		},
		{
			name: "error: repository failure",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("Get", mock.Anything, uint64(5), uint64(11)).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().GetOrderDetail(context.Background(), 5, 11)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetOrderDetail() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			assert.Equal(t, uint64(11), got.ID)
			assert.Equal(t, "A", got.Order.ReceiverName)
		})
	}
}

func TestOrderDetailApp_UpdateOrderDetail(t *testing.T) {
	req := &model.UpdateOrderDetailRequest{
		Amount:   int64Ptr(4),
		Price:    decimalPtr("9.99"),
		Discount: decimalPtr("1.00"),
	}

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: writable fields replaced",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("Update", mock.Anything, mock.MatchedBy(func(d *model.OrderDetailEntity) bool {
					return d.ID == 11 && d.OrderID == 5 && d.Amount == 4 &&
						d.Price.Equal(decimal.RequireFromString("9.99")) && d.Discount.Equal(decimal.NewFromInt(1))
				})).Return(nil).Once()
				row := sampleRow(5, 11)
				row.Amount = 4
				f.orderDetailRepo.On("Get", mock.Anything, uint64(5), uint64(11)).Return(row, nil).Once()
				f.publisher.On("PublishOrderEvent", mock.Anything, detailEvent(constant.OrderDetailEventUpdated, 5, 11)).Return(nil).Once()
			},
		},
		{
			name: "error: detail not found",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("Update", mock.Anything, mock.Anything).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrOrderDetailNotFound,
		},
		{
			name: "error: detail deleted before read back",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
				f.orderDetailRepo.On("Get", mock.Anything, uint64(5), uint64(11)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrOrderDetailNotFound,
		},
		{
			name: "error: update fails",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("Update", mock.Anything, mock.Anything).Return(errors.New("deadlock")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().UpdateOrderDetail(context.Background(), 5, 11, req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateOrderDetail() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			assert.Equal(t, int64(4), got.Amount)
		})
	}
}

func TestOrderDetailApp_DeleteOrderDetail(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: detail removed",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("Delete", mock.Anything, uint64(5), uint64(11)).Return(nil).Once()
				f.publisher.On("PublishOrderEvent", mock.Anything, detailEvent(constant.OrderDetailEventDeleted, 5, 11)).Return(nil).Once()
			},
		},
		{
			name: "error: detail not found",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("Delete", mock.Anything, uint64(5), uint64(11)).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrOrderDetailNotFound,
		},
		{
			name: "error: delete fails",
			mockCall: func(f fields) {
				f.orderDetailRepo.On("Delete", mock.Anything, uint64(5), uint64(11)).Return(errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			err := f.app().DeleteOrderDetail(context.Background(), 5, 11)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteOrderDetail() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
			}
		})
	}
}

func TestOrderDetailApp_NilPublisher(t *testing.T) {
	f := newFields(t)
	f.orderDetailRepo.On("Delete", mock.Anything, uint64(5), uint64(11)).Return(nil).Once()

	app := apporderdetail.NewOrderDetailApp(f.txRepo, f.orderRepo, f.productRepo, f.orderDetailRepo, nil)
	require.NoError(t, app.DeleteOrderDetail(context.Background(), 5, 11))
}
