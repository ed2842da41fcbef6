package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/muhammadheryan/e-commerce-orders/constant"
	orderappmocks "github.com/muhammadheryan/e-commerce-orders/mocks/application/order"
	orderdetailappmocks "github.com/muhammadheryan/e-commerce-orders/mocks/application/orderdetail"
	"github.com/muhammadheryan/e-commerce-orders/model"
	cerr "github.com/muhammadheryan/e-commerce-orders/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Message string          `json:"message"`
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type testServer struct {
	orderApp       *orderappmocks.OrderApp
	orderDetailApp *orderdetailappmocks.OrderDetailApp
	handler        http.Handler
}

func newTestServer(t *testing.T, db Pinger) *testServer {
	ts := &testServer{
		orderApp:       orderappmocks.NewOrderApp(t),
		orderDetailApp: orderdetailappmocks.NewOrderDetailApp(t),
	}
	ts.handler = NewTransport(ts.orderApp, ts.orderDetailApp, db)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

const validOrderBody = `{"user_id":1,"receiver_name":"A","receiver_phone":"555","receiver_address":"X","description":"d"}`

func TestCreateOrder(t *testing.T) {
	t.Run("success: 201 with created order", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderApp.On("CreateOrder", mock.Anything, &model.OrderRequest{
			UserID: 1, ReceiverName: "A", ReceiverPhone: "555", ReceiverAddress: "X", Description: "d",
		}).Return(&model.OrderEntity{
			ID: 42, UserID: 1, ReceiverName: "A", ReceiverPhone: "555", ReceiverAddress: "X", Description: "d",
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}, nil).Once()

		rec, env := ts.do(t, http.MethodPost, "/orders", validOrderBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Create order successfully!", env.Message)
		assert.Equal(t, "Success", env.Status)
		var order model.OrderEntity
		require.NoError(t, json.Unmarshal(env.Data, &order))
		assert.Equal(t, uint64(42), order.ID)
		assert.Equal(t, "A", order.ReceiverName)
	})

	t.Run("error: malformed json", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, env := ts.do(t, http.MethodPost, "/orders", `{"user_id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Failed to create order!", env.Message)
		assert.Equal(t, "Error", env.Status)
		assert.JSONEq(t, `"invalid request"`, string(env.Data))
	})

	t.Run("error: missing fields reported per field", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, env := ts.do(t, http.MethodPost, "/orders", `{"user_id":1,"receiver_phone":"555","receiver_address":"X","description":"d"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Failed to create order!", env.Message)
		var fields map[string]string
		require.NoError(t, json.Unmarshal(env.Data, &fields))
		assert.Equal(t, "This field is required.", fields["receiver_name"])
		assert.Len(t, fields, 1)
	})

	t.Run("error: user does not exist", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderApp.On("CreateOrder", mock.Anything, mock.Anything).
			Return(nil, cerr.SetCustomError(constant.ErrUserNotFound)).Once()

		rec, env := ts.do(t, http.MethodPost, "/orders", validOrderBody)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Failed to create order!", env.Message)
		assert.JSONEq(t, `"User not found!"`, string(env.Data))
	})
}

func TestListOrders(t *testing.T) {
	t.Run("success: empty list", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderApp.On("ListOrders", mock.Anything).Return([]model.OrderEntity{}, nil).Once()

		rec, env := ts.do(t, http.MethodGet, "/orders", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Get all orders successfully!", env.Message)
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("error: internal failure hides details", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderApp.On("ListOrders", mock.Anything).Return(nil, errors.New("dial tcp: refused")).Once()

		rec, env := ts.do(t, http.MethodGet, "/orders", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to retrieve orders!", env.Message)
		assert.NotContains(t, string(env.Data), "refused")
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("error: non numeric id", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, env := ts.do(t, http.MethodGet, "/orders/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid order id!", env.Message)
	})

	t.Run("error: order not found", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderApp.On("GetOrder", mock.Anything, uint64(7)).Return(nil, cerr.SetCustomError(constant.ErrOrderNotFound)).Once()

		rec, env := ts.do(t, http.MethodGet, "/orders/7", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Order not found!", env.Message)
		assert.Equal(t, "null", string(env.Data))
	})
}

func TestUpdateOrder(t *testing.T) {
	t.Run("success: updated order returned", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderApp.On("UpdateOrder", mock.Anything, uint64(3), mock.Anything).
			Return(&model.OrderEntity{ID: 3, ReceiverName: "A"}, nil).Once()

		rec, env := ts.do(t, http.MethodPut, "/orders/3", validOrderBody)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Update order successfully!", env.Message)
	})

	t.Run("error: validation failure", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, env := ts.do(t, http.MethodPut, "/orders/3", `{"user_id":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Update order failed", env.Message)
		var fields map[string]string
		require.NoError(t, json.Unmarshal(env.Data, &fields))
		assert.Contains(t, fields, "receiver_name")
		assert.Contains(t, fields, "description")
	})
}

func TestDeleteOrder(t *testing.T) {
	t.Run("success: echoes deleted id", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderApp.On("DeleteOrder", mock.Anything, uint64(5)).Return(nil).Once()

		rec, env := ts.do(t, http.MethodDelete, "/orders/5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Delete order successfully!", env.Message)
		assert.JSONEq(t, `{"order_id":5}`, string(env.Data))
	})

	t.Run("error: missing order", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderApp.On("DeleteOrder", mock.Anything, uint64(999)).Return(cerr.SetCustomError(constant.ErrOrderNotFound)).Once()

		rec, _ := ts.do(t, http.MethodDelete, "/orders/999", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"Order not found!","status":"Error","data":null}`, rec.Body.String())
	})
}

func TestOrderDetailRoutes(t *testing.T) {
	detail := &model.OrderDetailResponse{
		ID:       11,
		Amount:   2,
		Price:    decimal.RequireFromString("10"),
		Discount: decimal.Zero,
		Order:    model.OrderEntity{ID: 5},
		Product:  model.ProductEntity{ID: 3, Name: "Widget"},
	}

	t.Run("success: create detail", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderDetailApp.On("CreateOrderDetail", mock.Anything, uint64(5), mock.MatchedBy(func(req *model.CreateOrderDetailRequest) bool {
			return req.ProductID == 3 && *req.Amount == 2 && req.Price.Equal(decimal.RequireFromString("10")) && req.OrderID == nil
		})).Return(detail, nil).Once()

		rec, env := ts.do(t, http.MethodPost, "/orders/5/details", `{"product_id":3,"amount":2,"price":"10.00","discount":0}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Create order detail successfully!", env.Message)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, float64(5), got["order"].(map[string]interface{})["id"])
		assert.Equal(t, "Widget", got["product"].(map[string]interface{})["name"])
	})

	t.Run("error: body order id mismatch", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderDetailApp.On("CreateOrderDetail", mock.Anything, uint64(5), mock.Anything).
			Return(nil, cerr.SetCustomError(constant.ErrOrderMismatch)).Once()

		rec, env := ts.do(t, http.MethodPost, "/orders/5/details", `{"order_id":6,"product_id":3,"amount":2,"price":10,"discount":0}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `"Order id mismatch!"`, string(env.Data))
	})

	t.Run("error: negative amount", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, env := ts.do(t, http.MethodPost, "/orders/5/details", `{"product_id":3,"amount":0,"price":-1,"discount":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fields map[string]string
		require.NoError(t, json.Unmarshal(env.Data, &fields))
		assert.Equal(t, "Ensure this value is greater than or equal to 1.", fields["amount"])
		assert.Equal(t, "Ensure this value is greater than or equal to 0.", fields["price"])
	})

	t.Run("success: empty list", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderDetailApp.On("ListOrderDetails", mock.Anything, uint64(5)).Return([]model.OrderDetailResponse{}, nil).Once()

		rec, env := ts.do(t, http.MethodGet, "/orders/5/details", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Get all order details successfully!", env.Message)
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("error: non numeric detail id", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, env := ts.do(t, http.MethodGet, "/orders/5/details/x", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid order detail id!", env.Message)
	})

	t.Run("error: non numeric order id", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, env := ts.do(t, http.MethodDelete, "/orders/x/details/1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid order id!", env.Message)
	})

	t.Run("error: detail not under order", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderDetailApp.On("GetOrderDetail", mock.Anything, uint64(5), uint64(11)).
			Return(nil, cerr.SetCustomError(constant.ErrOrderDetailNotFound)).Once()

		rec, env := ts.do(t, http.MethodGet, "/orders/5/details/11", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Order detail not found!", env.Message)
		assert.Equal(t, "null", string(env.Data))
	})

	t.Run("success: update detail", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderDetailApp.On("UpdateOrderDetail", mock.Anything, uint64(5), uint64(11), mock.Anything).Return(detail, nil).Once()

		rec, env := ts.do(t, http.MethodPut, "/orders/5/details/11", `{"amount":2,"price":10,"discount":0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Update order detail successfully!", env.Message)
	})

	t.Run("success: delete detail", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderDetailApp.On("DeleteOrderDetail", mock.Anything, uint64(5), uint64(11)).Return(nil).Once()

		rec, env := ts.do(t, http.MethodDelete, "/orders/5/details/11", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Delete order detail successfully!", env.Message)
		assert.JSONEq(t, `{"order_detail_id":11}`, string(env.Data))
	})
}

func TestRouterFallbacks(t *testing.T) {
	t.Run("unknown route", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, env := ts.do(t, http.MethodGet, "/nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Error", env.Status)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("method not allowed", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec, env := ts.do(t, http.MethodPatch, "/orders", "")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "Error", env.Status)
	})

	t.Run("panic becomes 500 envelope", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.orderApp.On("ListOrders", mock.Anything).Run(func(mock.Arguments) {
			panic("boom")
		}).Return(nil, nil).Once()

		rec, env := ts.do(t, http.MethodGet, "/orders", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error!", env.Message)
	})
}

func TestRequestID(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.orderApp.On("ListOrders", mock.MatchedBy(func(ctx context.Context) bool {
		id, _ := ctx.Value(constant.RequestIDKey).(string)
		return id == "req-123"
	})).Return([]model.OrderEntity{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}

func TestHealth(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		ts := newTestServer(t, fakePinger{})

		rec, env := ts.do(t, http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Success", env.Status)
	})

	t.Run("database down", func(t *testing.T) {
		ts := newTestServer(t, fakePinger{err: errors.New("connection refused")})

		rec, env := ts.do(t, http.MethodGet, "/healthz", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Error", env.Status)
	})
}

func TestWriteError_NonCustomErrorIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, "Failed to retrieve order!", errors.New("raw driver error"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to retrieve order!","status":"Error","data":"error internal"}`, rec.Body.String())
}
