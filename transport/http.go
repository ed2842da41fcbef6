package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	orderapp "github.com/muhammadheryan/e-commerce-orders/application/order"
	orderdetailapp "github.com/muhammadheryan/e-commerce-orders/application/orderdetail"
	"github.com/muhammadheryan/e-commerce-orders/constant"
	"github.com/muhammadheryan/e-commerce-orders/utils/errors"
	"github.com/muhammadheryan/e-commerce-orders/utils/logger"
	validatorx "github.com/muhammadheryan/e-commerce-orders/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether the database is reachable. *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type RestHandler struct {
	OrderApp       orderapp.OrderApp
	OrderDetailApp orderdetailapp.OrderDetailApp
	DB             Pinger
}

func NewTransport(OrderApp orderapp.OrderApp, OrderDetailApp orderdetailapp.OrderDetailApp, db Pinger) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		OrderApp:       OrderApp,
		OrderDetailApp: OrderDetailApp,
		DB:             db,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)

	// orders
	mux.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	mux.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{id}", rh.UpdateOrder).Methods(http.MethodPut)
	mux.HandleFunc("/orders/{id}", rh.DeleteOrder).Methods(http.MethodDelete)

	// order details
	mux.HandleFunc("/orders/{order_id}/details", rh.ListOrderDetails).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{order_id}/details", rh.CreateOrderDetail).Methods(http.MethodPost)
	mux.HandleFunc("/orders/{order_id}/details/{id}", rh.GetOrderDetail).Methods(http.MethodGet)
	mux.HandleFunc("/orders/{order_id}/details/{id}", rh.UpdateOrderDetail).Methods(http.MethodPut)
	mux.HandleFunc("/orders/{order_id}/details/{id}", rh.DeleteOrderDetail).Methods(http.MethodDelete)

	// unmatched requests skip router middleware, so wrap them explicitly
	logging, recovery := LoggingMiddleware(), RecoveryMiddleware()
	mux.NotFoundHandler = logging(recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, constant.MsgRouteNotFound, constant.StatusError, nil, http.StatusNotFound)
	})))
	mux.MethodNotAllowedHandler = logging(recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, constant.MsgMethodNotAllowed, constant.StatusError, nil, http.StatusMethodNotAllowed)
	})))

	// middleware
	mux.Use(logging)
	mux.Use(recovery)

	return mux
}

// Health handler
// @Summary Health check
// @Description Reports whether the service can reach its database
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /healthz [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if s.DB != nil {
		if err := s.DB.PingContext(ctx); err != nil {
			logger.Ctx(ctx).Warn("[Health] database ping failed", zap.String("error", err.Error()))
			respond(w, constant.MsgUnhealthy, constant.StatusError, nil, http.StatusServiceUnavailable)
			return
		}
	}

	writeSuccess(w, constant.MsgHealthy, nil, http.StatusOK)
}

// pathID parses a numeric path variable. Ids start at 1.
func pathID(r *http.Request, name string) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// The returned error is always a CustomError.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := validatorx.ValidateStruct(dst); err != nil {
		details := validatorx.FieldErrors(err)
		if details == nil {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		return errors.SetValidationError(details)
	}

	return nil
}
