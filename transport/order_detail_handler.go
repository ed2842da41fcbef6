package transport

import (
	"net/http"

	"github.com/muhammadheryan/e-commerce-orders/constant"
	"github.com/muhammadheryan/e-commerce-orders/model"
	"github.com/muhammadheryan/e-commerce-orders/utils/errors"
)

// detailPath reads {order_id} and {id}, answering 400 itself when either is malformed.
func detailPath(w http.ResponseWriter, r *http.Request) (orderID, id uint64, ok bool) {
	if orderID, ok = pathID(r, "order_id"); !ok {
		writeError(w, constant.MsgInvalidOrderID, errors.SetCustomError(constant.ErrInvalidRequest))
		return 0, 0, false
	}
	if id, ok = pathID(r, "id"); !ok {
		writeError(w, constant.MsgInvalidOrderDetailID, errors.SetCustomError(constant.ErrInvalidRequest))
		return 0, 0, false
	}
	return orderID, id, true
}

// ListOrderDetails handler
// @Summary List order details
// @Description Returns the details of an order with the order and product embedded
// @Tags OrderDetails
// @Produce json
// @Param order_id path int true "Order ID"
// @Success 200 {object} Response{data=[]model.OrderDetailResponse}
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /orders/{order_id}/details [get]
func (s *RestHandler) ListOrderDetails(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "order_id")
	if !ok {
		writeError(w, constant.MsgInvalidOrderID, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderDetailApp.ListOrderDetails(r.Context(), orderID)
	if err != nil {
		writeError(w, constant.MsgListOrderDetailsFailed, err)
		return
	}

	writeSuccess(w, constant.MsgListOrderDetailsSuccess, res, http.StatusOK)
}

// CreateOrderDetail handler
// @Summary Create order detail
// @Description Adds a product line to the order. A body order_id must match the path.
// @Tags OrderDetails
// @Accept json
// @Produce json
// @Param order_id path int true "Order ID"
// @Param request body model.CreateOrderDetailRequest true "Order Detail Request"
// @Success 201 {object} Response{data=model.OrderDetailResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Failure 422 {object} Response
// @Failure 500 {object} Response
// @Router /orders/{order_id}/details [post]
func (s *RestHandler) CreateOrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "order_id")
	if !ok {
		writeError(w, constant.MsgInvalidOrderID, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CreateOrderDetailRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, constant.MsgCreateOrderDetailFailed, err)
		return
	}

	res, err := s.OrderDetailApp.CreateOrderDetail(r.Context(), orderID, &req)
	if err != nil {
		writeError(w, constant.MsgCreateOrderDetailFailed, err)
		return
	}

	writeSuccess(w, constant.MsgCreateOrderDetailSuccess, res, http.StatusCreated)
}

// GetOrderDetail handler
// @Summary Get order detail
// @Tags OrderDetails
// @Produce json
// @Param order_id path int true "Order ID"
// @Param id path int true "Order Detail ID"
// @Success 200 {object} Response{data=model.OrderDetailResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /orders/{order_id}/details/{id} [get]
func (s *RestHandler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID, id, ok := detailPath(w, r)
	if !ok {
		return
	}

	res, err := s.OrderDetailApp.GetOrderDetail(r.Context(), orderID, id)
	if err != nil {
		writeError(w, constant.MsgGetOrderDetailFailed, err)
		return
	}

	writeSuccess(w, constant.MsgGetOrderDetailSuccess, res, http.StatusOK)
}

// UpdateOrderDetail handler
// @Summary Update order detail
// @Description Replaces amount, price and discount
// @Tags OrderDetails
// @Accept json
// @Produce json
// @Param order_id path int true "Order ID"
// @Param id path int true "Order Detail ID"
// @Param request body model.UpdateOrderDetailRequest true "Order Detail Request"
// @Success 200 {object} Response{data=model.OrderDetailResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /orders/{order_id}/details/{id} [put]
func (s *RestHandler) UpdateOrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID, id, ok := detailPath(w, r)
	if !ok {
		return
	}

	var req model.UpdateOrderDetailRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, constant.MsgUpdateOrderDetailInvalid, err)
		return
	}

	res, err := s.OrderDetailApp.UpdateOrderDetail(r.Context(), orderID, id, &req)
	if err != nil {
		writeError(w, constant.MsgUpdateOrderDetailFailed, err)
		return
	}

	writeSuccess(w, constant.MsgUpdateOrderDetailSuccess, res, http.StatusOK)
}

// DeleteOrderDetail handler
// @Summary Delete order detail
// @Tags OrderDetails
// @Produce json
// @Param order_id path int true "Order ID"
// @Param id path int true "Order Detail ID"
// @Success 200 {object} Response{data=model.DeleteOrderDetailResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /orders/{order_id}/details/{id} [delete]
func (s *RestHandler) DeleteOrderDetail(w http.ResponseWriter, r *http.Request) {
	orderID, id, ok := detailPath(w, r)
	if !ok {
		return
	}

	if err := s.OrderDetailApp.DeleteOrderDetail(r.Context(), orderID, id); err != nil {
		writeError(w, constant.MsgDeleteOrderDetailFailed, err)
		return
	}

	writeSuccess(w, constant.MsgDeleteOrderDetailSuccess, model.DeleteOrderDetailResponse{OrderDetailID: id}, http.StatusOK)
}
