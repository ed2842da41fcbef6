package transport

import (
	"net/http"

	"github.com/muhammadheryan/e-commerce-orders/constant"
	"github.com/muhammadheryan/e-commerce-orders/model"
	"github.com/muhammadheryan/e-commerce-orders/utils/errors"
)

// ListOrders handler
// @Summary List orders
// @Description Returns every order
// @Tags Orders
// @Produce json
// @Success 200 {object} Response{data=[]model.OrderEntity}
// @Failure 500 {object} Response
// @Router /orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.ListOrders(r.Context())
	if err != nil {
		writeError(w, constant.MsgListOrdersFailed, err)
		return
	}

	writeSuccess(w, constant.MsgListOrdersSuccess, res, http.StatusOK)
}

// CreateOrder handler
// @Summary Create order
// @Description Creates an order for an existing user
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.OrderRequest true "Order Request"
// @Success 201 {object} Response{data=model.OrderEntity}
// @Failure 400 {object} Response
// @Failure 422 {object} Response
// @Failure 500 {object} Response
// @Router /orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, constant.MsgCreateOrderFailed, err)
		return
	}

	res, err := s.OrderApp.CreateOrder(r.Context(), &req)
	if err != nil {
		writeError(w, constant.MsgCreateOrderFailed, err)
		return
	}

	writeSuccess(w, constant.MsgCreateOrderSuccess, res, http.StatusCreated)
}

// GetOrder handler
// @Summary Get order
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} Response{data=model.OrderEntity}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, constant.MsgInvalidOrderID, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, constant.MsgGetOrderFailed, err)
		return
	}

	writeSuccess(w, constant.MsgGetOrderSuccess, res, http.StatusOK)
}

// UpdateOrder handler
// @Summary Update order
// @Description Replaces every field of the order
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.OrderRequest true "Order Request"
// @Success 200 {object} Response{data=model.OrderEntity}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 422 {object} Response
// @Failure 500 {object} Response
// @Router /orders/{id} [put]
func (s *RestHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, constant.MsgInvalidOrderID, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.OrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, constant.MsgUpdateOrderInvalid, err)
		return
	}

	res, err := s.OrderApp.UpdateOrder(r.Context(), id, &req)
	if err != nil {
		writeError(w, constant.MsgUpdateOrderFailed, err)
		return
	}

	writeSuccess(w, constant.MsgUpdateOrderSuccess, res, http.StatusOK)
}

// DeleteOrder handler
// @Summary Delete order
// @Description Deletes the order and its details
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} Response{data=model.DeleteOrderResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /orders/{id} [delete]
func (s *RestHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, constant.MsgInvalidOrderID, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, constant.MsgDeleteOrderFailed, err)
		return
	}

	writeSuccess(w, constant.MsgDeleteOrderSuccess, model.DeleteOrderResponse{OrderID: id}, http.StatusOK)
}
