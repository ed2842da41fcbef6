package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/muhammadheryan/e-commerce-orders/constant"
	cerr "github.com/muhammadheryan/e-commerce-orders/utils/errors"
	"github.com/muhammadheryan/e-commerce-orders/utils/logger"
	"go.uber.org/zap"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
}

func respond(w http.ResponseWriter, message, status string, data interface{}, httpCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	if err := json.NewEncoder(w).Encode(Response{
		Message: message,
		Status:  status,
		Data:    data,
	}); err != nil {
		logger.Error("[respond] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, message string, data interface{}, httpCode int) {
	respond(w, message, constant.StatusSuccess, data, httpCode)
}

// writeError maps err onto the envelope. Not-found errors carry their own
// message with null data, validation errors carry the field map, the rest
// answer failMessage with the error text as data.
func writeError(w http.ResponseWriter, failMessage string, err error) {
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		ce = cerr.SetCustomError(constant.ErrInternal)
	}

	switch ce.Type() {
	case constant.ErrOrderNotFound, constant.ErrOrderDetailNotFound:
		respond(w, ce.Error(), constant.StatusError, nil, ce.ErrorHTTPCode())
	case constant.ErrValidation:
		respond(w, failMessage, constant.StatusError, ce.Details(), ce.ErrorHTTPCode())
	default:
		respond(w, failMessage, constant.StatusError, ce.Error(), ce.ErrorHTTPCode())
	}
}
