package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrInvalidRequest
	ErrValidation
	ErrOrderNotFound
	ErrOrderDetailNotFound
	ErrUserNotFound
	ErrProductNotFound
	ErrOrderMismatch
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrInvalidRequest:      "invalid request",
	ErrValidation:          "validation failed",
	ErrOrderNotFound:       "Order not found!",
	ErrOrderDetailNotFound: "Order detail not found!",
	ErrUserNotFound:        "User not found!",
	ErrProductNotFound:     "Product not found!",
	ErrOrderMismatch:       "Order id mismatch!",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrValidation:          http.StatusBadRequest,
	ErrOrderNotFound:       http.StatusNotFound,
	ErrOrderDetailNotFound: http.StatusNotFound,
	ErrUserNotFound:        http.StatusUnprocessableEntity,
	ErrProductNotFound:     http.StatusUnprocessableEntity,
	ErrOrderMismatch:       http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrInvalidRequest:      "0002",
	ErrValidation:          "0003",
	ErrOrderNotFound:       "0004",
	ErrOrderDetailNotFound: "0005",
	ErrUserNotFound:        "0006",
	ErrProductNotFound:     "0007",
	ErrOrderMismatch:       "0008",
}
