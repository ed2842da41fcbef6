package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/e-commerce-orders/constant"
)

type CustomError struct {
	errType constant.ErrorType
	details map[string]string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Details returns the per-field messages of a validation error, nil otherwise.
func (c CustomError) Details() map[string]string {
	return c.details
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetValidationError(details map[string]string) CustomError {
	return CustomError{
		errType: constant.ErrValidation,
		details: details,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	return stderrors.As(err, &ce) && ce.errType == errorType
}
