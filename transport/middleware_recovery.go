package transport

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/e-commerce-orders/constant"
	"github.com/muhammadheryan/e-commerce-orders/utils/logger"
	"go.uber.org/zap"
)

// RecoveryMiddleware turns a handler panic into a 500 envelope.
func RecoveryMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Ctx(r.Context()).Error("[RecoveryMiddleware] panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()),
					)
					respond(w, constant.MsgInternalServerError, constant.StatusError, nil, http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
