package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-logr/logr"

	"github.com/taskapi/taskapi/internal/api/response"
	"github.com/taskapi/taskapi/internal/domain"
)

// Recovery returns middleware that catches panics and returns a 500 error.
func Recovery(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err := fmt.Errorf("panic: %v", rec)
					logger.Error(err, "panic recovered", "path", r.URL.Path, "stack", string(debug.Stack()))
					response.Error(w, domain.NewInternalError(err))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
