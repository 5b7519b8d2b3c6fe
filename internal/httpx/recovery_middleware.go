package httpx

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.Error("panic recovered",
						"request_id", RequestIDFrom(r),
						"error", err,
						"stack", string(debug.Stack()),
					)

					var wroteHeader bool
					if rw, ok := w.(*responseWriter); ok {
						wroteHeader = rw.wroteHeader()
					}

					if !wroteHeader {
						JSONError(w, http.StatusInternalServerError, "An internal error occurred")
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
