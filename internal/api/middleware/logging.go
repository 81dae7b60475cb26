package middleware

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-HearingService/internal/api/handlers"
)

// Logging access log: метод, путь, код ответа, длительность
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := wrapResponseWriter(w)

			next.ServeHTTP(rw, r)

			format := "%s %s - status=%d duration=%s request_id=%s"
			args := []interface{}{r.Method, r.URL.Path, rw.statusCode, time.Since(start), GetRequestID(r.Context())}
			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				logger.Error(format, args...)
			case rw.statusCode >= http.StatusBadRequest:
				logger.Warn(format, args...)
			default:
				logger.Info(format, args...)
			}
		})
	}
}

// Recover перехватывает панику обработчика и отвечает 500
func Recover(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("%s %s - panic: %v request_id=%s", r.Method, r.URL.Path, rec, GetRequestID(r.Context()))
					respondPanic(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func respondPanic(w http.ResponseWriter) {
	if rw, ok := w.(*responseWriter); ok && rw.wroteHeader {
		return
	}
	handlers.RespondInternalError(w)
}
