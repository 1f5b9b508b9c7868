package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
)

// SchedulerTokenHeader заголовок с общим секретом планировщика
const SchedulerTokenHeader = "X-Scheduler-Token"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SharedSecret проверяет общий секрет в заголовке X-Scheduler-Token.
// Сравнение постоянное по времени.
func SharedSecret(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(SchedulerTokenHeader)
			if got == "" {
				logger.Warn("%s %s - Missing scheduler token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "отсутствует токен планировщика")
				return
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("%s %s - Invalid scheduler token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "недействительный токен планировщика")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
