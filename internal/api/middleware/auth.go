package middleware

import (
	"net/http"
	"strconv"

	"github.com/uteq-platform/AdvisoryService/internal/api/handlers"
)

// HeaderUserID заголовок с ID аутентифицированного пользователя.
// Токены проверяет gateway; сюда приходит уже извлечённый ID.
const HeaderUserID = "X-User-ID"

// Auth проверяет наличие корректного X-User-ID в запросе
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}

		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		next.ServeHTTP(w, r)
	})
}
