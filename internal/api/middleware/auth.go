package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
)

type contextKey string

const (
	userRefKey contextKey = "userRef"
	adminKey   contextKey = "isAdmin"

	userRefHeader    = "X-User-Ref"
	adminTokenHeader = "X-Admin-Token"
)

// Auth извлекает идентификатор пользователя из заголовка X-User-Ref
// и кладет его в контекст. Запросы без заголовка отклоняются
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userRef := strings.TrimSpace(r.Header.Get(userRefHeader))
		if userRef == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+userRefHeader)
			return
		}

		ctx := context.WithValue(r.Context(), userRefKey, userRef)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminAuth проверяет токен администратора из заголовка X-Admin-Token
// и помечает запрос административным
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if token == "" || provided != token {
				handlers.RespondForbidden(w, "доступ запрещен")
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserRef возвращает идентификатор пользователя из контекста
func GetUserRef(ctx context.Context) (string, bool) {
	userRef, ok := ctx.Value(userRefKey).(string)
	return userRef, ok
}

// IsAdmin возвращает true, если запрос прошел через AdminAuth
func IsAdmin(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(adminKey).(bool)
	return ok && isAdmin
}
