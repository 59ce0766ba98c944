package rest

import (
	"context"
	"net/http"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
)

// Определяем кастомный тип для ключа контекста, чтобы избежать коллизий.
type contextKey string

const actorKey = contextKey("actor")

// AuthMiddleware - middleware для извлечения личности пользователя из
// заголовков. Сами заголовки проставляет API Gateway после проверки токена.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			WriteJSONError(w, http.StatusUnauthorized, "X-User-ID header is missing")
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid X-User-ID header format")
			return
		}

		role, err := domain.ParseUserRole(r.Header.Get("X-User-Role"))
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid X-User-Role header")
			return
		}

		// Добавляем актора в контекст запроса
		ctx := context.WithValue(r.Context(), actorKey, usecases_port.Actor{
			UserID: userID,
			Role:   role,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func actorFromContext(ctx context.Context) (usecases_port.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(usecases_port.Actor)
	return actor, ok
}
