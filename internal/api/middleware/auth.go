package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
)

type contextKey string

const (
	userEmailKey contextKey = "userEmail"
	userRoleKey  contextKey = "userRole"

	// HeaderUserEmail заголовок с email действующего пользователя
	HeaderUserEmail = "X-User-Email"
	// HeaderUserRole заголовок с ролью действующего пользователя
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingEmail = "отсутствует заголовок X-User-Email"
	msgInvalidRole  = "некорректная роль в заголовке X-User-Role"
)

// Auth извлекает личность пользователя из доверенных заголовков
// Выпуск и проверка токенов лежат на внешнем шлюзе, сюда приходит
// уже аутентифицированный запрос
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(HeaderUserEmail)
		if email == "" {
			handlers.RespondUnauthorized(w, msgMissingEmail)
			return
		}

		role := domain.Role(r.Header.Get(HeaderUserRole))
		switch role {
		case domain.RoleCandidate, domain.RoleInterviewer, domain.RoleCoordinator:
		default:
			handlers.RespondForbidden(w, msgInvalidRole)
			return
		}

		ctx := context.WithValue(r.Context(), userEmailKey, email)
		ctx = context.WithValue(ctx, userRoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserEmail возвращает email пользователя из контекста запроса
func GetUserEmail(ctx context.Context) string {
	email, _ := ctx.Value(userEmailKey).(string)
	return email
}

// GetRole возвращает роль пользователя из контекста запроса
func GetRole(ctx context.Context) domain.Role {
	role, _ := ctx.Value(userRoleKey).(domain.Role)
	return role
}
