// Package middleware содержит HTTP middleware сервиса
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDKey для хранения идентификатора запроса в контексте
type requestIDKey struct{}

// RequestIDHeader — заголовок, в котором клиенту возвращается идентификатор запроса
const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware присваивает каждому запросу уникальный идентификатор.
// Переданный клиентом заголовок сохраняется, иначе генерируется новый UUID
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID извлекает идентификатор запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
