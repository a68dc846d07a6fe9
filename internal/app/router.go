package app

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tempizhere/gogif/internal/middleware"
)

// NewRouter создаёт маршрутизатор и регистрирует обработчики.
//
// Порядок разрешения маршрутов: статические сегменты ("/re", "/api/gif",
// "/ping") имеют приоритет над параметром "/{seconds}", поэтому
// диагностический маршрут задержки не перекрывает остальные. Выборка и
// вставка гифки делят один шаблон пути и различаются только наличием
// query-параметра url (см. HandleGif)
func NewRouter(a *App, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.GzipMiddleware)

	// Незнакомый путь и неподдерживаемый метод отвечают тем же JSON-конвертом
	r.NotFound(a.HandleNotFound)
	r.MethodNotAllowed(a.HandleMethodNotAllowed)

	r.Get("/ping", a.HandlePing)
	r.Get("/re/{text}", a.HandleReplace)
	r.Get("/api/gif/{category}", a.HandleGif)
	r.Get("/{seconds}", a.HandleWait)

	return r
}
