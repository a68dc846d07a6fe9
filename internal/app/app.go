// Package app содержит HTTP-обработчики сервиса
package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/tempizhere/gogif/internal/models"
	"github.com/tempizhere/gogif/internal/repository"
	"github.com/tempizhere/gogif/internal/service"
)

// Сообщения единого конверта ошибок
const (
	MsgNotFound         = "NOT_FOUND"
	MsgMethodNotAllowed = "METHOD_NOT_ALLOWED"
	MsgInternal         = "UNHANDLED_REJECTION"
)

// App содержит хендлеры и зависимости
type App struct {
	svc    *service.Service
	db     repository.Database
	logger *zap.Logger
}

// NewApp создаёт новое приложение
func NewApp(svc *service.Service, db repository.Database, logger *zap.Logger) *App {
	return &App{svc: svc, db: db, logger: logger}
}

// HandleWait обрабатывает GET-запросы на "/{seconds}": держит ответ
// указанное число секунд. Диагностический маршрут
func (a *App) HandleWait(w http.ResponseWriter, r *http.Request) {
	seconds, err := strconv.ParseUint(chi.URLParam(r, "seconds"), 10, 8)
	if err != nil {
		// Параметр не является маленьким числом — маршрут считается несуществующим
		a.writeErrorResponse(w, http.StatusNotFound, MsgNotFound)
		return
	}

	timer := time.NewTimer(time.Duration(seconds) * time.Second)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-r.Context().Done():
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	if _, err := fmt.Fprintf(w, "I waited %d seconds!", seconds); err != nil {
		a.logger.Error("Failed to write response", zap.Error(err))
	}
}

// HandleReplace обрабатывает GET-запросы на "/re/{text}": возвращает текст,
// в котором литеральные последовательности "%20" заменены пробелом
func (a *App) HandleReplace(w http.ResponseWriter, r *http.Request) {
	text := chi.URLParam(r, "text")
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(strings.ReplaceAll(text, "%20", " "))); err != nil {
		a.logger.Error("Failed to write response", zap.Error(err))
	}
}

// HandleGif обрабатывает GET-запросы на "/api/gif/{category}".
// Наличие query-параметра url переключает запрос с выборки на вставку:
// оба варианта используют один и тот же шаблон пути
func (a *App) HandleGif(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	if urls, ok := r.URL.Query()["url"]; ok {
		a.handleAddGif(w, category, urls[0])
		return
	}
	a.handleRandomGif(w, category)
}

// handleRandomGif возвращает случайную гифку категории
func (a *App) handleRandomGif(w http.ResponseWriter, category string) {
	gif, err := a.svc.RandomGif(category)
	if err != nil {
		if errors.Is(err, repository.ErrGifNotFound) || errors.Is(err, service.ErrEmptyCategory) {
			a.writeErrorResponse(w, http.StatusNotFound, MsgNotFound)
			return
		}
		a.logger.Error("Failed to fetch random gif", zap.String("category", category), zap.Error(err))
		a.writeErrorResponse(w, http.StatusInternalServerError, MsgInternal)
		return
	}
	a.writeJSONResponse(w, http.StatusOK, gif)
}

// handleAddGif генерирует идентификатор и сохраняет гифку
func (a *App) handleAddGif(w http.ResponseWriter, category, url string) {
	id, err := a.svc.AddGif(url, category)
	if err != nil {
		a.logger.Error("Failed to add gif", zap.String("category", category), zap.Error(err))
		a.writeErrorResponse(w, http.StatusInternalServerError, MsgInternal)
		return
	}
	a.writeJSONResponse(w, http.StatusOK, models.InsertResult{ID: id})
}

// HandlePing обрабатывает GET-запросы на "/ping"
func (a *App) HandlePing(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		a.writeErrorResponse(w, http.StatusInternalServerError, MsgInternal)
		return
	}
	if err := a.db.Ping(); err != nil {
		a.logger.Error("Database ping failed", zap.Error(err))
		a.writeErrorResponse(w, http.StatusInternalServerError, MsgInternal)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleNotFound отвечает конвертом ошибки на незнакомый путь
func (a *App) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	a.writeErrorResponse(w, http.StatusNotFound, MsgNotFound)
}

// HandleMethodNotAllowed отвечает конвертом ошибки на неподдерживаемый метод
func (a *App) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	a.writeErrorResponse(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}

// writeJSONResponse пишет JSON-ответ с проверкой ошибок
func (a *App) writeJSONResponse(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		a.logger.Error("Failed to encode JSON", zap.Error(err))
		a.writeErrorResponse(w, http.StatusInternalServerError, MsgInternal)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		a.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeErrorResponse пишет конверт ошибки {code, message}.
// Поле code всегда совпадает с HTTP-статусом ответа
func (a *App) writeErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	data, err := json.Marshal(models.ErrorResponse{Code: status, Message: message})
	if err != nil {
		a.logger.Error("Failed to encode error response", zap.Error(err))
		return
	}
	if _, err := w.Write(data); err != nil {
		a.logger.Error("Failed to write response", zap.Error(err))
	}
}
