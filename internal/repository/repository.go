// Package repository содержит слой доступа к хранилищу гифок
package repository

import (
	"database/sql"
	"errors"

	"github.com/tempizhere/gogif/internal/models"
)

// ErrGifNotFound возвращается, когда в категории нет ни одной записи
var ErrGifNotFound = errors.New("gif not found")

// Repository определяет интерфейс для работы с хранилищем гифок
type Repository interface {
	// GetRandomByCategory возвращает случайную гифку из категории.
	// Выбор равномерный по всем записям категории; при пустой категории
	// возвращается ErrGifNotFound
	GetRandomByCategory(category string) (models.Gif, error)
	// Insert сохраняет гифку с заранее сгенерированным идентификатором
	// и возвращает идентификатор вставленной записи
	Insert(gif models.Gif) (int64, error)
	// Clear очищает все данные в хранилище
	Clear()
}

// Database определяет интерфейс для работы с базой данных
type Database interface {
	// Ping проверяет соединение с базой данных
	Ping() error
	// Close закрывает соединение с базой данных
	Close() error
	// Exec выполняет SQL-команду без возврата результатов
	Exec(query string, args ...interface{}) (sql.Result, error)
	// Query выполняет SQL-запрос и возвращает результаты
	Query(query string, args ...interface{}) (*sql.Rows, error)
	// QueryRow выполняет SQL-запрос и возвращает одну строку результата
	QueryRow(query string, args ...interface{}) *sql.Row
	// Begin начинает новую транзакцию
	Begin() (*sql.Tx, error)
}
