// Package models содержит структуры данных сервиса
package models

// Gif представляет запись о гифке в хранилище
type Gif struct {
	ID       int64  `json:"id" db:"id"`
	URL      string `json:"url" db:"url"`
	Category string `json:"category" db:"category"`
}

// InsertResult представляет ответ с идентификатором созданной записи
type InsertResult struct {
	ID int64 `json:"id"`
}

// ErrorResponse представляет единый JSON-конверт для ошибок API.
// Поле Code всегда совпадает с реальным HTTP-статусом ответа.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
