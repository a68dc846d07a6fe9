// Package proto содержит определения типов для gRPC сервиса гифок
package proto

// RandomGifRequest представляет запрос случайной гифки из категории
type RandomGifRequest struct {
	Category string `json:"category"`
}

// RandomGifResponse представляет ответ со случайной гифкой
type RandomGifResponse struct {
	Id       int64  `json:"id"`
	Url      string `json:"url"`
	Category string `json:"category"`
}

// AddGifRequest представляет запрос на добавление гифки
type AddGifRequest struct {
	Category string `json:"category"`
	Url      string `json:"url"`
}

// AddGifResponse представляет ответ с идентификатором созданной записи
type AddGifResponse struct {
	Id int64 `json:"id"`
}

// PingRequest представляет запрос проверки состояния
type PingRequest struct{}

// PingResponse представляет ответ проверки состояния
type PingResponse struct {
	DatabaseAvailable bool `json:"database_available"`
}
