// Package proto содержит интерфейс gRPC сервиса гифок
package proto

import (
	"context"

	"google.golang.org/grpc"
)

// GifServiceServer представляет интерфейс gRPC сервиса
type GifServiceServer interface {
	RandomGif(ctx context.Context, req *RandomGifRequest) (*RandomGifResponse, error)
	AddGif(ctx context.Context, req *AddGifRequest) (*AddGifResponse, error)
	Ping(ctx context.Context, req *PingRequest) (*PingResponse, error)
}

// UnimplementedGifServiceServer предоставляет базовую реализацию интерфейса
type UnimplementedGifServiceServer struct{}

// RandomGif предоставляет базовую реализацию получения случайной гифки
func (UnimplementedGifServiceServer) RandomGif(ctx context.Context, req *RandomGifRequest) (*RandomGifResponse, error) {
	return nil, nil
}

// AddGif предоставляет базовую реализацию добавления гифки
func (UnimplementedGifServiceServer) AddGif(ctx context.Context, req *AddGifRequest) (*AddGifResponse, error) {
	return nil, nil
}

// Ping предоставляет базовую реализацию проверки состояния сервиса
func (UnimplementedGifServiceServer) Ping(ctx context.Context, req *PingRequest) (*PingResponse, error) {
	return nil, nil
}

// RegisterGifServiceServer регистрирует реализацию сервиса в gRPC сервере
func RegisterGifServiceServer(s *grpc.Server, srv GifServiceServer) {
	// В реальном проекте это было бы автоматически сгенерировано protoc
	// Здесь заглушка для демонстрации
}
