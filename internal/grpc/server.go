// Package grpc содержит реализацию gRPC сервера сервиса гифок
package grpc

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tempizhere/gogif/internal/grpc/proto"
	"github.com/tempizhere/gogif/internal/repository"
	"github.com/tempizhere/gogif/internal/service"
)

// Server реализует gRPC сервер сервиса гифок
type Server struct {
	proto.UnimplementedGifServiceServer
	svc    *service.Service
	db     repository.Database
	logger *zap.Logger
}

// NewServer создаёт новый gRPC сервер
func NewServer(svc *service.Service, db repository.Database, logger *zap.Logger) *Server {
	return &Server{
		svc:    svc,
		db:     db,
		logger: logger,
	}
}

// RandomGif возвращает случайную гифку из категории
func (s *Server) RandomGif(ctx context.Context, req *proto.RandomGifRequest) (*proto.RandomGifResponse, error) {
	if req.Category == "" {
		return nil, status.Error(codes.InvalidArgument, "category is required")
	}

	gif, err := s.svc.RandomGif(req.Category)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &proto.RandomGifResponse{
		Id:       gif.ID,
		Url:      gif.URL,
		Category: gif.Category,
	}, nil
}

// AddGif сохраняет гифку и возвращает идентификатор созданной записи
func (s *Server) AddGif(ctx context.Context, req *proto.AddGifRequest) (*proto.AddGifResponse, error) {
	if req.Category == "" {
		return nil, status.Error(codes.InvalidArgument, "category is required")
	}
	if req.Url == "" {
		return nil, status.Error(codes.InvalidArgument, "URL is required")
	}

	id, err := s.svc.AddGif(req.Url, req.Category)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &proto.AddGifResponse{Id: id}, nil
}

// Ping проверяет состояние сервиса
func (s *Server) Ping(ctx context.Context, req *proto.PingRequest) (*proto.PingResponse, error) {
	if s.db == nil {
		return &proto.PingResponse{DatabaseAvailable: false}, nil
	}

	err := s.db.Ping()
	return &proto.PingResponse{
		DatabaseAvailable: err == nil,
	}, nil
}

// mapError переводит ошибки сервиса в статусы gRPC
func (s *Server) mapError(err error) error {
	switch {
	case errors.Is(err, repository.ErrGifNotFound):
		return status.Error(codes.NotFound, "no gifs in category")
	case errors.Is(err, service.ErrEmptyCategory), errors.Is(err, service.ErrEmptyURL):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		s.logger.Error("Internal error", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}
