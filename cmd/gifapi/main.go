package main

import (
	"net"
	"net/http"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/tempizhere/gogif/internal/app"
	"github.com/tempizhere/gogif/internal/config"
	internalgrpc "github.com/tempizhere/gogif/internal/grpc"
	"github.com/tempizhere/gogif/internal/grpc/proto"
	"github.com/tempizhere/gogif/internal/log"
	"github.com/tempizhere/gogif/internal/repository"
	"github.com/tempizhere/gogif/internal/service"
	"github.com/tempizhere/gogif/internal/snowflake"
)

func main() {
	logger := log.NewLogger()
	defer func() { _ = logger.Sync() }()

	// Получаем конфигурацию
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Подключаемся к базе данных: без неё сервис не стартует
	db, err := app.NewDB(cfg.DatabaseDSN, cfg.MaxDBConns)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()
	logger.Info("Connected to database")

	repo, err := repository.NewPostgresRepository(db, logger)
	if err != nil {
		logger.Fatal("Failed to create repository", zap.Error(err))
	}

	gen, err := snowflake.New(cfg.EpochMs, cfg.WorkerID, cfg.ProcessID)
	if err != nil {
		logger.Fatal("Failed to create ID generator", zap.Error(err))
	}

	svc := service.NewService(repo, gen)
	appInstance := app.NewApp(svc, db, logger)

	// Создаём маршрутизатор
	router := app.NewRouter(appInstance, logger)

	// Запускаем gRPC сервер
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		internalgrpc.RecoveryInterceptor(logger),
		internalgrpc.LoggingInterceptor(logger),
	))
	proto.RegisterGifServiceServer(grpcServer, internalgrpc.NewServer(svc, db, logger))

	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("Failed to listen gRPC address", zap.String("address", cfg.GRPCAddr), zap.Error(err))
	}
	go func() {
		logger.Info("Starting gRPC server", zap.String("address", cfg.GRPCAddr))
		if err := grpcServer.Serve(listener); err != nil {
			logger.Fatal("gRPC server failed", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("address", cfg.RunAddr))
	if err := http.ListenAndServe(cfg.RunAddr, router); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}
}
