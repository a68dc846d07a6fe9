// Package config содержит настройки приложения
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

// DefaultEpoch — эпоха генератора идентификаторов по умолчанию
// (1 января 2015, UTC, мс)
const DefaultEpoch = int64(1420070400000)

// Config содержит настройки приложения
type Config struct {
	RunAddr     string
	GRPCAddr    string
	DatabaseDSN string
	MaxDBConns  int
	WorkerID    int64
	ProcessID   int64
	EpochMs     int64
}

// NewConfig создает и возвращает новый объект Config с настройками по умолчанию
// и парсит флаги командной строки
func NewConfig() (*Config, error) {
	return newConfig(os.Args[1:])
}

// newConfig собирает конфигурацию из переданных аргументов и переменных
// окружения. Флаги регистрируются на локальном FlagSet, поэтому функцию
// можно вызывать повторно
func newConfig(args []string) (*Config, error) {
	cfg := &Config{
		RunAddr:    ":3030",
		GRPCAddr:   ":3031",
		MaxDBConns: 20,
		WorkerID:   1,
		ProcessID:  1,
		EpochMs:    DefaultEpoch,
	}

	// Регистрируем флаги
	fs := flag.NewFlagSet("gifapi", flag.ContinueOnError)
	flagRunAddr := fs.String("a", ":3030", "address and port to run HTTP server")
	flagGRPCAddr := fs.String("g", ":3031", "address and port to run gRPC server")
	flagDatabaseDSN := fs.String("d", "", "database DSN for PostgreSQL")
	flagMaxConns := fs.Int("p", 20, "database connection pool size")
	flagWorkerID := fs.Int64("w", 1, "snowflake worker ID (0..31)")
	flagProcessID := fs.Int64("i", 1, "snowflake process ID (0..31)")
	flagEpoch := fs.Int64("e", DefaultEpoch, "snowflake epoch, unix milliseconds")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Проверяем переменные окружения
	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		cfg.RunAddr = addr
	} else if *flagRunAddr != "" {
		cfg.RunAddr = *flagRunAddr
	}

	if addr := os.Getenv("GRPC_ADDRESS"); addr != "" {
		cfg.GRPCAddr = addr
	} else if *flagGRPCAddr != "" {
		cfg.GRPCAddr = *flagGRPCAddr
	}

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.DatabaseDSN = dsn
	} else if *flagDatabaseDSN != "" {
		cfg.DatabaseDSN = *flagDatabaseDSN
	}

	if v := os.Getenv("DATABASE_MAX_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		cfg.MaxDBConns = n
	} else {
		cfg.MaxDBConns = *flagMaxConns
	}

	if v := os.Getenv("WORKER_ID"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		cfg.WorkerID = n
	} else {
		cfg.WorkerID = *flagWorkerID
	}

	if v := os.Getenv("PROCESS_ID"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		cfg.ProcessID = n
	} else {
		cfg.ProcessID = *flagProcessID
	}

	if v := os.Getenv("EPOCH_MS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		cfg.EpochMs = n
	} else {
		cfg.EpochMs = *flagEpoch
	}

	// Валидация значений
	cfg.RunAddr = validateAddress(cfg.RunAddr)
	cfg.GRPCAddr = validateAddress(cfg.GRPCAddr)
	if cfg.MaxDBConns <= 0 {
		cfg.MaxDBConns = 20
	}

	return cfg, nil
}

// validateAddress дополняет адрес двоеточием, если указан только порт
func validateAddress(addr string) string {
	if !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}
