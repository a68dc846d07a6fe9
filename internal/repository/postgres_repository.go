package repository

import (
	"database/sql"
	"errors"

	"github.com/tempizhere/gogif/internal/models"
	"go.uber.org/zap"
)

// PostgresRepository реализует интерфейс Repository с использованием PostgreSQL
type PostgresRepository struct {
	db     Database
	logger *zap.Logger
}

// NewPostgresRepository создаёт новый экземпляр PostgresRepository
func NewPostgresRepository(db Database, logger *zap.Logger) (*PostgresRepository, error) {
	if db == nil {
		return nil, nil
	}
	return &PostgresRepository{
		db:     db,
		logger: logger,
	}, nil
}

// GetRandomByCategory возвращает случайную гифку из категории.
// Равномерность выбора обеспечивает сама база: ORDER BY random() LIMIT 1
func (r *PostgresRepository) GetRandomByCategory(category string) (models.Gif, error) {
	var gif models.Gif
	err := r.db.QueryRow(
		"SELECT id, url, category FROM gifs WHERE category = $1 ORDER BY random() LIMIT 1",
		category,
	).Scan(&gif.ID, &gif.URL, &gif.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Gif{}, ErrGifNotFound
	}
	if err != nil {
		r.logger.Error("Failed to fetch random gif from database", zap.String("category", category), zap.Error(err))
		return models.Gif{}, err
	}
	return gif, nil
}

// Insert сохраняет гифку с заданным идентификатором и возвращает его
func (r *PostgresRepository) Insert(gif models.Gif) (int64, error) {
	var id int64
	err := r.db.QueryRow(
		"INSERT INTO gifs (id, url, category) VALUES ($1, $2, $3) RETURNING id",
		gif.ID, gif.URL, gif.Category,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to insert gif into database",
			zap.Int64("id", gif.ID), zap.String("category", gif.Category), zap.Error(err))
		return 0, err
	}
	return id, nil
}

// Clear очищает все записи в таблице gifs
func (r *PostgresRepository) Clear() {
	_, err := r.db.Exec("TRUNCATE TABLE gifs")
	if err != nil {
		r.logger.Error("Failed to clear database", zap.Error(err))
	}
}
