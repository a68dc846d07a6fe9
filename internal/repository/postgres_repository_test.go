package repository

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tempizhere/gogif/internal/models"
)

func TestPostgresRepository_GetRandomByCategory(t *testing.T) {
	logger := zap.NewNop()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PostgresRepository{
		db:     db,
		logger: logger,
	}

	tests := []struct {
		name        string
		setup       func()
		category    string
		expectedGif models.Gif
		expectedErr error
	}{
		{
			name: "Found",
			setup: func() {
				mock.ExpectQuery("SELECT id, url, category FROM gifs WHERE category = \\$1 ORDER BY random\\(\\) LIMIT 1").
					WithArgs("cats").
					WillReturnRows(sqlmock.NewRows([]string{"id", "url", "category"}).
						AddRow(int64(42), "http://example.com/cat.gif", "cats"))
			},
			category:    "cats",
			expectedGif: models.Gif{ID: 42, URL: "http://example.com/cat.gif", Category: "cats"},
			expectedErr: nil,
		},
		{
			name: "Empty category",
			setup: func() {
				mock.ExpectQuery("SELECT id, url, category FROM gifs WHERE category = \\$1 ORDER BY random\\(\\) LIMIT 1").
					WithArgs("nonexistent").
					WillReturnError(sql.ErrNoRows)
			},
			category:    "nonexistent",
			expectedGif: models.Gif{},
			expectedErr: ErrGifNotFound,
		},
		{
			name: "Database error",
			setup: func() {
				mock.ExpectQuery("SELECT id, url, category FROM gifs WHERE category = \\$1 ORDER BY random\\(\\) LIMIT 1").
					WithArgs("cats").
					WillReturnError(errors.New("db error"))
			},
			category:    "cats",
			expectedGif: models.Gif{},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			gif, err := repo.GetRandomByCategory(tt.category)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedGif, gif)

			// Проверяем, что все ожидаемые вызовы мока выполнены
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_Insert(t *testing.T) {
	logger := zap.NewNop()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PostgresRepository{
		db:     db,
		logger: logger,
	}

	tests := []struct {
		name        string
		setup       func()
		gif         models.Gif
		expectedID  int64
		expectedErr error
	}{
		{
			name: "Insert success",
			setup: func() {
				mock.ExpectQuery("INSERT INTO gifs \\(id, url, category\\) VALUES \\(\\$1, \\$2, \\$3\\) RETURNING id").
					WithArgs(int64(99), "http://example.com/dog.gif", "dogs").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(99)))
			},
			gif:         models.Gif{ID: 99, URL: "http://example.com/dog.gif", Category: "dogs"},
			expectedID:  99,
			expectedErr: nil,
		},
		{
			name: "Insert error",
			setup: func() {
				mock.ExpectQuery("INSERT INTO gifs \\(id, url, category\\) VALUES \\(\\$1, \\$2, \\$3\\) RETURNING id").
					WithArgs(int64(99), "http://example.com/dog.gif", "dogs").
					WillReturnError(errors.New("duplicate key"))
			},
			gif:         models.Gif{ID: 99, URL: "http://example.com/dog.gif", Category: "dogs"},
			expectedID:  0,
			expectedErr: errors.New("duplicate key"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			id, err := repo.Insert(tt.gif)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedID, id)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_Clear(t *testing.T) {
	logger := zap.NewNop()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PostgresRepository{db: db, logger: logger}

	mock.ExpectExec("TRUNCATE TABLE gifs").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo.Clear()
	assert.NoError(t, mock.ExpectationsWereMet())
}
