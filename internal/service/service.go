// Package service содержит бизнес-логику сервиса гифок
package service

import (
	"errors"

	"github.com/tempizhere/gogif/internal/models"
	"github.com/tempizhere/gogif/internal/repository"
	"github.com/tempizhere/gogif/internal/snowflake"
)

var (
	ErrEmptyCategory = errors.New("empty category")
	ErrEmptyURL      = errors.New("empty URL")
)

// Service реализует логику работы с гифками
type Service struct {
	repo repository.Repository
	gen  *snowflake.Generator
}

// NewService создаёт новый экземпляр Service
func NewService(repo repository.Repository, gen *snowflake.Generator) *Service {
	return &Service{
		repo: repo,
		gen:  gen,
	}
}

// RandomGif возвращает случайную гифку из категории.
// При пустой строке категории возвращается ErrEmptyCategory; если в категории
// нет записей, ошибка приходит из репозитория как repository.ErrGifNotFound
func (s *Service) RandomGif(category string) (models.Gif, error) {
	if category == "" {
		return models.Gif{}, ErrEmptyCategory
	}
	return s.repo.GetRandomByCategory(category)
}

// AddGif генерирует идентификатор, сохраняет гифку и возвращает
// идентификатор созданной записи
func (s *Service) AddGif(url, category string) (int64, error) {
	if url == "" {
		return 0, ErrEmptyURL
	}
	if category == "" {
		return 0, ErrEmptyCategory
	}
	id, err := s.gen.Generate()
	if err != nil {
		return 0, err
	}
	return s.repo.Insert(models.Gif{
		ID:       id,
		URL:      url,
		Category: category,
	})
}
