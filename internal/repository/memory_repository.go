package repository

import (
	"math/rand/v2"
	"sync"

	"github.com/tempizhere/gogif/internal/models"
)

// MemoryRepository реализует интерфейс Repository с хранением в памяти
type MemoryRepository struct {
	mu    sync.RWMutex
	store []models.Gif
}

// NewMemoryRepository создаёт новый экземпляр MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// GetRandomByCategory возвращает случайную гифку из категории
func (r *MemoryRepository) GetRandomByCategory(category string) (models.Gif, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Gif, 0)
	for _, gif := range r.store {
		if gif.Category == category {
			matches = append(matches, gif)
		}
	}
	if len(matches) == 0 {
		return models.Gif{}, ErrGifNotFound
	}
	return matches[rand.IntN(len(matches))], nil
}

// Insert сохраняет гифку в хранилище
func (r *MemoryRepository) Insert(gif models.Gif) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store = append(r.store, gif)
	return gif.ID, nil
}

// Clear очищает хранилище
func (r *MemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store = nil
}

// Len возвращает количество записей в хранилище
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}
