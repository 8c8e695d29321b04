package menus

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tastehub/menuapi/internal/common"
	"github.com/tastehub/menuapi/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used by tests and by the
// in-memory repository manager. It enforces the same ownership boundary as
// the Postgres implementation.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]*models.Menu
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[int64]*models.Menu)}
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Menu
	for _, m := range r.items {
		if m.UserID == userID {
			out := *m
			result = append(result, &out)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *InMemoryRepository) GetByUser(ctx context.Context, userID string, id int64) (*models.Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[id]
	if !ok || m.UserID != userID {
		return nil, common.ErrorNotFound
	}
	out := *m
	return &out, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, menu *models.Menu) (*models.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *menu
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.items[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, menu *models.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[menu.ID]
	if !ok || m.UserID != menu.UserID {
		return common.ErrorNotFound
	}
	m.Title = menu.Title
	m.TimeMinutes = menu.TimeMinutes
	m.Price = menu.Price
	m.Description = menu.Description
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok || m.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) SetImageKey(ctx context.Context, userID string, id int64, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok || m.UserID != userID {
		return common.ErrorNotFound
	}
	m.ImageKey = key
	return nil
}
