package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tastehub/menuapi/internal/common"
	"github.com/tastehub/menuapi/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used by tests and by the
// in-memory repository manager.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byEmail: make(map[string]*models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorEmailTaken
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.byEmail[stored.Email] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *user
	return &out, nil
}
