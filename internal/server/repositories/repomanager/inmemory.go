package repomanager

import (
	"context"
	"database/sql"

	"github.com/tastehub/menuapi/internal/dbx"
	"github.com/tastehub/menuapi/internal/server/repositories/menus"
	"github.com/tastehub/menuapi/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends shared in-memory repositories. The DBTX
// argument is ignored; state lives in the repositories themselves. Used by
// tests and local development without a database.
type InMemoryRepositoryManager struct {
	users *users.InMemoryRepository
	menus *menus.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		menus: menus.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Menus(db dbx.DBTX) menus.Repository {
	return m.menus
}
