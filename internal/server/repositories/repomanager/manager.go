// Package repomanager vends repository implementations and owns schema
// migration for the backing store.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/tastehub/menuapi/internal/dbx"
	"github.com/tastehub/menuapi/internal/server/repositories/menus"
	"github.com/tastehub/menuapi/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Menus(db dbx.DBTX) menus.Repository
}
