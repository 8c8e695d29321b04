// Package menus provides storage for menu records. Every read and write is
// scoped by owner: a record belonging to another user is reported as not
// found, never as forbidden.
package menus

import (
	"context"

	"github.com/tastehub/menuapi/internal/server/models"
)

type Repository interface {
	// ListByUser returns the user's menus ordered by descending id.
	ListByUser(ctx context.Context, userID string) ([]*models.Menu, error)
	// GetByUser returns the menu only if it exists and belongs to userID;
	// otherwise common.ErrorNotFound.
	GetByUser(ctx context.Context, userID string, id int64) (*models.Menu, error)
	Create(ctx context.Context, menu *models.Menu) (*models.Menu, error)
	// Update replaces the writable columns of the menu identified by
	// (menu.ID, menu.UserID); common.ErrorNotFound when no such row.
	Update(ctx context.Context, menu *models.Menu) error
	Delete(ctx context.Context, userID string, id int64) error
	SetImageKey(ctx context.Context, userID string, id int64, key string) error
}
