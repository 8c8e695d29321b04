// Package users provides storage for user accounts.
package users

import (
	"context"

	"github.com/tastehub/menuapi/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
