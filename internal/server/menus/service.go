// Package menus implements the owner-scoped menu operations: every read and
// write is filtered by the authenticated user's id, and a record owned by
// someone else is reported as not found.
package menus

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tastehub/menuapi/internal/common"
	"github.com/tastehub/menuapi/internal/dbx"
	sc "github.com/tastehub/menuapi/internal/server/config"
	"github.com/tastehub/menuapi/internal/server/models"
	"github.com/tastehub/menuapi/internal/server/repositories/repomanager"
)

type Service struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewService(db *sql.DB, rm repomanager.RepositoryManager, config *sc.Config) *Service {
	return &Service{
		db:          db,
		repomanager: rm,
		config:      config,
	}
}

// List returns the user's menus, most recently created first.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Menu, error) {
	return s.repomanager.Menus(s.db).ListByUser(ctx, userID)
}

// Get returns the menu only if it belongs to userID; common.ErrorNotFound
// otherwise.
func (s *Service) Get(ctx context.Context, userID string, id int64) (*models.Menu, error) {
	return s.repomanager.Menus(s.db).GetByUser(ctx, userID, id)
}

// Create validates the input and persists a new menu owned by userID. The
// owner comes from the authenticated caller, never from the payload.
func (s *Service) Create(ctx context.Context, userID string, input MenuInput) (*models.Menu, error) {
	if err := input.Validate(false); err != nil {
		return nil, err
	}

	menu := &models.Menu{UserID: userID}
	input.apply(menu, false)

	menu, err := s.repomanager.Menus(s.db).Create(ctx, menu)
	if err != nil {
		return nil, fmt.Errorf("error creating menu: %w", err)
	}

	return menu, nil
}

// Update modifies the menu identified by (userID, id). With partial set only
// the fields present in input change; otherwise all writable fields are
// replaced. Owner, id, and created_at always keep their stored values.
func (s *Service) Update(ctx context.Context, userID string, id int64, input MenuInput, partial bool) (*models.Menu, error) {
	if err := input.Validate(partial); err != nil {
		return nil, err
	}

	repo := s.repomanager.Menus(s.db)

	menu, err := repo.GetByUser(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	input.apply(menu, partial)

	if err := repo.Update(ctx, menu); err != nil {
		return nil, err
	}

	return menu, nil
}

// Delete removes the menu identified by (userID, id).
func (s *Service) Delete(ctx context.Context, userID string, id int64) error {
	return s.repomanager.Menus(s.db).Delete(ctx, userID, id)
}

func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("menus/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

// AttachImage reserves an object-storage key for the menu's image, stores it
// on the (owner-scoped) record, and returns the key together with a presigned
// PUT URL the client uploads to.
func (s *Service) AttachImage(ctx context.Context, userID string, id int64) (string, string, error) {
	key := randomStorageKey()

	url, err := s.presignPut(ctx, key)
	if err != nil {
		return "", "", err
	}

	err = s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Menus(tx).SetImageKey(ctx, userID, id, key)
	})
	if err != nil {
		return "", "", err
	}

	return key, url, nil
}

// ImageURL returns a presigned GET URL for the menu's attached image.
// common.ErrorNotFound when the menu is absent, not owned, or has no image.
func (s *Service) ImageURL(ctx context.Context, userID string, id int64) (string, error) {
	menu, err := s.repomanager.Menus(s.db).GetByUser(ctx, userID, id)
	if err != nil {
		return "", err
	}
	if menu.ImageKey == "" {
		return "", fmt.Errorf("menu %d has no image: %w", id, common.ErrorNotFound)
	}

	return s.presignGet(ctx, menu.ImageKey)
}

// withTx runs fn transactionally when a database is attached; the in-memory
// manager has no transactions, so fn runs directly then.
func (s *Service) withTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}
