package menus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tastehub/menuapi/internal/common"
	"github.com/tastehub/menuapi/internal/dbx"
	"github.com/tastehub/menuapi/internal/server/models"
)

// PostgresRepository implements menu storage over a dbx.DBTX (*sql.DB or *sql.Tx).
// The user_id predicate in every statement is the ownership boundary.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Menu, error) {
	query := `
		SELECT id, user_id, title, time_minutes, price, description, image_key, created_at
		FROM menus
		WHERE user_id = $1
		ORDER BY id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select menus: %w", err)
	}
	defer rows.Close()

	var result []*models.Menu
	for rows.Next() {
		var item models.Menu
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.TimeMinutes, &item.Price,
			&item.Description, &item.ImageKey, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID string, id int64) (*models.Menu, error) {
	query := `
		SELECT id, user_id, title, time_minutes, price, description, image_key, created_at
		FROM menus
		WHERE id = $1 AND user_id = $2
	`
	menu := &models.Menu{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&menu.ID, &menu.UserID, &menu.Title, &menu.TimeMinutes, &menu.Price,
		&menu.Description, &menu.ImageKey, &menu.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return menu, nil
}

func (r *PostgresRepository) Create(ctx context.Context, menu *models.Menu) (*models.Menu, error) {
	query := `
		INSERT INTO menus (user_id, title, time_minutes, price, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		menu.UserID, menu.Title, menu.TimeMinutes, menu.Price, menu.Description,
	).Scan(&menu.ID, &menu.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return menu, nil
}

func (r *PostgresRepository) Update(ctx context.Context, menu *models.Menu) error {
	query := `
		UPDATE menus
		SET title = $1, time_minutes = $2, price = $3, description = $4
		WHERE id = $5 AND user_id = $6
	`
	res, err := r.db.ExecContext(ctx, query,
		menu.Title, menu.TimeMinutes, menu.Price, menu.Description, menu.ID, menu.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID string, id int64) error {
	query := `DELETE FROM menus WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkOneRow(res)
}

func (r *PostgresRepository) SetImageKey(ctx context.Context, userID string, id int64, key string) error {
	query := `UPDATE menus SET image_key = $1 WHERE id = $2 AND user_id = $3`

	res, err := r.db.ExecContext(ctx, query, key, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkOneRow(res)
}

// checkOneRow maps 0 affected rows to ErrorNotFound: either no such record,
// or it belongs to someone else. Callers cannot tell the two apart.
func checkOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
