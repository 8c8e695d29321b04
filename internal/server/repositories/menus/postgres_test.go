package menus

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"github.com/tastehub/menuapi/internal/common"
	"github.com/tastehub/menuapi/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func menuColumns() []string {
	return []string{"id", "user_id", "title", "time_minutes", "price", "description", "image_key", "created_at"}
}

func TestListByUser_OrderedAndScoped(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	q := regexp.MustCompile(`SELECT .* FROM menus\s+WHERE user_id = \$1\s+ORDER BY id DESC`)

	mock.ExpectQuery(q.String()).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(menuColumns()).
			AddRow(int64(2), "u1", "Dinner", 45, "22.50", "", "", created).
			AddRow(int64(1), "u1", "Lunch", 30, "15.00", "soup and bread", "", created))

	result, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 menus, got %d", len(result))
	}
	if result[0].ID != 2 || result[1].ID != 1 {
		t.Fatalf("unexpected order: %d, %d", result[0].ID, result[1].ID)
	}
	if !result[1].Price.Equal(decimal.RequireFromString("15.00")) {
		t.Fatalf("unexpected price: %s", result[1].Price)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByUser_NotFoundForForeignRecord(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	// the query carries the user_id predicate, so a foreign record yields no rows
	q := regexp.MustCompile(`SELECT .* FROM menus\s+WHERE id = \$1 AND user_id = \$2`)
	mock.ExpectQuery(q.String()).
		WithArgs(int64(7), "intruder").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUser(context.Background(), "intruder", 7)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestCreate_ReturnsGeneratedFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	price := decimal.RequireFromString("15.00")

	q := regexp.MustCompile(`INSERT INTO menus .* RETURNING id, created_at`)
	mock.ExpectQuery(q.String()).
		WithArgs("u1", "Sample menu", 30, price, "This is a sample menu.").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), created))

	menu, err := repo.Create(context.Background(), &models.Menu{
		UserID:      "u1",
		Title:       "Sample menu",
		TimeMinutes: 30,
		Price:       price,
		Description: "This is a sample menu.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if menu.ID != 1 {
		t.Fatalf("unexpected id: %d", menu.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_SuccessRowsAffected1(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	price := decimal.RequireFromString("9.99")
	q := regexp.MustCompile(`UPDATE menus\s+SET title = \$1, time_minutes = \$2, price = \$3, description = \$4\s+WHERE id = \$5 AND user_id = \$6`)

	mock.ExpectExec(q.String()).
		WithArgs("New title", 20, price, "desc", int64(3), "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &models.Menu{
		ID: 3, UserID: "u1", Title: "New title", TimeMinutes: 20, Price: price, Description: "desc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_NotOwnedRowsAffected0(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE menus`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Menu{ID: 3, UserID: "intruder"})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_NotOwnedRowsAffected0(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM menus WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(5), "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "intruder", 5)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM menus WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(5), "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "u1", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetImageKey_Scoped(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE menus SET image_key = \$1 WHERE id = \$2 AND user_id = \$3`).
		WithArgs("users/2026/9/1/key", int64(4), "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetImageKey(context.Background(), "u1", 4, "users/2026/9/1/key"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
