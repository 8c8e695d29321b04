package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

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

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	q := regexp.MustCompile(`INSERT INTO users .* RETURNING id, created_at`)

	mock.ExpectQuery(q.String()).
		WithArgs("u@example.com", "argon2id$aa$bb").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("uuid-1", created))

	user, err := repo.Create(context.Background(), &models.User{
		Email:        "u@example.com",
		PasswordHash: "argon2id$aa$bb",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "uuid-1" {
		t.Fatalf("unexpected id: %q", user.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("u@example.com", "h").
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`))

	_, err := repo.Create(context.Background(), &models.User{Email: "u@example.com", PasswordHash: "h"})
	if !errors.Is(err, common.ErrorEmailTaken) {
		t.Fatalf("expected common.ErrorEmailTaken, got %v", err)
	}
}

func TestGetByEmail_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users`).
		WithArgs("u@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow("uuid-1", "u@example.com", "h", created))

	user, err := repo.GetByEmail(context.Background(), "u@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "uuid-1" || user.Email != "u@example.com" || user.PasswordHash != "h" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users`).
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
