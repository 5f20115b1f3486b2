package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/maven-leads-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestLeadRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLeadRepository(db)
	mock.ExpectQuery("INSERT INTO leads").
		WithArgs("Jane Doe", "jane@x.com", "555-0100", "Billing", "Need help", "es", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	lead := &models.Lead{
		Name:              "Jane Doe",
		Email:             "jane@x.com",
		Phone:             "555-0100",
		DropdownSelection: "Billing",
		Message:           "Need help",
		Language:          "es",
	}
	require.NoError(t, repo.Create(context.Background(), lead))
	assert.Equal(t, int64(7), lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestLeadRepositoryListNewestFirst(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLeadRepository(db)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "dropdown_selection", "message", "language", "created_at"}).
		AddRow(2, "Second", "b@x.com", "2", "Other", "hi", "en", now).
		AddRow(1, "First", "a@x.com", "1", "Billing", "hello", "en", now.Add(-time.Hour))
	mock.ExpectQuery("SELECT id, name, email").WillReturnRows(rows)

	leads, err := repo.ListNewestFirst(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Second", leads[0].Name)
}

func TestLeadRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLeadRepository(db)
	mock.ExpectExec("DELETE FROM leads").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))
}

func TestLeadRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewLeadRepository(db)
	mock.ExpectExec("DELETE FROM leads").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
