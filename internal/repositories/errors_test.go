package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/ilansitesi/classifieds/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// Driver-level failure paths, exercised against sqlmock so no database
// is needed.

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByEmail_DriverError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserReadRepository(sqlxDB)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(errors.New("connection reset"))

	user, err := repo.GetByEmail(context.Background(), "ayse@example.com")
	assert.EqualError(t, err, "connection reset")
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save_DriverError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserWriteRepository(sqlxDB)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("unique violation"))

	_, err := repo.Save(context.Background(), "A", "B", "a@example.com", "0", "hash")
	assert.EqualError(t, err, "unique violation")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Update_NoRows(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserWriteRepository(sqlxDB)

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), uuid.New(), "A", "B", "a@example.com", "0")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingWriteRepository_Save_DriverError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewListingWriteRepository(sqlxDB)

	mock.ExpectQuery("INSERT INTO listings").
		WillReturnError(errors.New("connection reset"))

	err := repo.Save(context.Background(), &models.ListingDB{
		ListingID: uuid.New(),
		OwnerID:   uuid.New(),
		Images:    models.StringSlice{"a.jpg"},
	})
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingWriteRepository_Update_NoRows(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewListingWriteRepository(sqlxDB)

	// owner mismatch: the RETURNING query yields no row
	mock.ExpectQuery("UPDATE listings").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	err := repo.Update(context.Background(), &models.ListingDB{
		ListingID: uuid.New(),
		OwnerID:   uuid.New(),
		Images:    models.StringSlice{"a.jpg"},
	})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingWriteRepository_Delete_DriverError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewListingWriteRepository(sqlxDB)

	mock.ExpectExec("DELETE FROM listings").
		WillReturnError(errors.New("connection reset"))

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
