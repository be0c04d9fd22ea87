package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/BradleyLewis08/uniform-store/internal/model"
	"github.com/BradleyLewis08/uniform-store/internal/utils"
)

const testHashIterations = 1000 // keep tests fast; production uses a larger count

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mk, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mk
}

func TestUserRepo_Create(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewUserRepo(db)

	hash := utils.HashPassword("jo@x.com", "pw1", testHashIterations)
	mk.ExpectExec("INSERT INTO users").
		WithArgs("jo@x.com", "Jo", "Lee", hash, model.RoleCustomer).
		WillReturnResult(sqlmock.NewResult(7, 1))

	// The email is normalized before hashing and storing.
	id, err := repo.Create(context.Background(), "Jo", "Lee", " JO@x.com ", "pw1", testHashIterations)

	require.NoError(t, err)
	require.Equal(t, uint64(7), id)
	require.NoError(t, mk.ExpectationsWereMet())
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewUserRepo(db)

	mk.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'jo@x.com' for key 'users.email'"))

	_, err := repo.Create(context.Background(), "Jo", "Lee", "jo@x.com", "pw1", testHashIterations)

	require.ErrorIs(t, err, ErrEmailExists)
	require.NoError(t, mk.ExpectationsWereMet())
}

func userRows(email, passwordHash string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "email", "first_name", "last_name", "password_hash", "role", "created_at", "updated_at",
	}).AddRow(7, email, "Jo", "Lee", passwordHash, model.RoleCustomer, now, now)
}

func TestUserRepo_Authenticate(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewUserRepo(db)

	stored := utils.HashPassword("jo@x.com", "pw1", testHashIterations)
	mk.ExpectQuery("SELECT id,email,first_name,last_name,password_hash,role,created_at,updated_at FROM users").
		WithArgs("jo@x.com").
		WillReturnRows(userRows("jo@x.com", stored))

	u, err := repo.Authenticate(context.Background(), "jo@x.com", "pw1", testHashIterations)

	require.NoError(t, err)
	require.Equal(t, uint64(7), u.ID)
	require.Equal(t, model.RoleCustomer, u.Role)
}

func TestUserRepo_Authenticate_WrongPassword(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewUserRepo(db)

	stored := utils.HashPassword("jo@x.com", "pw1", testHashIterations)
	mk.ExpectQuery("SELECT id,email,first_name,last_name,password_hash,role,created_at,updated_at FROM users").
		WithArgs("jo@x.com").
		WillReturnRows(userRows("jo@x.com", stored))

	_, err := repo.Authenticate(context.Background(), "jo@x.com", "pw2", testHashIterations)

	// Indistinguishable from an unknown email.
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepo_Authenticate_UnknownEmail(t *testing.T) {
	db, mk := newMockDB(t)
	repo := NewUserRepo(db)

	mk.ExpectQuery("SELECT id,email,first_name,last_name,password_hash,role,created_at,updated_at FROM users").
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "first_name", "last_name", "password_hash", "role", "created_at", "updated_at",
		}))

	_, err := repo.Authenticate(context.Background(), "nobody@x.com", "pw1", testHashIterations)

	require.ErrorIs(t, err, sql.ErrNoRows)
}
