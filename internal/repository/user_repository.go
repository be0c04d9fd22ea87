package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/BradleyLewis08/uniform-store/internal/model"
	"github.com/BradleyLewis08/uniform-store/internal/utils"
)

// UserRepo persists registered accounts in the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

// Create inserts a customer account and returns its ID. The password is
// hashed with the normalized email as salt before it is stored; plaintext
// never reaches the database.
func (r *UserRepo) Create(ctx context.Context, firstName, lastName, email, password string, iterations int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash := utils.HashPassword(email, password, iterations)
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, first_name, last_name, password_hash, role) VALUES (?,?,?,?,?)",
		email, firstName, lastName, hash, model.RoleCustomer)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,first_name,last_name,password_hash,role,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,first_name,last_name,password_hash,role,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Authenticate hashes the supplied password with the account's email as
// salt and looks for an exact match. It returns sql.ErrNoRows for both an
// unknown email and a wrong password so callers cannot tell the two
// apart.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string, iterations int) (model.User, error) {
	u, err := r.GetByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, u.Email, password, iterations) {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}
