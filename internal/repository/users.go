package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

const userColumns = `id, email, password_hash, display_name, role, is_active, created_at, version`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	dst := []any{&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.Role, &user.IsActive, &user.CreatedAt, &user.Version}
	if err := row.Scan(dst...); err != nil {
		return nil, err
	}
	return user, nil
}

// NormalizeEmail is the form emails are stored and looked up in, so
// "Manager@Test.com " and "manager@test.com" are one account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *Repository) GetUserByID(id int64) (*domain.User, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.dbpool.QueryRowContext(ctx, query, id))
}

func (r *Repository) GetUserByEmail(email string) (*domain.User, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.dbpool.QueryRowContext(ctx, query, NormalizeEmail(email)))
}

// GetAllUsers lists accounts by id. An empty role lists every account.
func (r *Repository) GetAllUsers(role domain.Role) ([]*domain.User, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE $1::text = '' OR role = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, string(role))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateUser writes the mutable fields of user. sql.ErrNoRows means the
// account changed since it was read.
func (r *Repository) UpdateUser(user *domain.User) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE users
		SET
			password_hash = $1,
			display_name = $2,
			role = $3,
			is_active = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	args := []any{user.PasswordHash, user.DisplayName, user.Role, user.IsActive, user.ID, user.Version}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.Version)
}

// DeleteUser returns sql.ErrNoRows when there is no account with id.
func (r *Repository) DeleteUser(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// CreateUser inserts an active account. A taken email fails on the
// users_email_key constraint.
func (r *Repository) CreateUser(user *domain.User) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	user.Email = NormalizeEmail(user.Email)

	query := `
		INSERT INTO users (email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, version
	`

	args := []any{user.Email, user.PasswordHash, user.DisplayName, user.Role}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.Version)
}

// EnsureUser creates user unless its email is already taken. It reports
// whether the account was created; an existing account is left untouched.
func (r *Repository) EnsureUser(user *domain.User) (bool, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	user.Email = NormalizeEmail(user.Email)

	query := `
		INSERT INTO users (email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, is_active, created_at, version
	`

	args := []any{user.Email, user.PasswordHash, user.DisplayName, user.Role}
	err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.Version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, err
	}

	return true, nil
}

func (r *Repository) EmailInUse(email string) (bool, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	inUse := false
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	if err := r.dbpool.QueryRowContext(ctx, query, NormalizeEmail(email)).Scan(&inUse); err != nil {
		return false, err
	}

	return inUse, nil
}
