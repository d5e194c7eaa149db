package seed

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

type UserStore interface {
	CreateUser(user *domain.User) error
}

type TestAccount struct {
	Email       string
	DisplayName string
	Role        domain.Role
}

var TestAccounts = []TestAccount{
	{Email: "manager@test.com", DisplayName: "Test Manager", Role: domain.RoleManager},
	{Email: "operator@test.com", DisplayName: "Test Operator", Role: domain.RoleOperator},
}

// CreateTestAccounts creates every test account with password. Accounts
// that already exist are reported and skipped. It returns how many were
// created.
func CreateTestAccounts(store UserStore, password string) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, a := range TestAccounts {
		user := &domain.User{
			Email:        a.Email,
			PasswordHash: string(hash),
			DisplayName:  a.DisplayName,
			Role:         a.Role,
		}

		if err := store.CreateUser(user); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "users_email_key" {
				slog.Info("test account already exists", "email", a.Email)
				continue
			}
			return created, err
		}

		created++
		slog.Info("test account created", "email", a.Email, "role", a.Role)
	}

	return created, nil
}
