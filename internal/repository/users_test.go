package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "manager@test.com", NormalizeEmail(" Manager@Test.COM "))
	assert.Equal(t, "operator@test.com", NormalizeEmail("operator@test.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch d := d.(type) {
		case *int64:
			*d = f.values[i].(int64)
		case *string:
			*d = f.values[i].(string)
		case *domain.Role:
			*d = domain.Role(f.values[i].(string))
		case *bool:
			*d = f.values[i].(bool)
		case *time.Time:
			*d = f.values[i].(time.Time)
		case *int32:
			*d = f.values[i].(int32)
		}
	}
	return nil
}

func TestScanUser(t *testing.T) {
	created := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	row := fakeRow{values: []any{int64(3), "operator@test.com", "hash", "Test Operator", "operator", true, created, int32(2)}}

	user, err := scanUser(row)
	require.NoError(t, err)
	assert.Equal(t, &domain.User{
		ID:           3,
		Email:        "operator@test.com",
		PasswordHash: "hash",
		DisplayName:  "Test Operator",
		Role:         domain.RoleOperator,
		IsActive:     true,
		CreatedAt:    created,
		Version:      2,
	}, user)

	_, err = scanUser(fakeRow{err: sql.ErrNoRows})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
