package database

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueViolation_Postgres(t *testing.T) {
	err := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: indexAccountsEmail}, "insert")

	target, ok := uniqueViolation(err)
	assert.True(t, ok)
	assert.True(t, violatesAccountColumn(target, indexAccountsEmail, "email"))
	assert.False(t, violatesAccountColumn(target, indexAccountsUsername, "username"))
}

func TestUniqueViolation_OtherPostgresCode(t *testing.T) {
	_, ok := uniqueViolation(&pgconn.PgError{Code: pgForeignKeyViolation})
	assert.False(t, ok)

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
}

func TestUniqueViolation_GormTranslated(t *testing.T) {
	target, ok := uniqueViolation(gorm.ErrDuplicatedKey)
	assert.True(t, ok)
	assert.Empty(t, target)

	_, ok = uniqueViolation(errors.New("connection reset"))
	assert.False(t, ok)
}

func TestViolatesAccountColumn_SQLiteTarget(t *testing.T) {
	assert.True(t, violatesAccountColumn("accounts.username", indexAccountsUsername, "username"))
	assert.False(t, violatesAccountColumn("accounts.username", indexAccountsEmail, "email"))
}
