package database

import (
	"regexp"
	"strconv"
	"testing"

	"jobboard/internal/infra/persistence/database/migrations"
	"jobboard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnWidth(t *testing.T, ddl []byte, column string) int {
	t.Helper()

	m := regexp.MustCompile(`(?m)^\s*` + column + `\s+VARCHAR\((\d+)\)`).FindSubmatch(ddl)
	require.NotNil(t, m, "column %s has no VARCHAR width", column)

	width, err := strconv.Atoi(string(m[1]))
	require.NoError(t, err)

	return width
}

// Postgres rejects over-long values with SQLSTATE 22001, which would surface as a 500.
func TestPostgresAccountColumnsFitInputLimits(t *testing.T) {
	ddl, err := migrations.FS.ReadFile("postgres/00001_create_accounts.sql")
	require.NoError(t, err)

	assert.Equal(t, usecase.MaxUsernameLength, columnWidth(t, ddl, "username"))
	assert.GreaterOrEqual(t, columnWidth(t, ddl, "email"), usecase.MaxEmailLength)
}
