package postgresql_test

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

const migrationsDir = "../../../../migrations"

// newTestDatabase connects to TEST_DATABASE_URL and applies the migrations,
// seed data included. Tests are skipped when the variable is unset.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, database.Migrate("up", migrationsDir, dsn))

	db, err := database.NewPostgreSQLDB(context.Background(), dsn, database.PoolOptions{MaxConns: 10, MinConns: 1})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return db
}

// deleteEmployeeRows removes rows created by a test, overtime entries first.
func deleteEmployeeRows(t *testing.T, db *database.DB, ids ...string) {
	t.Helper()
	ctx := context.Background()
	for _, id := range ids {
		_, err := db.Exec(ctx, `DELETE FROM overtimes WHERE employee_id = $1`, id)
		require.NoError(t, err)
		_, err = db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
		require.NoError(t, err)
	}
}
