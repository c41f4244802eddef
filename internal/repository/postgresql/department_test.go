package postgresql

import (
	"context"
	"regexp"
	"testing"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/department"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentRepository_ExistsByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`)).
		WithArgs("dept-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByID(context.Background(), "dept-1")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDepartmentRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM departments`)).
		WithArgs("dept-missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "department_name", "description", "created_at", "updated_at"}))

	_, err = repo.GetByID(context.Background(), "dept-missing")
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
