package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanOvertimeWithEmployee_Success(t *testing.T) {
	date := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 10, 1, 17, 0, 0, 0, time.UTC)
	finish := time.Date(2024, 10, 1, 19, 30, 0, 0, time.UTC)
	remarks := "Project deadline"

	row := stubRow{scanFn: func(dest ...any) error {
		require.Len(t, dest, 12)
		*(dest[0].(*string)) = "ot-1"
		*(dest[1].(*string)) = "emp-1"
		*(dest[2].(*time.Time)) = date
		*(dest[3].(*time.Time)) = start
		*(dest[4].(*time.Time)) = finish
		*(dest[5].(*decimal.Decimal)) = decimal.RequireFromString("2.5")
		*(dest[6].(*decimal.Decimal)) = decimal.RequireFromString("5.0")
		*(dest[7].(**string)) = &remarks
		*(dest[8].(*time.Time)) = start
		*(dest[9].(*time.Time)) = start
		*(dest[10].(*string)) = "John Anderson"
		*(dest[11].(*string)) = "EMP001"
		return nil
	}}

	ot, err := scanOvertimeWithEmployee(row)
	require.NoError(t, err)

	assert.Equal(t, "John Anderson", ot.EmployeeName)
	assert.Equal(t, "EMP001", ot.NIK)
	assert.True(t, ot.ActualOTHours.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, ot.CalculatedOTHours.Equal(decimal.NewFromInt(5)))
	assert.True(t, ot.TimeFinish.After(ot.TimeStart))
	require.NotNil(t, ot.Remarks)
	assert.Equal(t, remarks, *ot.Remarks)
}

func TestScanOvertime_NoRows(t *testing.T) {
	row := stubRow{scanFn: func(dest ...any) error {
		return pgx.ErrNoRows
	}}

	_, err := scanOvertime(row)
	assert.ErrorIs(t, err, overtime.ErrOvertimeNotFound)
}

func TestTranslateOvertimePgError(t *testing.T) {
	fk := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "overtimes_employee_id_fkey"}
	assert.ErrorIs(t, translateOvertimePgError(fk), overtime.ErrEmployeeNotFound)

	other := errors.New("other")
	assert.Equal(t, other, translateOvertimePgError(other))
}

func TestOvertimeRepository_ExistsByEmployeeID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOvertimeRepository(mock)
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM overtimes WHERE employee_id = $1)`)

	mock.ExpectQuery(query).WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(query).WithArgs("emp-2").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	has, err := repo.ExistsByEmployeeID(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.ExistsByEmployeeID(context.Background(), "emp-2")
	require.NoError(t, err)
	assert.False(t, has)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOvertimeRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOvertimeRepository(mock)
	query := regexp.QuoteMeta(`DELETE FROM overtimes WHERE id = $1`)

	mock.ExpectExec(query).WithArgs("ot-1").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(query).WithArgs("ot-missing").WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.Delete(context.Background(), "ot-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "ot-missing"), overtime.ErrOvertimeNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOvertimeRepository_List_CountError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOvertimeRepository(mock)
	employeeID := "emp-1"

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM overtimes o WHERE o.employee_id = $1`)).
		WithArgs(employeeID).
		WillReturnError(errors.New("relation does not exist"))

	_, _, err = repo.List(context.Background(), overtime.OvertimeFilter{EmployeeID: &employeeID, Page: 1, Limit: 10})
	assert.ErrorContains(t, err, "failed to count overtimes")
	assert.NoError(t, mock.ExpectationsWereMet())
}
