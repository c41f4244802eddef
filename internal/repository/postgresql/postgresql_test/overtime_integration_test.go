package postgresql_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/repository/postgresql"
	employeeService "github.com/cmlabs-hris/overtime-backend-go/internal/service/employee"
	overtimeService "github.com/cmlabs-hris/overtime-backend-go/internal/service/overtime"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	seedProductionID = "01926f3a-0000-7000-8000-00000000d001"
	seedJohnID       = "01926f3a-0000-7000-8000-000000000001"
)

func uniqueNIK(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano()%1_000_000_000)
}

func TestEmployeeService_ConcurrentCreateSameNIK(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	svc := employeeService.NewEmployeeService(
		postgresql.NewTxManager(db),
		postgresql.NewEmployeeRepository(db),
		postgresql.NewDepartmentRepository(db),
		postgresql.NewOvertimeRepository(db),
	)

	nik := uniqueNIK("C")
	const writers = 6

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created []string
		dupes   int
	)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
				NIK:          nik,
				FullName:     fmt.Sprintf("Writer %d", i),
				DepartmentID: seedProductionID,
				Position:     "Operator",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created = append(created, resp.ID)
			case errors.Is(err, employee.ErrDuplicateNIK):
				dupes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()
	t.Cleanup(func() { deleteEmployeeRows(t, db, created...) })

	assert.Len(t, created, 1)
	assert.Equal(t, writers-1, dupes)

	var count int
	require.NoError(t, db.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE nik = $1`, nik).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestEmployeeService_DeleteGuard(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	txManager := postgresql.NewTxManager(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	employees := employeeService.NewEmployeeService(txManager, employeeRepo, postgresql.NewDepartmentRepository(db), overtimeRepo)
	overtimes := overtimeService.NewOvertimeService(txManager, overtimeRepo, employeeRepo, false)

	emp, err := employees.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		NIK:          uniqueNIK("D"),
		FullName:     "Delete Guard",
		DepartmentID: seedProductionID,
		Position:     "Operator",
	})
	require.NoError(t, err)
	t.Cleanup(func() { deleteEmployeeRows(t, db, emp.ID) })

	ot, err := overtimes.CreateOvertime(ctx, overtime.CreateOvertimeRequest{
		EmployeeID:    emp.ID,
		Date:          "2024-10-30",
		TimeStart:     "2024-10-30 17:00",
		TimeFinish:    "2024-10-30 19:00",
		ActualOTHours: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	assert.True(t, ot.CalculatedOTHours.Equal(decimal.NewFromInt(4)))

	assert.ErrorIs(t, employees.DeleteEmployee(ctx, emp.ID), employee.ErrHasOvertime)

	require.NoError(t, overtimes.DeleteOvertime(ctx, ot.ID))
	require.NoError(t, employees.DeleteEmployee(ctx, emp.ID))

	_, err = employees.GetEmployee(ctx, emp.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestOvertimeRepository_ListSeed(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	repo := postgresql.NewOvertimeRepository(db)
	johnID := seedJohnID

	entries, total, err := repo.List(ctx, overtime.OvertimeFilter{EmployeeID: &johnID, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.GreaterOrEqual(t, total, int64(1))

	var seeded *overtime.OverTimeWithEmployee
	for i := range entries {
		if entries[i].ID == "01926f3a-0000-7000-8000-00000000a001" {
			seeded = &entries[i]
		}
	}
	require.NotNil(t, seeded)
	assert.Equal(t, "EMP001", seeded.NIK)
	assert.True(t, seeded.ActualOTHours.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, seeded.CalculatedOTHours.Equal(decimal.NewFromInt(5)))

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Date.After(entries[i-1].Date), "entries must be ordered by date descending")
	}
}

func TestEmployeeRepository_ExistsByNIK_Seed(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()

	repo := postgresql.NewEmployeeRepository(db)

	taken, err := repo.ExistsByNIK(ctx, "EMP001", nil)
	require.NoError(t, err)
	assert.True(t, taken)

	self := seedJohnID
	taken, err = repo.ExistsByNIK(ctx, "EMP001", &self)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ExistsByNIK(ctx, "emp001", nil)
	require.NoError(t, err)
	assert.False(t, taken)
}
