package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/overtime-backend-go/internal/domain/overtime"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const overtimeColumns = `o.id, o.employee_id, o.date, o.time_start, o.time_finish,
			o.actual_ot_hours, o.calculated_ot_hours, o.remarks, o.created_at, o.updated_at`

type overtimeRepositoryImpl struct {
	db database.Pool
}

func NewOvertimeRepository(db database.Pool) overtime.OvertimeRepository {
	return &overtimeRepositoryImpl{db: db}
}

func scanOvertime(row rowScanner, extra ...any) (overtime.OverTime, error) {
	var ot overtime.OverTime
	dest := []any{
		&ot.ID, &ot.EmployeeID, &ot.Date, &ot.TimeStart, &ot.TimeFinish,
		&ot.ActualOTHours, &ot.CalculatedOTHours, &ot.Remarks, &ot.CreatedAt, &ot.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OverTime{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OverTime{}, err
	}
	return ot, nil
}

func scanOvertimeWithEmployee(row rowScanner) (overtime.OverTimeWithEmployee, error) {
	var employeeName, nik string
	ot, err := scanOvertime(row, &employeeName, &nik)
	if err != nil {
		return overtime.OverTimeWithEmployee{}, err
	}
	return overtime.OverTimeWithEmployee{OverTime: ot, EmployeeName: employeeName, NIK: nik}, nil
}

func translateOvertimePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return overtime.ErrEmployeeNotFound
	}
	return err
}

// GetByID implements overtime.OvertimeRepository.
func (o *overtimeRepositoryImpl) GetByID(ctx context.Context, id string) (overtime.OverTimeWithEmployee, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT ` + overtimeColumns + `, e.full_name, e.nik
		FROM overtimes o
		INNER JOIN employees e ON e.id = o.employee_id
		WHERE o.id = $1
	`

	found, err := scanOvertimeWithEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, overtime.ErrOvertimeNotFound) {
			return overtime.OverTimeWithEmployee{}, err
		}
		return overtime.OverTimeWithEmployee{}, fmt.Errorf("failed to get overtime with id %s: %w", id, err)
	}
	return found, nil
}

// List implements overtime.OvertimeRepository.
func (o *overtimeRepositoryImpl) List(ctx context.Context, filter overtime.OvertimeFilter) ([]overtime.OverTimeWithEmployee, int64, error) {
	q := GetQuerier(ctx, o.db)

	var (
		where []string
		args  []any
	)
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, fmt.Sprintf("o.employee_id = $%d", len(args)))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM overtimes o ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtimes: %w", err)
	}

	args = append(args, filter.Limit, pagination.Offset(filter.Page, filter.Limit))
	query := fmt.Sprintf(`
		SELECT %s, e.full_name, e.nik
		FROM overtimes o
		INNER JOIN employees e ON e.id = o.employee_id
		%s
		ORDER BY o.date DESC, o.id DESC
		LIMIT $%d OFFSET $%d
	`, overtimeColumns, whereClause, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtimes: %w", err)
	}
	defer rows.Close()

	overtimes := make([]overtime.OverTimeWithEmployee, 0, filter.Limit)
	for rows.Next() {
		ot, err := scanOvertimeWithEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		overtimes = append(overtimes, ot)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return overtimes, total, nil
}

// Create implements overtime.OvertimeRepository.
func (o *overtimeRepositoryImpl) Create(ctx context.Context, ot overtime.OverTime) (overtime.OverTime, error) {
	q := GetQuerier(ctx, o.db)

	if ot.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return overtime.OverTime{}, fmt.Errorf("generate overtime id: %w", err)
		}
		ot.ID = id.String()
	}

	query := `
		INSERT INTO overtimes AS o (
			id, employee_id, date, time_start, time_finish, actual_ot_hours, calculated_ot_hours, remarks
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + overtimeColumns

	created, err := scanOvertime(q.QueryRow(ctx, query,
		ot.ID, ot.EmployeeID, ot.Date, ot.TimeStart, ot.TimeFinish,
		ot.ActualOTHours, ot.CalculatedOTHours, ot.Remarks,
	))
	if err != nil {
		return overtime.OverTime{}, translateOvertimePgError(err)
	}
	return created, nil
}

// Update implements overtime.OvertimeRepository.
func (o *overtimeRepositoryImpl) Update(ctx context.Context, ot overtime.OverTime) (overtime.OverTime, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE overtimes AS o
		SET employee_id = $1, date = $2, time_start = $3, time_finish = $4,
			actual_ot_hours = $5, calculated_ot_hours = $6, remarks = $7, updated_at = NOW()
		WHERE o.id = $8
		RETURNING ` + overtimeColumns

	updated, err := scanOvertime(q.QueryRow(ctx, query,
		ot.EmployeeID, ot.Date, ot.TimeStart, ot.TimeFinish,
		ot.ActualOTHours, ot.CalculatedOTHours, ot.Remarks, ot.ID,
	))
	if err != nil {
		return overtime.OverTime{}, translateOvertimePgError(err)
	}
	return updated, nil
}

// Delete implements overtime.OvertimeRepository.
func (o *overtimeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, o.db)

	tag, err := q.Exec(ctx, `DELETE FROM overtimes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime with id %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}
	return nil
}

// ExistsByEmployeeID implements employee.OvertimeLookup.
func (o *overtimeRepositoryImpl) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, o.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM overtimes WHERE employee_id = $1)`, employeeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
