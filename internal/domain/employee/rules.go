package employee

import (
	"context"
	"fmt"
)

// NIKLookup answers whether an employee other than excludeID holds nik.
// excludeID is nil on create.
type NIKLookup interface {
	ExistsByNIK(ctx context.Context, nik string, excludeID *string) (bool, error)
}

// OvertimeLookup answers whether any overtime entry references an employee.
type OvertimeLookup interface {
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
}

// EnsureUniqueNIK rejects nik when another employee already holds it. The
// comparison is exact; nik is neither trimmed nor case-folded.
func EnsureUniqueNIK(ctx context.Context, lookup NIKLookup, nik string, selfID *string) error {
	exists, err := lookup.ExistsByNIK(ctx, nik, selfID)
	if err != nil {
		return fmt.Errorf("check NIK existence: %w", err)
	}
	if exists {
		return ErrDuplicateNIK
	}
	return nil
}

// EnsureDeletable rejects the deletion of an employee still referenced by overtime entries.
func EnsureDeletable(ctx context.Context, lookup OvertimeLookup, id string) error {
	hasOvertime, err := lookup.ExistsByEmployeeID(ctx, id)
	if err != nil {
		return fmt.Errorf("check overtime entries: %w", err)
	}
	if hasOvertime {
		return ErrHasOvertime
	}
	return nil
}
