package pagination

import (
	"fmt"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Validate checks page and limit and fills in defaults for zero values.
func Validate(page, limit *int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if *page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if *page == 0 {
		*page = DefaultPage
	}

	if *limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if *limit == 0 {
		*limit = DefaultLimit
	}
	if *limit > MaxLimit {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("limit must not exceed %d", MaxLimit),
		})
	}

	return errs
}

// Offset returns the number of rows to skip for page.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Showing renders the "21-40 of 150" range label.
func Showing(page, limit int, total int64) string {
	if total == 0 {
		return "0 of 0"
	}
	from := int64(Offset(page, limit)) + 1
	if from > total {
		return fmt.Sprintf("0 of %d", total)
	}
	return fmt.Sprintf("%d-%d of %d", from, min(int64(page*limit), total), total)
}
