package overtime

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "01926f3a-0000-7000-8000-000000000001"

func ptrTime(t time.Time) *time.Time { return &t }

func validCandidate() Candidate {
	return Candidate{
		EmployeeID:    testEmployeeID,
		Date:          ptrTime(time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)),
		TimeStart:     ptrTime(time.Date(2024, 10, 1, 17, 0, 0, 0, time.UTC)),
		TimeFinish:    ptrTime(time.Date(2024, 10, 1, 19, 30, 0, 0, time.UTC)),
		ActualOTHours: decimal.RequireFromString("2.5"),
	}
}

func TestCalculateHours_DoublesHalfHourSteps(t *testing.T) {
	for halves := int64(0); halves <= 6; halves++ {
		actual := decimal.New(halves*5, -1)
		want := decimal.New(halves*10, -1)

		got := CalculateHours(actual)
		assert.Truef(t, got.Equal(want), "CalculateHours(%s) = %s, want %s", actual, got, want)
	}
}

func TestCalculateHours_SeedValues(t *testing.T) {
	cases := map[string]string{
		"1.0": "2.0",
		"1.5": "3.0",
		"2.0": "4.0",
		"2.5": "5.0",
		"3.0": "6.0",
	}
	for actual, want := range cases {
		got := CalculateHours(decimal.RequireFromString(actual))
		assert.Truef(t, got.Equal(decimal.RequireFromString(want)), "CalculateHours(%s) = %s, want %s", actual, got, want)
	}
}

func TestResolveCalculatedHours(t *testing.T) {
	actual := decimal.RequireFromString("2.5")
	supplied := decimal.RequireFromString("9")

	assert.True(t, ResolveCalculatedHours(actual, &supplied, false).Equal(decimal.NewFromInt(5)))
	assert.True(t, ResolveCalculatedHours(actual, nil, true).Equal(decimal.NewFromInt(5)))
	assert.True(t, ResolveCalculatedHours(actual, &supplied, true).Equal(supplied))
}

func TestValidate_AcceptsSeedExample(t *testing.T) {
	c := validCandidate()

	require.NoError(t, Validate(c))
	assert.True(t, CalculateHours(c.ActualOTHours).Equal(decimal.NewFromInt(5)))
}

func TestValidate_AcceptsCap(t *testing.T) {
	c := validCandidate()
	c.ActualOTHours = decimal.NewFromInt(3)

	assert.NoError(t, Validate(c))
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	err := Validate(Candidate{})

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	m := errs.ToMap()
	assert.Equal(t, "Employee is required", m["employee_id"])
	assert.Equal(t, "Date is required", m["date"])
	assert.Equal(t, "Time Start is required", m["time_start"])
	assert.Equal(t, "Time Finish is required", m["time_finish"])
}

func TestValidate_MissingFieldsRunBeforeDomainRules(t *testing.T) {
	c := validCandidate()
	c.Date = nil
	c.ActualOTHours = decimal.NewFromInt(10)

	var errs validator.ValidationErrors
	assert.True(t, errors.As(Validate(c), &errs))
}

func TestValidate_InvalidTimeRange(t *testing.T) {
	cases := []struct {
		name   string
		finish time.Time
		actual decimal.Decimal
		remark *string
	}{
		{"equal", time.Date(2024, 10, 1, 17, 0, 0, 0, time.UTC), decimal.NewFromInt(1), nil},
		{"before", time.Date(2024, 10, 1, 16, 0, 0, 0, time.UTC), decimal.NewFromInt(1), nil},
		{"before with hours over cap", time.Date(2024, 10, 1, 16, 0, 0, 0, time.UTC), decimal.NewFromInt(5), nil},
		{"before with long remarks", time.Date(2024, 9, 30, 17, 0, 0, 0, time.UTC), decimal.NewFromInt(-1), ptrString(strings.Repeat("x", 600))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCandidate()
			c.TimeFinish = ptrTime(tc.finish)
			c.ActualOTHours = tc.actual
			c.Remarks = tc.remark

			assert.ErrorIs(t, Validate(c), ErrInvalidTimeRange)
		})
	}
}

func TestValidate_HoursExceeded(t *testing.T) {
	for _, actual := range []string{"3.01", "3.5", "4", "24"} {
		c := validCandidate()
		c.ActualOTHours = decimal.RequireFromString(actual)

		assert.ErrorIsf(t, Validate(c), ErrOvertimeHoursExceeded, "actual=%s", actual)
	}
}

func TestValidate_ActualHoursNotComparedWithSpan(t *testing.T) {
	c := validCandidate()
	c.TimeFinish = ptrTime(c.TimeStart.Add(10 * time.Minute))
	c.ActualOTHours = decimal.NewFromInt(3)

	assert.NoError(t, Validate(c))
}

func TestValidate_FieldConstraints(t *testing.T) {
	c := validCandidate()
	c.ActualOTHours = decimal.NewFromInt(-1)
	c.Remarks = ptrString(strings.Repeat("r", MaxRemarksLength+1))

	var errs validator.ValidationErrors
	require.True(t, errors.As(Validate(c), &errs))
	m := errs.ToMap()
	assert.Contains(t, m, "actual_ot_hours")
	assert.Contains(t, m, "remarks")
}

func ptrString(s string) *string { return &s }
