package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		if _, exists := result[err.Field]; exists {
			continue
		}
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ExceedsLength reports whether s is longer than max characters.
func ExceedsLength(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

const (
	DateLayout        = "2006-01-02"
	DateTimeLayout    = "2006-01-02 15:04"
	dateTimeTLayout   = "2006-01-02T15:04"
	dateTimeSecLayout = "2006-01-02 15:04:05"
)

// IsValidDateTime checks if a string is a valid timestamp.
// Accepts ISO8601 ("2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00") as well as
// the form input layouts "2024-01-15 10:30", "2024-01-15T10:30" and "2024-01-15 10:30:00".
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	layouts := []string{time.RFC3339, time.RFC3339Nano, DateTimeLayout, dateTimeTLayout, dateTimeSecLayout}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, dateTimeStr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
