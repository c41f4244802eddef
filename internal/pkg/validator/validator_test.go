package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"EMP001", false},
		{" EMP001 ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestExceedsLength(t *testing.T) {
	cases := []struct {
		input string
		max   int
		want  bool
	}{
		{"", 20, false},
		{"EMP001", 6, false},
		{"EMP0011", 6, true},
		{"Jalan Ké", 8, false},
	}
	for _, c := range cases {
		got := ExceedsLength(c.input, c.max)
		if got != c.want {
			t.Errorf("ExceedsLength(%q, %d) = %v, want %v", c.input, c.max, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	want := time.Date(2024, 10, 1, 17, 0, 0, 0, time.UTC)
	valid := []string{"2024-10-01T17:00:00Z", "2024-10-01 17:00", "2024-10-01T17:00", "2024-10-01 17:00:00"}
	for _, s := range valid {
		got, ok := IsValidDateTime(s)
		if !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("IsValidDateTime(%q) = %v, want %v", s, got, want)
		}
	}

	invalid := []string{"", "17:00", "2024-10-01", "01/10/2024 17:00"}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "nik", Message: "NIK is required"},
		{Field: "full_name", Message: "Full Name is required"},
	}
	got := errs.Error()
	want := "nik: NIK is required; full_name: Full Name is required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "nik", Message: "NIK is required"},
		{Field: "position", Message: "Position is required"},
		{Field: "nik", Message: "NIK must not exceed 20 characters"},
	}
	got := errs.ToMap()
	want := map[string]string{"nik": "NIK is required", "position": "Position is required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
