package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-10-07"); !ok {
		t.Error("IsValidDate(2025-10-07) = false, want true")
	}
	for _, bad := range []string{"2025-13-01", "07/10/2025", "2025-10-7", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2025-10"); !ok {
		t.Error("IsValidMonth(2025-10) = false, want true")
	}
	for _, bad := range []string{"2025-13", "2025", "10-2025", ""} {
		if _, ok := IsValidMonth(bad); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", bad)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"08:00", "23:59", "08:00:30", "00:00"}
	invalid := []string{"24:00", "8h00", "08:60", "", "noon"}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsValidWeekday(t *testing.T) {
	for _, day := range []string{"monday", "sunday"} {
		if !IsValidWeekday(day) {
			t.Errorf("IsValidWeekday(%q) = false, want true", day)
		}
	}
	for _, day := range []string{"Monday", "mon", "feriado", ""} {
		if IsValidWeekday(day) {
			t.Errorf("IsValidWeekday(%q) = true, want false", day)
		}
	}
}
