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

func TestIsValidDNI(t *testing.T) {
	valid := []string{"12345678", "000123456789", "87654321"}
	invalid := []string{"1234567", "1234567890123", "12a45678", "", "12345678 "}
	for _, dni := range valid {
		if !IsValidDNI(dni) {
			t.Errorf("IsValidDNI(%q) = false, want true", dni)
		}
	}
	for _, dni := range invalid {
		if IsValidDNI(dni) {
			t.Errorf("IsValidDNI(%q) = true, want false", dni)
		}
	}
}

func TestIsValidCompanyCode(t *testing.T) {
	valid := []string{"ACME", "A1", "NORTE-01", "XX-YY-ZZ"}
	invalid := []string{"a", "acme", "A", "WITH SPACE", "TOOLONGCODETOOLONGCODE", ""}
	for _, code := range valid {
		if !IsValidCompanyCode(code) {
			t.Errorf("IsValidCompanyCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidCompanyCode(code) {
			t.Errorf("IsValidCompanyCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseMinuteOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"06:50", 410, true},
		{"14:00", 840, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"14:60", 0, false},
		{"14", 0, false},
		{"14:00:00", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseMinuteOfDay(c.input)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseMinuteOfDay(%q) = (%d, %v), want (%d, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestParseClock(t *testing.T) {
	if _, ok := ParseClock("06:45:00"); !ok {
		t.Error("ParseClock(06:45:00) = false, want true")
	}
	for _, s := range []string{"06:45", "25:00:00", "garbage", ""} {
		if _, ok := ParseClock(s); ok {
			t.Errorf("ParseClock(%q) = true, want false", s)
		}
	}
}
