package validator

import "testing"

func TestValidatorKeepsFirstError(t *testing.T) {
	v := New()
	v.Check(false, "email", "must be provided")
	v.Check(false, "email", "must be a valid email")
	v.Check(true, "name", "must be provided")
	v.AddError("password", "must be at least 6 bytes long")

	if v.Valid() {
		t.Fatal("expected validator to be invalid")
	}

	if got := v.Errors["email"]; got != "must be provided" {
		t.Errorf("email error = %q, want %q", got, "must be provided")
	}

	keys := v.Keys()
	if len(keys) != 2 || keys[0] != "email" || keys[1] != "password" {
		t.Errorf("keys = %v, want [email password]", keys)
	}
}

func TestMatchesEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"reader@example.com", true},
		{"a.b+c@sub.example.org", true},
		{"not-an-email", false},
		{"missing@", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Matches(tt.email, EmailRX); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("https://example.com/image.jpg") {
		t.Error("expected https URL to be valid")
	}
	if IsURL("/relative/path") {
		t.Error("expected relative path to be invalid")
	}
	if IsURL("ftp://example.com/file") {
		t.Error("expected ftp URL to be invalid")
	}
}

func TestPermittedValue(t *testing.T) {
	if !PermittedValue("week", "day", "week", "month") {
		t.Error("expected week to be permitted")
	}
	if PermittedValue("year", "day", "week", "month") {
		t.Error("expected year to be rejected")
	}
}
