package textutil

import (
	"regexp"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hello, World!", "hello world"},
		{"  multiple   spaces\tand\ntabs  ", "multiple spaces and tabs"},
		{"The app is SLOW!!!", "the app is slow"},
		{"price: $1,234.56", "price 1 234 56"},
		{"snake_case_name", "snake case name"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{"Hello, World!", "a  b   c", "ALL CAPS", "mix3d Ch4rs & symbols"}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestCleanOutputCharset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+( [a-z0-9]+)*$`)
	inputs := []string{"Hello, World!", "über-cool façade", "tabs\t\tand\nnewlines", "100% done"}
	for _, in := range inputs {
		got := Clean(in)
		if got != "" && !valid.MatchString(got) {
			t.Errorf("Clean(%q) = %q contains invalid characters", in, got)
		}
	}
}
