package textutil

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Maria Silva", "maria silva"},
		{"José Antônio Conceição", "jose antonio conceicao"},
		{"  João  ", "joao"},
		{"ÁGUA", "agua"},
		{"", ""},
		{"12345678901", "12345678901"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
