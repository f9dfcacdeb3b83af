package core

import "testing"

func TestPluralize(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "commands"},
		{1, "command"},
		{2, "commands"},
	}

	for _, tt := range tests {
		if got := Pluralize(tt.count, "command", "commands"); got != tt.want {
			t.Errorf("Pluralize(%d) = %s, want %s", tt.count, got, tt.want)
		}
	}
}
