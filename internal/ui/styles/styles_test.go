package styles

import (
	"testing"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestColumnAccent(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, string(Blue)},
		{1, string(Yellow)},
		{len(ColumnAccents), string(Blue)},
		{-3, string(Blue)},
	}

	for _, tt := range tests {
		if got := string(ColumnAccent(tt.index)); got != tt.want {
			t.Errorf("ColumnAccent(%d) = %s, want %s", tt.index, got, tt.want)
		}
	}
}

func TestHeader(t *testing.T) {
	s := New()

	active := s.Header(2, true)
	if active.GetForeground() != Blue {
		t.Errorf("active header foreground = %v, want %v", active.GetForeground(), Blue)
	}

	inactive := s.Header(2, false)
	if inactive.GetForeground() != ColumnAccent(2) {
		t.Errorf("inactive header foreground = %v, want %v", inactive.GetForeground(), ColumnAccent(2))
	}
	if len(inactive.Render("Todo")) == 0 {
		t.Error("Header rendered empty string")
	}
}
