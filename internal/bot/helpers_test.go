package bot

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"segunda", "monday"},
		{"Segunda", "monday"},
		{"terça-feira", "tuesday"},
		{"terca", "tuesday"},
		{"  sábado ", "saturday"},
		{"domingo", "sunday"},
		{"feriado", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := parseDay(tt.input); got != tt.want {
			t.Errorf("parseDay(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDayIDForWeekday(t *testing.T) {
	tests := []struct {
		weekday time.Weekday
		want    string
	}{
		{time.Monday, "monday"},
		{time.Wednesday, "wednesday"},
		{time.Saturday, "saturday"},
		{time.Sunday, "sunday"},
	}
	for _, tt := range tests {
		if got := dayIDForWeekday(tt.weekday); got != tt.want {
			t.Errorf("dayIDForWeekday(%v) = %q, want %q", tt.weekday, got, tt.want)
		}
	}
}
