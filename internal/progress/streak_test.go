package progress

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func days(ss ...string) []time.Time {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		out[i] = day(s)
	}
	return out
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		today string
		want  int
	}{
		{"three consecutive ending today", days("2024-01-01", "2024-01-02", "2024-01-03"), "2024-01-03", 3},
		{"empty history", nil, "2024-01-03", 0},
		{"gap before today", days("2024-01-01", "2024-01-03"), "2024-01-03", 1},
		{"no activity today", days("2024-01-01", "2024-01-02"), "2024-01-03", 0},
		{"single day today", days("2024-06-15"), "2024-06-15", 1},
		{"long run with older gap", days("2024-01-01", "2024-01-05", "2024-01-06", "2024-01-07"), "2024-01-07", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreak(tt.dates, day(tt.today))
			if got != tt.want {
				t.Errorf("CurrentStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreak_TruncatesTimestamps(t *testing.T) {
	dates := []time.Time{
		day("2024-01-02").Add(9 * time.Hour),
		day("2024-01-03").Add(23*time.Hour + 59*time.Minute),
	}
	today := day("2024-01-03").Add(5 * time.Minute)
	if got := CurrentStreak(dates, today); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"run broken by gap", days("2024-01-01", "2024-01-02", "2024-01-05"), 2},
		{"empty history", nil, 0},
		{"single day", days("2024-03-10"), 1},
		{"all consecutive", days("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"), 4},
		{"longest run after a gap", days("2024-01-01", "2024-01-03", "2024-01-04", "2024-01-05"), 3},
		{"no consecutive days", days("2024-01-01", "2024-01-10", "2024-01-20"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LongestStreak(tt.dates)
			if got != tt.want {
				t.Errorf("LongestStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDay(t *testing.T) {
	stamp := time.Date(2024, 7, 4, 18, 30, 12, 0, time.UTC)
	want := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)
	if got := Day(stamp); !got.Equal(want) {
		t.Errorf("Day = %v, want %v", got, want)
	}
}
