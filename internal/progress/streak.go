package progress

import "time"

// Day truncates t to its UTC calendar day. Streaks operate on days, so
// timestamps must pass through here before comparison.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CurrentStreak returns the number of consecutive active days ending at
// today. It walks backward one calendar day at a time from today,
// counting while the day is present in dates, and stops at the first gap.
// dates must be distinct calendar days; order does not matter.
func CurrentStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	active := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		active[Day(d)] = true
	}

	streak := 0
	for day := Day(today); active[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive calendar days in
// dates. dates must be sorted ascending and hold distinct days.
// Empty input yields 0; a single day yields 1.
func LongestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	longest := 1
	run := 1
	prev := Day(dates[0])
	for _, d := range dates[1:] {
		day := Day(d)
		if day.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	return longest
}
