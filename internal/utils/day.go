package utils

import "time"

// DayBounds returns the half-open interval [start of now's day, start of the
// next day) in now's location. Day arithmetic goes through time.Date so DST
// transitions yield 23 or 25 hour days.
func DayBounds(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return start, end
}

// IsDueToday reports whether deadline falls on now's local calendar day.
func IsDueToday(deadline *time.Time, now time.Time) bool {
	if deadline == nil {
		return false
	}
	start, end := DayBounds(now)
	return !deadline.Before(start) && deadline.Before(end)
}

// ResolveLocation loads an IANA zone name, falling back to the server's zone.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}
