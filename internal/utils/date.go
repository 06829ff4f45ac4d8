package utils

import "time"

// StartOfDay truncates t to midnight in loc. Log dates are keyed by this
// instant, so two submissions during the same calendar day collide.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// DaysBetween returns the number of whole calendar days from earlier to later.
// Both instants are reduced to their calendar date in loc before subtraction,
// so a DST transition inside the interval cannot shift the count, and the zone
// a driver happens to scan a timestamp back in cannot change which day it
// falls on.
func DaysBetween(later, earlier time.Time, loc *time.Location) int {
	ly, lm, ld := later.In(loc).Date()
	ey, em, ed := earlier.In(loc).Date()

	a := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	b := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)

	return int(a.Sub(b) / (24 * time.Hour))
}
