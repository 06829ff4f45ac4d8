package logsController

import (
	"time"

	. "studytrack/internal/models"

	"studytrack/internal/utils"
)

// CalculateStreaks reduces a user's study history to its current and longest
// consecutive-day streaks.
//
// logs must be filtered to questionsSolved > 0 and sorted by date descending;
// today must be start of day in loc, the zone the log dates were normalized
// with. Dates are compared as calendar days in loc, so the zone a stored
// timestamp is represented in does not matter.
//
// The current streak is anchored to today: entry i counts only when it lies
// exactly i days before today, so a history whose newest log is not from today
// scores zero no matter how long the run behind it is. The longest streak is
// unanchored and considers every consecutive run in the slice.
func CalculateStreaks(
	logs []*DailyLog,
	today time.Time,
	loc *time.Location,
) (currentStreak, longestStreak int) {
	for i, entry := range logs {
		if utils.DaysBetween(today, entry.Date, loc) != i {
			break
		}
		currentStreak++
	}

	run := 0
	for i, entry := range logs {
		if i == 0 {
			run = 1
			continue
		}

		if utils.DaysBetween(logs[i-1].Date, entry.Date, loc) == 1 {
			run++
			continue
		}

		if run > longestStreak {
			longestStreak = run
		}
		run = 1
	}
	if run > longestStreak {
		longestStreak = run
	}

	return currentStreak, longestStreak
}
