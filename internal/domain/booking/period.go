package booking

import "time"

const DateLayout = "2006-01-02"

// EndDateFromHours derives the day-granularity end of a rental booked
// by hour count: start + ceil(hours/24) days, never less than one day.
func EndDateFromHours(start time.Time, hours int) time.Time {
	days := (hours + 23) / 24
	if days < 1 {
		days = 1
	}
	return start.AddDate(0, 0, days)
}
