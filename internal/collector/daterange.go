package collector

import "time"

// windowDays is the length of the trailing window, including the reference day.
const windowDays = 7

// DateRange returns the trailing window of calendar dates ending at ref:
// ref-6 through ref, oldest first, normalized to midnight in ref's location.
func DateRange(ref time.Time) []time.Time {
	day := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	dates := make([]time.Time, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		dates = append(dates, day.AddDate(0, 0, -i))
	}
	return dates
}
