package fetcher

// Outcome is the result of one day's successful fetch. A day the archive
// has no document for is still a successful outcome, not an error; it is
// reported with Missing set and the day is skipped by the caller.
type Outcome struct {
	// Rate is the fetched value. Only meaningful when Missing is false.
	Rate float64

	// Missing marks a day with no archive data.
	Missing bool
}

// Found wraps a fetched rate in a successful outcome.
func Found(rate float64) Outcome {
	return Outcome{Rate: rate}
}

// NoData is the outcome for a day the archive has nothing for.
func NoData() Outcome {
	return Outcome{Missing: true}
}
