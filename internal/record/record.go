package record

import (
	"fmt"
	"math"
	"time"
)

// RateRecord is one validated daily exchange rate. Records are created by
// the collector after validation and never mutated afterwards. RetrievedAt
// is shared by every record of a single run.
type RateRecord struct {
	Date        time.Time
	Pair        string
	Rate        float64
	Source      string
	RetrievedAt time.Time
}

// ValidateRate confirms a fetched rate is a strictly positive finite
// number. A rate that fails here is a data-integrity problem, not a
// transport problem, and must never be retried.
func ValidateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("rate must be a finite number, got %v", rate)
	}
	if rate <= 0 {
		return fmt.Errorf("rate must be > 0, got %v", rate)
	}
	return nil
}
