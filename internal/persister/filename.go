package persister

import (
	"fmt"
	"time"
)

const fileExtension = ".parquet"

// Filename builds the timestamped output filename
// <prefix>_<YYYY-MM-DD>_<HHMMSS>.parquet from wall-clock time.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s%s", prefix, now.Format("2006-01-02"), now.Format("150405"), fileExtension)
}
