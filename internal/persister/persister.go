package persister

import (
	"fmt"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"cbrfetcher/internal/record"
)

// Row is the on-disk shape of one record. Field order fixes the parquet
// column order, which downstream readers rely on.
type Row struct {
	Date        string  `parquet:"date"`
	Pair        string  `parquet:"pair"`
	Rate        float64 `parquet:"rate"`
	Source      string  `parquet:"source"`
	RetrievedAt string  `parquet:"retrieved_at"`
}

const (
	dateLayout = "2006-01-02"
	// Second precision, no offset. The timestamp carries no timezone, so
	// none is written.
	timestampLayout = "2006-01-02T15:04:05"
)

// Write serializes records to a parquet file at path, one row per record.
// An empty record set is an error: there is nothing meaningful to persist.
func Write(records []record.RateRecord, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to save")
	}

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row{
			Date:        r.Date.Format(dateLayout),
			Pair:        r.Pair,
			Rate:        r.Rate,
			Source:      r.Source,
			RetrievedAt: r.RetrievedAt.Format(timestampLayout),
		})
	}

	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
