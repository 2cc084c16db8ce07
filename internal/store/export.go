package store

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/weightlog/internal/model"
)

// ExportRecord is the JSON form of a sample.
type ExportRecord struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Weight  float64 `json:"weight"`
	AgeDays float64 `json:"age_days"`
}

// Export returns every sample as an ExportRecord, oldest first.
func (l *Log) Export() ([]ExportRecord, error) {
	now := l.now()
	records := make([]ExportRecord, 0, len(l.samples))
	for _, s := range l.samples {
		id, err := SampleID(s)
		if err != nil {
			return nil, err
		}
		records = append(records, ExportRecord{
			ID:      id,
			Date:    s.Date(),
			Time:    s.Clock(),
			Weight:  s.Weight,
			AgeDays: s.AgeDaysAt(now),
		})
	}
	return records, nil
}

// SampleID derives a stable ULID for a sample. The time part is the sample
// time and the entropy is taken from a hash of its CSV record, so the same
// line always yields the same id.
func SampleID(s model.Sample) (string, error) {
	sum := sha256.Sum256([]byte(FormatRecord(s)))
	id, err := ulid.New(ulid.Timestamp(s.Time), bytes.NewReader(sum[:]))
	if err != nil {
		return "", fmt.Errorf("sample id: %w", err)
	}
	return id.String(), nil
}
