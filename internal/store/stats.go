package store

import (
	"os"
	"time"
)

// Stats holds log statistics.
type Stats struct {
	Path       string     `json:"path"`
	Status     string     `json:"status"`
	Degraded   bool       `json:"degraded,omitempty"`
	SizeBytes  int64      `json:"size_bytes"`
	Entries    int        `json:"entries"`
	Min        *float64   `json:"min,omitempty"`
	Max        *float64   `json:"max,omitempty"`
	First      *time.Time `json:"first,omitempty"`
	Last       *time.Time `json:"last,omitempty"`
	LogAgeDays float64    `json:"log_age_days"`
	Latest     *float64   `json:"latest,omitempty"`
	HeightCm   float64    `json:"height_cm,omitempty"`
	LatestBMI  *float64   `json:"latest_bmi,omitempty"`
	LoadError  string     `json:"load_error,omitempty"`
}

// Stats returns a summary of the log.
func (l *Log) Stats() *Stats {
	st := &Stats{
		Path:       l.path,
		Status:     l.status.String(),
		Degraded:   l.status.Degraded(),
		Entries:    len(l.samples),
		LogAgeDays: l.LogAgeDays(),
		HeightCm:   l.heightCm,
	}

	if info, err := os.Stat(l.path); err == nil {
		st.SizeBytes = info.Size()
	}
	if l.err != nil {
		st.LoadError = l.err.Error()
	}
	if l.extrema.Valid {
		lo, hi := l.extrema.Min, l.extrema.Max
		st.Min, st.Max = &lo, &hi
	}
	if n := len(l.samples); n > 0 {
		first, last := l.samples[0], l.samples[n-1]
		st.First, st.Last = &first.Time, &last.Time
		latest := last.Weight
		st.Latest = &latest
		if l.heightCm > 0 {
			bmi := last.BMI(l.heightCm)
			st.LatestBMI = &bmi
		}
	}
	return st
}
