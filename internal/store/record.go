package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rcliao/weightlog/internal/model"
)

// Record layout: date,time,weight. No header, no quoting.
const (
	fieldDate = iota
	fieldTime
	fieldWeight
	minFields
)

var errTooFewFields = errors.New("expected date,time,weight")

// ParseError reports the first malformed line of a log file.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// roundWeight rounds to the single decimal kept on disk.
func roundWeight(w float64) decimal.Decimal {
	return decimal.NewFromFloat(w).Round(1)
}

// FormatRecord encodes a sample as one CSV line, including the newline.
func FormatRecord(s model.Sample) string {
	return s.Time.Format(model.DateLayout) + "," +
		s.Time.Format(model.TimeLayout) + "," +
		roundWeight(s.Weight).StringFixed(1) + "\n"
}

// ParseRecord decodes one line. ok is false for an empty line, which carries
// no sample and is not an error.
func ParseRecord(line string) (s model.Sample, ok bool, err error) {
	if line == "" {
		return model.Sample{}, false, nil
	}
	fields := strings.Split(line, ",")
	if len(fields) < minFields {
		return model.Sample{}, false, errTooFewFields
	}

	at, err := time.ParseInLocation(model.DateTimeLayout,
		fields[fieldDate]+" "+fields[fieldTime], time.Local)
	if err != nil {
		return model.Sample{}, false, fmt.Errorf("parse timestamp: %w", err)
	}

	w, err := model.ParseKilograms(fields[fieldWeight])
	if err != nil {
		return model.Sample{}, false, fmt.Errorf("parse weight: %w", err)
	}

	return model.NewSample(w, at), true, nil
}

// parseRecords parses a whole file. Any malformed line fails the entire parse.
func parseRecords(content string) ([]model.Sample, Extrema, error) {
	var samples []model.Sample
	var ext Extrema

	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		s, ok, err := ParseRecord(line)
		if err != nil {
			return nil, Extrema{}, &ParseError{Line: i + 1, Text: line, Err: err}
		}
		if !ok {
			continue
		}
		ext = UpdateExtrema(ext, s.Weight)
		samples = append(samples, s)
	}
	return samples, ext, nil
}
