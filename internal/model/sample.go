// Package model defines the core weight journal data types.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Layouts used for both display and persistence.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = DateLayout + " " + TimeLayout
)

// MaxWeight is the exclusive upper bound for a body weight in kilograms.
const MaxWeight = 1000.0

var (
	// ErrWeightSyntax is returned when a weight is not a base-10 number.
	ErrWeightSyntax = errors.New("invalid number")
	// ErrWeightOutOfRange is returned for weights outside (0, MaxWeight).
	ErrWeightOutOfRange = errors.New("weight out of range")
)

// Sample is a single weight measurement. It is a plain value and does not
// validate its weight.
type Sample struct {
	Weight float64   `json:"weight"`
	Time   time.Time `json:"time"`
}

// NewSample returns a Sample taken at the given time, or now when at is zero.
func NewSample(weight float64, at time.Time) Sample {
	if at.IsZero() {
		at = time.Now()
	}
	return Sample{Weight: weight, Time: at}
}

// AgeDays returns the sample age in days.
func (s Sample) AgeDays() float64 {
	return s.AgeDaysAt(time.Now())
}

// AgeDaysAt returns the age relative to now. Sub-hour precision is dropped
// before converting to days.
func (s Sample) AgeDaysAt(now time.Time) float64 {
	hours := int64(now.Sub(s.Time) / time.Hour)
	return float64(hours) / 24
}

// BMI computes the body mass index for the given height, truncated to two
// decimals.
func (s Sample) BMI(heightCm float64) float64 {
	m := decimal.NewFromFloat(heightCm).Div(decimal.NewFromInt(100))
	bmi := decimal.NewFromFloat(s.Weight).Div(m.Mul(m))
	return bmi.Truncate(2).InexactFloat64()
}

// Date returns the sample date in DateLayout.
func (s Sample) Date() string { return s.Time.Format(DateLayout) }

// Clock returns the sample time of day in TimeLayout.
func (s Sample) Clock() string { return s.Time.Format(TimeLayout) }

func (s Sample) String() string {
	return s.StringAt(time.Now())
}

// StringAt renders the sample with its age relative to now.
func (s Sample) StringAt(now time.Time) string {
	return fmt.Sprintf("%s %s (%.1f days ago) %s kg",
		s.Date(), s.Clock(), s.AgeDaysAt(now), strconv.FormatFloat(s.Weight, 'f', -1, 64))
}

// ParseKilograms parses a plain base-10 number. Hex floats, NaN and Inf are
// rejected.
func ParseKilograms(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrWeightSyntax, s)
	}
	return d.InexactFloat64(), nil
}

// ParseWeight parses user input into a weight rounded to the one decimal kept
// in the log, and checks the rounded value is in range.
func ParseWeight(input string) (float64, error) {
	in := strings.TrimSpace(input)
	d, err := decimal.NewFromString(in)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrWeightSyntax, in)
	}
	w := d.Round(1).InexactFloat64()
	if err := ValidateWeight(w); err != nil {
		return 0, err
	}
	return w, nil
}

// ValidateWeight reports whether w lies in (0, MaxWeight).
func ValidateWeight(w float64) error {
	// NaN fails both comparisons and lands here too.
	if !(w > 0 && w < MaxWeight) {
		return fmt.Errorf("%w: %v", ErrWeightOutOfRange, w)
	}
	return nil
}
