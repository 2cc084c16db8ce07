package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewSampleDefaultsToNow(t *testing.T) {
	before := time.Now()
	s := NewSample(100, time.Time{})
	if s.Time.Before(before) {
		t.Errorf("expected timestamp >= %v, got %v", before, s.Time)
	}
	if age := s.AgeDays(); age < 0 {
		t.Errorf("expected non-negative age, got %v", age)
	}

	at := time.Date(2023, 1, 1, 8, 0, 0, 0, time.Local)
	s = NewSample(80, at)
	if !s.Time.Equal(at) {
		t.Errorf("expected %v, got %v", at, s.Time)
	}
}

func TestAgeDaysTruncatesHours(t *testing.T) {
	at := time.Date(2023, 1, 1, 8, 0, 0, 0, time.Local)
	s := NewSample(80, at)

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"same instant", at, 0},
		{"59 minutes", at.Add(59 * time.Minute), 0},
		{"one day", at.Add(24 * time.Hour), 1},
		{"36h59m", at.Add(36*time.Hour + 59*time.Minute), 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.AgeDaysAt(tt.now); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBMI(t *testing.T) {
	s := NewSample(100, time.Time{})
	if got := s.BMI(100); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
	// 30.864... truncates rather than rounds.
	if got := s.BMI(180); got != 30.86 {
		t.Errorf("expected 30.86, got %v", got)
	}
	s = NewSample(70, time.Time{})
	// 70 / 1.75^2 = 22.857...
	if got := s.BMI(175); got != 22.85 {
		t.Errorf("expected 22.85, got %v", got)
	}
}

func TestStringAt(t *testing.T) {
	at := time.Date(2023, 1, 2, 7, 5, 0, 0, time.Local)
	s := NewSample(81.5, at)
	got := s.StringAt(at.Add(36 * time.Hour))
	want := "2023-01-02 07:05 (1.5 days ago) 81.5 kg"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr error
	}{
		{"70.5", 70.5, nil},
		{" 71.2\n", 71.2, nil},
		{"999.9", 999.9, nil},
		{"0", 0, ErrWeightOutOfRange},
		{"-3", 0, ErrWeightOutOfRange},
		{"1000", 0, ErrWeightOutOfRange},
		{"70.55", 70.6, nil},
		{"0.04", 0, ErrWeightOutOfRange},
		{"999.97", 0, ErrWeightOutOfRange},
		{"NaN", 0, ErrWeightSyntax},
		{"Inf", 0, ErrWeightSyntax},
		{"0x1p6", 0, ErrWeightSyntax},
		{"seventy", 0, ErrWeightSyntax},
		{"70,5", 0, ErrWeightSyntax},
		{"", 0, ErrWeightSyntax},
	}
	for _, tt := range tests {
		got, err := ParseWeight(tt.in)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseWeight(%q): expected %v, got %v", tt.in, tt.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeight(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWeight(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseKilogramsIsBaseTen(t *testing.T) {
	if got, err := ParseKilograms("80.0"); err != nil || got != 80 {
		t.Errorf("expected 80, got %v err=%v", got, err)
	}
	for _, in := range []string{"0x1p6", "0X50", "NaN", "+Inf", " 80.0", "80,0"} {
		if _, err := ParseKilograms(in); !errors.Is(err, ErrWeightSyntax) {
			t.Errorf("ParseKilograms(%q): expected syntax error, got %v", in, err)
		}
	}
}
