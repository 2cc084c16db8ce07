// Package store provides the weight log engine backed by an append-only CSV file.
package store

import (
	"io"
	"log/slog"
	"time"

	"github.com/rcliao/weightlog/internal/model"
)

// Store defines the weight log interface.
type Store interface {
	// Append persists a new sample taken now and returns it.
	Append(weight float64) (model.Sample, error)

	// Samples returns every sample, oldest first.
	Samples() []model.Sample

	// Latest returns the last n samples in order. A negative n returns all.
	Latest(n int) []model.Sample

	// Plain writes every sample in its display form.
	Plain(w io.Writer) error

	// Raw copies the backing file to w.
	Raw(w io.Writer) error

	Len() int
	IsEmpty() bool
	Extrema() Extrema
	LogAgeDays() float64
}

// Confirmer answers yes/no questions on behalf of the user.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Option configures a Log at open time.
type Option func(*Log)

// WithConfirmer sets who is asked before a missing log file is created.
// Without one the file is never created on open.
func WithConfirmer(c Confirmer) Option {
	return func(l *Log) { l.confirm = c }
}

// WithClock overrides the time source used by Append.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// WithLogger sets the logger for load and append diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) { l.logger = logger }
}

// WithHeight sets the height in centimetres used for BMI in Stats.
func WithHeight(cm float64) Option {
	return func(l *Log) { l.heightCm = cm }
}
