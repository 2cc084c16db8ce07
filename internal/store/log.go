package store

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rcliao/weightlog/internal/model"
)

// Status records how a Log came to hold its samples.
type Status int

const (
	// StatusLoaded means the file existed and parsed cleanly.
	StatusLoaded Status = iota
	// StatusMissing means there was no file and none was created.
	StatusMissing
	// StatusCreated means there was no file and an empty one was created.
	StatusCreated
	// StatusUnreadable means the path is not a regular readable file.
	StatusUnreadable
	// StatusMalformed means a line failed to parse and nothing was loaded.
	StatusMalformed
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusMissing:
		return "missing"
	case StatusCreated:
		return "created"
	case StatusUnreadable:
		return "unreadable"
	case StatusMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Degraded reports whether the log is empty because its file could not be used.
func (s Status) Degraded() bool {
	return s == StatusUnreadable || s == StatusMalformed
}

// Log implements Store on top of a CSV file.
type Log struct {
	path     string
	samples  []model.Sample
	extrema  Extrema
	status   Status
	err      error
	confirm  Confirmer
	now      func() time.Time
	logger   *slog.Logger
	heightCm float64
}

var _ Store = (*Log)(nil)

// Open loads the log at path. A missing, unreadable or malformed file yields
// an empty Log; Status and Err tell these cases apart. The only error returned
// is a failure to create a missing file the Confirmer agreed to create.
func Open(path string, opts ...Option) (*Log, error) {
	l := &Log{
		path:   path,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return l, l.openMissing()
	case err != nil:
		l.degrade(StatusUnreadable, err)
		return l, nil
	case !info.Mode().IsRegular():
		l.degrade(StatusUnreadable, fmt.Errorf("%s is not a regular file", path))
		return l, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		l.degrade(StatusUnreadable, err)
		return l, nil
	}

	samples, ext, err := parseRecords(string(b))
	if err != nil {
		l.degrade(StatusMalformed, err)
		return l, nil
	}

	l.samples = samples
	l.extrema = ext
	l.status = StatusLoaded
	l.logger.Debug("log loaded", "path", path, "samples", len(samples))
	return l, nil
}

func (l *Log) openMissing() error {
	l.status = StatusMissing
	if l.confirm == nil {
		return nil
	}
	prompt := fmt.Sprintf("Log file %s does not exist. Create it?", l.path)
	if !l.confirm.Confirm(prompt) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	l.status = StatusCreated
	l.logger.Debug("log file created", "path", l.path)
	return nil
}

func (l *Log) degrade(status Status, err error) {
	l.samples = nil
	l.extrema = Extrema{}
	l.status = status
	l.err = err
	l.logger.Warn("log file ignored", "path", l.path, "status", status.String(), "err", err)
}

// Append writes a sample for the current time, then adds it to the log.
// The in-memory state only changes once the line is on disk.
func (l *Log) Append(weight float64) (model.Sample, error) {
	now := l.now()
	at := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, now.Location())
	s := model.NewSample(roundWeight(weight).InexactFloat64(), at)

	if err := l.persist(FormatRecord(s)); err != nil {
		return model.Sample{}, err
	}

	l.samples = append(l.samples, s)
	l.extrema = UpdateExtrema(l.extrema, s.Weight)
	l.logger.Debug("sample appended", "path", l.path, "weight", s.Weight, "time", s.Time)
	return s, nil
}

func (l *Log) persist(line string) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if _, err := io.WriteString(f, line); err != nil {
		f.Close()
		return fmt.Errorf("write log file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// Path returns the backing file location.
func (l *Log) Path() string { return l.path }

// Status returns how the log was loaded.
func (l *Log) Status() Status { return l.status }

// Err returns why the file was ignored, if it was.
func (l *Log) Err() error { return l.err }

// Len returns the number of samples.
func (l *Log) Len() int { return len(l.samples) }

// IsEmpty reports whether the log has no samples.
func (l *Log) IsEmpty() bool { return len(l.samples) == 0 }

// Extrema returns the minimum and maximum weight.
func (l *Log) Extrema() Extrema { return l.extrema }

// Min returns the lowest weight and whether the log has any samples.
func (l *Log) Min() (float64, bool) { return l.extrema.Min, l.extrema.Valid }

// Max returns the highest weight and whether the log has any samples.
func (l *Log) Max() (float64, bool) { return l.extrema.Max, l.extrema.Valid }

// LogAgeDays returns the age of the first sample, or 0 for an empty log.
func (l *Log) LogAgeDays() float64 {
	if len(l.samples) == 0 {
		return 0
	}
	return l.samples[0].AgeDaysAt(l.now())
}
