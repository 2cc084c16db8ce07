package store

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rcliao/weightlog/internal/model"
)

// Samples returns a copy of every sample, oldest first.
func (l *Log) Samples() []model.Sample {
	out := make([]model.Sample, len(l.samples))
	copy(out, l.samples)
	return out
}

// Latest returns the last min(n, Len()) samples in their original order.
// A negative n returns every sample.
func (l *Log) Latest(n int) []model.Sample {
	if n < 0 || n > len(l.samples) {
		n = len(l.samples)
	}
	return append([]model.Sample(nil), l.samples[len(l.samples)-n:]...)
}

// Plain writes one display line per sample.
func (l *Log) Plain(w io.Writer) error {
	now := l.now()
	for _, s := range l.samples {
		if _, err := fmt.Fprintln(w, s.StringAt(now)); err != nil {
			return err
		}
	}
	return nil
}

// Raw re-reads the backing file and writes its lines unchanged. Nothing is
// written when the file cannot be read.
func (l *Log) Raw(w io.Writer) error {
	b, err := os.ReadFile(l.path)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), len(b)+1)
	for sc.Scan() {
		if _, err := fmt.Fprintln(w, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
