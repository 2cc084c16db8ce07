// Package render formats weight samples for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	"github.com/rcliao/weightlog/internal/model"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiBoldGreen = "\x1b[1;32m"
)

// Options control table output.
type Options struct {
	Color bool
	Now   time.Time
}

// Row is one rendered table line.
type Row struct {
	Date   string
	Time   string
	Age    string
	Weight string
}

// Rows formats samples relative to now.
func Rows(samples []model.Sample, now time.Time) []Row {
	rows := make([]Row, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, Row{
			Date:   s.Date(),
			Time:   s.Clock(),
			Age:    fmt.Sprintf("%.1f days ago", s.AgeDaysAt(now)),
			Weight: fmt.Sprintf("%6.1f kg", s.Weight),
		})
	}
	return rows
}

// Table writes samples as a table with Date, Time, Age and Weight columns.
func Table(w io.Writer, samples []model.Sample, opts Options) error {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	rows := Rows(samples, now)

	header := Row{Date: "Date", Time: "Time", Age: "Age", Weight: "Weight"}
	cw := columnWidths(append([]Row{header}, rows...))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", header.Date, header.Time, header.Age,
		style(opts.Color, ansiBold, fmt.Sprintf("%*s", cw.Weight, header.Weight)))
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", cw.Date), strings.Repeat("-", cw.Time),
		strings.Repeat("-", cw.Age), strings.Repeat("-", cw.Weight))
	for _, r := range rows {
		weight := fmt.Sprintf("%*s", cw.Weight, r.Weight)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Date, r.Time, r.Age, style(opts.Color, ansiBoldGreen, weight))
	}
	return tw.Flush()
}

type widths struct{ Date, Time, Age, Weight int }

func columnWidths(rows []Row) widths {
	var w widths
	for _, r := range rows {
		w.Date = max(w.Date, len(r.Date))
		w.Time = max(w.Time, len(r.Time))
		w.Age = max(w.Age, len(r.Age))
		w.Weight = max(w.Weight, len(r.Weight))
	}
	return w
}

// style wraps s in an ANSI sequence. Only the last column is styled so the
// escape bytes never skew tabwriter's column widths.
func style(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return code + s + ansiReset
}

// ColorEnabled reports whether output to w should be coloured: w must be a
// terminal and NO_COLOR unset.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
