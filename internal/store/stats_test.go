package store

import (
	"path/filepath"
	"testing"
	"time"
)

func TestStats(t *testing.T) {
	now := time.Date(2023, 1, 11, 8, 0, 0, 0, time.Local)
	path := writeLogFile(t, "2023-01-01,08:00,80.0\n2023-01-02,08:00,100.0\n")

	l, _ := Open(path, WithHeight(180), WithClock(func() time.Time { return now }))
	st := l.Stats()

	if st.Entries != 2 || st.Status != "loaded" {
		t.Errorf("unexpected entries/status: %d %s", st.Entries, st.Status)
	}
	if st.SizeBytes == 0 {
		t.Error("expected non-zero file size")
	}
	if st.Min == nil || *st.Min != 80.0 || st.Max == nil || *st.Max != 100.0 {
		t.Errorf("unexpected min/max %v %v", st.Min, st.Max)
	}
	if st.LogAgeDays != 10 {
		t.Errorf("expected log age 10, got %v", st.LogAgeDays)
	}
	if st.LatestBMI == nil || *st.LatestBMI != 30.86 {
		t.Errorf("expected latest BMI 30.86, got %v", st.LatestBMI)
	}
}

func TestStatsEmpty(t *testing.T) {
	l, _ := Open(filepath.Join(t.TempDir(), "none.csv"), WithHeight(180))
	st := l.Stats()
	if st.Entries != 0 || st.Min != nil || st.Max != nil || st.LatestBMI != nil {
		t.Errorf("expected empty stats, got %+v", st)
	}
	if st.Degraded {
		t.Error("a missing file is not degraded")
	}
	if st.Status != "missing" {
		t.Errorf("expected status missing, got %s", st.Status)
	}
}

func TestExportIDsAreStable(t *testing.T) {
	path := writeLogFile(t, "2023-01-01,08:00,80.0\n2023-01-02,08:00,81.5\n")

	a, _ := Open(path)
	b, _ := Open(path)
	ra, err := a.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	rb, _ := b.Export()

	if len(ra) != 2 {
		t.Fatalf("expected 2 records, got %d", len(ra))
	}
	for i := range ra {
		if ra[i].ID != rb[i].ID {
			t.Errorf("record %d id changed: %s vs %s", i, ra[i].ID, rb[i].ID)
		}
	}
	if ra[0].ID == ra[1].ID {
		t.Error("expected distinct ids")
	}
	if ra[0].ID >= ra[1].ID {
		t.Error("expected ids to sort by sample time")
	}
	if ra[1].Date != "2023-01-02" || ra[1].Time != "08:00" || ra[1].Weight != 81.5 {
		t.Errorf("unexpected record %+v", ra[1])
	}
}

func TestStatsDegraded(t *testing.T) {
	l, _ := Open(writeLogFile(t, "2023-01-01,08:00,0x1p6\n"))
	st := l.Stats()
	if !st.Degraded || st.Status != "malformed" {
		t.Errorf("expected degraded malformed stats, got %+v", st)
	}
	if st.LoadError == "" || st.Entries != 0 {
		t.Errorf("expected a load error and no entries, got %+v", st)
	}
}
