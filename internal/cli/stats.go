package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rcliao/weightlog/internal/model"
	"github.com/rcliao/weightlog/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show log statistics",
		Args:  cobra.NoArgs,
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}

	l, err := openLog(cfg, newLogger(cmd, cfg), nil)
	if err != nil {
		exitErr("open log", err)
	}

	if err := writeStats(cmd.OutOrStdout(), l.Stats(), formatFlag); err != nil {
		exitErr("stats", err)
	}
}

func writeStats(w io.Writer, st *store.Stats, format string) error {
	switch format {
	case "json":
		b, _ := json.MarshalIndent(st, "", "  ")
		_, err := fmt.Fprintln(w, string(b))
		return err
	case "text":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	fmt.Fprintf(w, "Log file:  %s (%s, %d bytes)\n", st.Path, st.Status, st.SizeBytes)
	if st.Degraded {
		fmt.Fprintf(w, "Problem:   %s (showing an empty log)\n", st.LoadError)
	}
	fmt.Fprintf(w, "Entries:   %d\n", st.Entries)
	if st.Entries == 0 {
		return nil
	}
	fmt.Fprintf(w, "First:     %s\n", st.First.Format(model.DateTimeLayout))
	fmt.Fprintf(w, "Last:      %s\n", st.Last.Format(model.DateTimeLayout))
	fmt.Fprintf(w, "Log age:   %.1f days\n", st.LogAgeDays)
	fmt.Fprintf(w, "Min:       %.1f kg\n", *st.Min)
	fmt.Fprintf(w, "Max:       %.1f kg\n", *st.Max)
	fmt.Fprintf(w, "Latest:    %.1f kg\n", *st.Latest)
	if st.LatestBMI != nil {
		fmt.Fprintf(w, "BMI:       %.2f (height %g cm)\n", *st.LatestBMI, st.HeightCm)
	}
	return nil
}
