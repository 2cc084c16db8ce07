package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rcliao/weightlog/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries",
		Long:  "Export every entry with a stable id. JSON with -f json, tab-separated text otherwise.",
		Args:  cobra.NoArgs,
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}

	l, err := openLog(cfg, newLogger(cmd, cfg), nil)
	if err != nil {
		exitErr("open log", err)
	}

	records, err := l.Export()
	if err != nil {
		exitErr("export", err)
	}
	if err := writeExport(cmd.OutOrStdout(), records, formatFlag); err != nil {
		exitErr("export", err)
	}
}

func writeExport(w io.Writer, records []store.ExportRecord, format string) error {
	switch format {
	case "json":
		if records == nil {
			records = []store.ExportRecord{}
		}
		b, _ := json.MarshalIndent(records, "", "  ")
		_, err := fmt.Fprintln(w, string(b))
		return err
	case "text":
		for _, r := range records {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\n", r.ID, r.Date, r.Time, r.Weight); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
