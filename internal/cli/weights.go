package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rcliao/weightlog/internal/config"
	"github.com/rcliao/weightlog/internal/model"
	"github.com/rcliao/weightlog/internal/render"
	"github.com/rcliao/weightlog/internal/store"
	"github.com/spf13/cobra"
)

// printStyle selects how entries are shown in print mode.
type printStyle int

const (
	styleTable printStyle = iota
	stylePlain
	styleRaw
)

// view bundles what the add and print paths need to produce output.
type view struct {
	out   io.Writer
	count int
	color bool
}

func runRoot(cmd *cobra.Command, args []string) {
	add, _ := cmd.Flags().GetBool("add")
	list, _ := cmd.Flags().GetBool("list")
	raw, _ := cmd.Flags().GetBool("raw")
	plain, _ := cmd.Flags().GetBool("plain")

	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}

	p := newPrompter(cmd)
	l, err := openLog(cfg, newLogger(cmd, cfg), p)
	if err != nil {
		exitErr("open log", err)
	}

	v := newView(cmd.OutOrStdout(), cfg)
	if add {
		if err := addWeight(v, l, p); err != nil {
			exitErr("add weight", err)
		}
		return
	}

	style := styleTable
	if plain {
		style = stylePlain
	}
	if raw {
		style = styleRaw
	}
	if err := printLog(v, l, style, list); err != nil {
		exitErr("print log", err)
	}
}

func newView(out io.Writer, cfg config.Config) view {
	return view{out: out, count: cfg.DisplayCount, color: useColor(cfg, out)}
}

// lineReader is the input side of the prompt collaborator.
type lineReader interface {
	store.Confirmer
	ReadLine(prompt string) (string, error)
}

// addWeight asks for a weight, validates and confirms it, then appends it.
// Bad input is reported to the user and is not an error; only a failed
// write is.
func addWeight(v view, l store.Store, in lineReader) error {
	input, err := in.ReadLine("Enter weight: ")
	if err != nil {
		fmt.Fprintf(v.out, "Could not read weight: %v.\n", err)
		return nil
	}

	w, err := model.ParseWeight(input)
	switch {
	case errors.Is(err, model.ErrWeightOutOfRange):
		fmt.Fprintln(v.out, "Invalid bodyweight")
		return nil
	case err != nil:
		fmt.Fprintf(v.out, "Could not parse weight: %v.\n", err)
		return nil
	}

	msg := fmt.Sprintf("You are about to enter %s kg to the log.\nContinue?", strconv.FormatFloat(w, 'f', -1, 64))
	if !in.Confirm(msg) {
		return nil
	}

	if _, err := l.Append(w); err != nil {
		return err
	}

	ok := "Successfully added"
	if v.color {
		ok = "\x1b[1;32m" + ok + "\x1b[0m"
	}
	fmt.Fprintln(v.out, ok)
	return render.Table(v.out, l.Latest(v.count), render.Options{Color: v.color})
}

// printLog shows the log in the requested style. With the table style the
// latest v.count entries are shown unless all is set.
func printLog(v view, l store.Store, style printStyle, all bool) error {
	if l.IsEmpty() {
		fmt.Fprintln(v.out, "The log is empty. Show help [-h] for more info.")
	}

	switch style {
	case stylePlain:
		return l.Plain(v.out)
	case styleRaw:
		if err := l.Raw(v.out); err != nil {
			fmt.Fprintf(v.out, "Could not open file %v\n", err)
		}
		return nil
	}

	if all {
		return render.Table(v.out, l.Samples(), render.Options{Color: v.color})
	}
	if l.IsEmpty() {
		return nil
	}
	fmt.Fprintf(v.out, "Showing the latest %d entries...\n", v.count)
	return render.Table(v.out, l.Latest(v.count), render.Options{Color: v.color})
}
