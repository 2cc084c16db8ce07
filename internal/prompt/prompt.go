// Package prompt asks the user for input on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	assumeYes   bool
	interactive bool
}

// New returns a Prompter. When assumeYes is set every confirmation is
// answered yes without reading input.
func New(in io.Reader, out io.Writer, assumeYes bool) *Prompter {
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		assumeYes:   assumeYes,
		interactive: isTerminal(in),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ReadLine prints prompt and returns the next line without its line ending.
// Input that ends without a newline is still returned.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	if !p.interactive {
		// Echo piped input so transcripts read naturally.
		fmt.Fprintln(p.out, strings.TrimRight(line, "\r\n"))
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question. Anything but y or yes, including a read
// error, counts as no.
func (p *Prompter) Confirm(prompt string) bool {
	if p.assumeYes {
		return true
	}
	answer, err := p.ReadLine(prompt + " [y/N] ")
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
