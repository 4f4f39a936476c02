// Package output prints command results as a table on a terminal and as
// JSON everywhere else.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/term"
)

type Printer struct {
	w    io.Writer
	json bool
}

// New picks JSON when forced or when w is not a terminal.
func New(w io.Writer, forceJSON bool) *Printer {
	return &Printer{w: w, json: forceJSON || !isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) JSON() bool {
	return p.json
}

// Value prints v as indented JSON.
func (p *Printer) Value(v any) error {
	encoder := json.NewEncoder(p.w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

// Table prints rows under header, or v as JSON when the printer is in JSON mode.
func (p *Printer) Table(v any, header []string, rows [][]string) error {
	if p.json {
		return p.Value(v)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(p.w, "No results")
		return err
	}

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	writeRow(w, header)
	for _, row := range rows {
		writeRow(w, row)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, "\nTotal: %d\n", len(rows))
	return err
}

// Message prints a human note. JSON mode stays silent so output remains parseable.
func (p *Printer) Message(format string, args ...any) {
	if p.json {
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}

func writeRow(w io.Writer, cells []string) {
	for _, c := range cells {
		fmt.Fprintf(w, "%s\t", c)
	}
	fmt.Fprintln(w)
}

// Truncate shortens s to at most length runes.
func Truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}

type printerKey struct{}

func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, printerKey{}, p)
}

// FromContext returns the printer set by the root command, or a JSON printer
// on stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(printerKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout, true)
}
