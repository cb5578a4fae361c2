// Package output provides context-aware output for browser-schedule.
// Stdout is used for primary data output (browser names, config, status).
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w io.Writer
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{w: w})
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Field writes an indented "label: value" line with the label padded to
// width so consecutive fields line up. Styled values are downsampled to the
// writer's color profile, so colors disappear when stdout is not a terminal.
func (p *Printer) Field(width int, label, value string) {
	pad := max(width-len(label), 0)
	fmt.Fprintf(colorprofile.NewWriter(p.w, os.Environ()), "  %s:%s %s\n", label, strings.Repeat(" ", pad), value)
}

// Styled writes a line, downsampling any ANSI styling like Field.
func (p *Printer) Styled(a ...any) {
	fmt.Fprintln(colorprofile.NewWriter(p.w, os.Environ()), a...)
}
