// Package log provides context-aware logging for browser-schedule.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/raphi011/browser-schedule/internal/schedule"
)

type ctxKey struct{}

// Logger writes diagnostics. Debug output and command traces only appear in
// verbose mode; quiet suppresses everything.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Warnf writes a "Warning: " prefixed line.
func (l *Logger) Warnf(format string, args ...any) {
	l.Printf("Warning: "+format+"\n", args...)
}

// Debug writes msg followed by key=value pairs in verbose mode.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// Command logs an external command execution and returns a func that
// records its duration. Only prints when verbose mode is enabled.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}
	line := "$ " + strings.TrimSpace(name+" "+strings.Join(args, " "))
	if dir != "" {
		line = "[" + dir + "] " + line
	}
	return func(d time.Duration) {
		fmt.Fprintf(l.out, "%s (%s)\n", line, d.Round(time.Millisecond))
	}
}

// Decision traces a routing decision in verbose mode.
func (l *Logger) Decision(d schedule.Decision) {
	if !l.IsVerbose() {
		return
	}
	switch d.Reason {
	case schedule.ReasonOverride:
		l.Debug("override match", "override", d.Override, "browser", d.Browser)
	case schedule.ReasonInvalidConfig:
		l.Debug("invalid config, using personal browser", "errors", len(d.Shift.Errors), "browser", d.Browser)
	default:
		s := d.Shift
		l.Debug(s.ShiftType()+" shift check",
			"weekday", s.Weekday,
			"workDays", fmt.Sprintf("%s-%s", s.StartDay, s.EndDay),
			"hour", s.Hour,
			"workHours", fmt.Sprintf("%d-%d", s.StartHour, s.EndHour),
			"isWorkDay", s.WorkDay,
			"isWorkHour", s.WorkHour,
			"browser", d.Browser,
		)
	}
}

// IsVerbose reports whether debug output is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}
