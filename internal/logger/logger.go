package logger

import (
	"io"
	"os"

	"github.com/fatih/color" // Coloured console output
)

// Levelled printf-style loggers. Each prints with a colour that matches its
// severity and writes to the current output (stdout unless SetOutput is used).

// Info logs progress messages in green.
var Info = printer(color.FgGreen)

// Warn logs recoverable problems in bright magenta.
// Optional package failures and unverified archives are reported here.
var Warn = printer(color.FgHiMagenta)

// Error logs fatal problems in red.
var Error = printer(color.FgRed)

// Debug logs verbose diagnostics in cyan when enabled, otherwise it is a no-op.
var Debug = func(format string, a ...any) {}

var (
	out         io.Writer = os.Stdout
	debugActive bool
)

// printer returns a printf function bound to the colour attribute that always
// writes to the package output, even after SetOutput swaps it.
func printer(attr color.Attribute) func(format string, a ...any) {
	c := color.New(attr)
	return func(format string, a ...any) {
		_, _ = c.Fprintf(out, format, a...)
	}
}

// Init enables or disables debug logging.
// When enabled, Debug prints cyan messages; otherwise Debug drops them.
func Init(enableDebug bool) {
	debugActive = enableDebug
	if enableDebug {
		Debug = printer(color.FgCyan)
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// DebugEnabled reports whether Init turned debug logging on.
func DebugEnabled() bool {
	return debugActive
}

// SetOutput redirects every level to w and returns the previous writer.
// Tests use it to capture log lines.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}
