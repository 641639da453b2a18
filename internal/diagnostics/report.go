// Package diagnostics formats checker results for a terminal. It never
// changes what is reported, only how -- the underlying error remains a
// single structural message produced by internal/check.
package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"fmcore/internal/config"
)

// Reporter prints one "Checking: <name>" line per definition, followed on
// failure by a FAIL marker and the error message, and on success by an OK
// marker only when verbose output is on.
type Reporter struct {
	out     io.Writer
	ok      func(...interface{}) string
	fail    func(...interface{}) string
	verbose bool
}

// NewReporter builds a reporter for out, honoring cfg's color setting
// and degrading to plain text when out is not a terminal.
func NewReporter(out io.Writer, cfg config.Config) *Reporter {
	enableColor := cfg.Output.Color && isTerminal(out)
	return &Reporter{
		out:     out,
		ok:      colorFunc(enableColor, color.FgGreen, color.Bold),
		fail:    colorFunc(enableColor, color.FgRed, color.Bold),
		verbose: cfg.Output.Verbose,
	}
}

func colorFunc(enabled bool, attrs ...color.Attribute) func(...interface{}) string {
	c := color.New(attrs...)
	c.EnableColor()
	if !enabled {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Definition reports the outcome of checking a single definition.
func (r *Reporter) Definition(name string, err error) {
	fmt.Fprintf(r.out, "Checking: %s\n", name)
	if err != nil {
		fmt.Fprintf(r.out, "  %s %s\n", r.fail("FAIL"), err.Error())
		return
	}
	if r.verbose {
		fmt.Fprintf(r.out, "  %s\n", r.ok("OK"))
	}
}

// Summary reports how many of total definitions failed.
func (r *Reporter) Summary(total, failed int) {
	if failed == 0 {
		fmt.Fprintf(r.out, "%s: %d definition(s) checked\n", r.ok("PASS"), total)
		return
	}
	fmt.Fprintf(r.out, "%s: %d/%d definition(s) failed\n", r.fail("FAIL"), failed, total)
}

// ParseFailure reports a parse-time error, which never reaches Definition.
func (r *Reporter) ParseFailure(err error) {
	fmt.Fprintf(r.out, "%s %s\n", r.fail("FAIL"), err.Error())
}
