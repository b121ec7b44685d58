// Package render prints search probes, bracket ops and verification
// summaries for the terminal.
//
// Colors follow one scheme throughout:
//   - Green: found / balanced / matched
//   - Red: absent / unbalanced / mismatched
//   - Yellow: the probed element or current glyph
//   - Cyan: labels and window markers
//
// In auto mode colors are used only when the writer is a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/lvalgo/brackets"
	"github.com/katalvlaran/lvalgo/bsearch"
	"github.com/katalvlaran/lvalgo/internal/config"
)

// Printer writes human-readable results to an io.Writer.
type Printer struct {
	w     io.Writer
	ok    *color.Color
	fail  *color.Color
	focus *color.Color
	label *color.Color
}

// NewPrinter returns a Printer for w. mode is one of config.ColorAuto,
// config.ColorAlways or config.ColorNever.
func NewPrinter(w io.Writer, mode string) *Printer {
	p := &Printer{
		w:     w,
		ok:    color.New(color.FgGreen, color.Bold),
		fail:  color.New(color.FgRed, color.Bold),
		focus: color.New(color.FgYellow),
		label: color.New(color.FgCyan),
	}

	useColor := mode == config.ColorAlways || (mode == config.ColorAuto && isTerminal(w))
	for _, c := range []*color.Color{p.ok, p.fail, p.focus, p.label} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SearchResult prints the verdict of a search for target.
func (p *Printer) SearchResult(target int32, index int, found bool) {
	if found {
		fmt.Fprintf(p.w, "%s %d at index %d\n", p.ok.Sprint("found"), target, index)

		return
	}
	fmt.Fprintf(p.w, "%s %d\n", p.fail.Sprint("absent"), target)
}

// SearchTrace prints the items once, then one marker row per probe:
// L and H mark the window bounds and M the probed middle.
// For the half-open convention H may sit one cell past the last item.
func (p *Printer) SearchTrace(target int32, items []int32, res *bsearch.Result) {
	width := cellWidth(items)

	fmt.Fprintf(p.w, "%s %d (%s window)\n", p.label.Sprint("target"), target, res.Convention)
	fmt.Fprintf(p.w, "%s ", p.label.Sprint("items "))
	for _, v := range items {
		fmt.Fprintf(p.w, "%*d", width, v)
	}
	fmt.Fprintln(p.w)

	for i, pr := range res.Probes {
		fmt.Fprintf(p.w, "%s ", p.label.Sprintf("step %-2d", i+1))
		for idx := 0; idx <= len(items); idx++ {
			fmt.Fprint(p.w, p.marker(idx, pr, width))
		}
		fmt.Fprintf(p.w, "  %s %s %d\n", p.focus.Sprintf("items[%d]=%d", pr.Middle, pr.Value), pr.Order, target)
	}

	p.SearchResult(target, res.Index, res.Found)
}

// marker renders the cell at idx for probe pr.
func (p *Printer) marker(idx int, pr bsearch.Probe, width int) string {
	var m strings.Builder
	if idx == pr.Low {
		m.WriteByte('L')
	}
	if idx == pr.Middle {
		m.WriteByte('M')
	}
	if idx == pr.High {
		m.WriteByte('H')
	}
	cell := fmt.Sprintf("%*s", width, m.String())
	if idx == pr.Middle {
		return p.focus.Sprint(cell)
	}

	return p.label.Sprint(cell)
}

// cellWidth is the widest printed item plus one space, at least 4.
func cellWidth(items []int32) int {
	w := 3
	for _, v := range items {
		if n := len(strconv.Itoa(int(v))); n > w {
			w = n
		}
	}

	return w + 1
}

// BalanceResult prints the verdict for input. When the report shows a
// failure, a caret marks the offending rune.
func (p *Printer) BalanceResult(input string, rep *brackets.Report) {
	if rep.Balanced {
		fmt.Fprintf(p.w, "%s %q\n", p.ok.Sprint("balanced"), input)

		return
	}

	fmt.Fprintf(p.w, "%s %q: %s at %d", p.fail.Sprint("unbalanced"), input, rep.Reason, rep.Pos)
	if rep.Expected != 0 {
		fmt.Fprintf(p.w, ", expected %q", rep.Expected)
	}
	if rep.Found != 0 {
		fmt.Fprintf(p.w, ", found %q", rep.Found)
	}
	fmt.Fprintln(p.w)

	if rep.Pos >= 0 {
		// +1 for the opening quote of %q; assumes no escaped runes before Pos
		fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", len("unbalanced ")+1+rep.Pos), p.fail.Sprint("^"))
	}
}

// BalanceVerdict prints a bare verdict, for forms that carry no report.
func (p *Printer) BalanceVerdict(input string, balanced bool) {
	if balanced {
		fmt.Fprintf(p.w, "%s %q\n", p.ok.Sprint("balanced"), input)

		return
	}
	fmt.Fprintf(p.w, "%s %q\n", p.fail.Sprint("unbalanced"), input)
}

// BalanceOp prints one recorded op with the stack depth after it.
func (p *Printer) BalanceOp(op brackets.Op) {
	switch op.Kind {
	case brackets.OpResult:
		return
	case brackets.OpMatch:
		fmt.Fprintf(p.w, "%4d %-9s %s depth=%d\n", op.Pos, op.Kind, p.ok.Sprintf("%q", op.Glyph), op.Depth)
	case brackets.OpMismatch, brackets.OpUnderflow, brackets.OpUnclosed:
		fmt.Fprintf(p.w, "%4d %-9s %s expected=%s depth=%d\n",
			op.Pos, op.Kind, p.fail.Sprintf("%q", op.Glyph), expected(op.Expected), op.Depth)
	default:
		fmt.Fprintf(p.w, "%4d %-9s %s depth=%d\n", op.Pos, op.Kind, p.focus.Sprintf("%q", op.Glyph), op.Depth)
	}
}

func expected(r rune) string {
	if r == 0 {
		return "none"
	}

	return strconv.QuoteRune(r)
}

// CaseLine prints one catalog case outcome.
func (p *Printer) CaseLine(kind, name string, err error) {
	if err == nil {
		fmt.Fprintf(p.w, "%s %-8s %s\n", p.ok.Sprint("PASS"), kind, name)

		return
	}
	fmt.Fprintf(p.w, "%s %-8s %s: %v\n", p.fail.Sprint("FAIL"), kind, name, err)
}

// Summary prints the verification totals.
func (p *Printer) Summary(total, failed int) {
	if failed == 0 {
		fmt.Fprintf(p.w, "%s %d/%d cases\n", p.ok.Sprint("ok"), total, total)

		return
	}
	fmt.Fprintf(p.w, "%s %d of %d cases failed\n", p.fail.Sprint("FAIL"), failed, total)
}
