package ui

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/vskvj3/dllist/internal/datastructures"
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Printer renders list state and menus to a writer.
type Printer struct {
	w    io.Writer
	in   *bufio.Reader
	opts Options
	st   Style
}

// NewPrinter creates a Printer. in is used for pauses and pagination and may be nil.
func NewPrinter(w io.Writer, in *bufio.Reader, opts Options) *Printer {
	return &Printer{w: w, in: in, opts: opts, st: styles(opts.Color)}
}

// Options returns the options in effect.
func (p *Printer) Options() Options {
	return p.opts
}

// Style returns the ANSI sequences in effect.
func (p *Printer) Style() Style {
	return p.st
}

// DisplayWidth returns the terminal cell width of s, ignoring color codes.
func DisplayWidth(s string, utf8 bool) int {
	stripped := ansiPattern.ReplaceAllString(s, "")
	if !utf8 {
		return len(stripped)
	}
	return runewidth.StringWidth(stripped)
}

// ClearScreen clears the terminal when pretty output asks for it.
func (p *Printer) ClearScreen() {
	if p.opts.Pretty && p.opts.ClearMenu {
		fmt.Fprint(p.w, "\x1b[2J\x1b[H")
	}
}

func (p *Printer) sep() {
	ch := "="
	if p.opts.UTF8 {
		ch = "═"
	}
	fmt.Fprintln(p.w, strings.Repeat(ch, 44))
}

// Banner prints a section title in pretty mode.
func (p *Printer) Banner(title string) {
	if !p.opts.Pretty {
		return
	}
	p.sep()
	fmt.Fprintf(p.w, "  %s%s%s\n", p.st.Bold, title, p.st.Reset)
	p.sep()
}

// MenuBox prints a bordered menu sized to its widest line.
func (p *Printer) MenuBox(title string, lines []string) {
	width := DisplayWidth(title, p.opts.UTF8)
	for _, ln := range lines {
		width = max(width, DisplayWidth(ln, p.opts.UTF8))
	}
	width += 2

	tl, tr, bl, br, h, v, ls, rs := "+", "+", "+", "+", "-", "|", "+", "+"
	if p.opts.UTF8 {
		tl, tr, bl, br, h, v, ls, rs = "╔", "╗", "╚", "╝", "═", "║", "╠", "╣"
	}
	hline := strings.Repeat(h, width)

	titleWidth := DisplayWidth(title, p.opts.UTF8)
	lpad := (width - titleWidth) / 2
	rpad := width - titleWidth - lpad

	fmt.Fprintf(p.w, "%s%s%s\n", tl, hline, tr)
	fmt.Fprintf(p.w, "%s%s%s%s%s%s%s%s\n", v, strings.Repeat(" ", lpad), p.st.Cyan, p.st.Bold, title, p.st.Reset, strings.Repeat(" ", rpad), v)
	fmt.Fprintf(p.w, "%s%s%s\n", ls, hline, rs)
	for _, ln := range lines {
		if strings.HasPrefix(ln, "[") {
			if end := strings.Index(ln, "]"); end > 0 {
				ln = p.st.Yellow + ln[:end+1] + p.st.Reset + ln[end+1:]
			}
		}
		pad := max(width-DisplayWidth(ln, p.opts.UTF8)-2, 0)
		fmt.Fprintf(p.w, "%s %s%s %s\n", v, ln, strings.Repeat(" ", pad), v)
	}
	fmt.Fprintf(p.w, "%s%s%s\n", bl, hline, br)
}

// Legacy prints items joined by " <-> ", the format scripted tests match on.
func (p *Printer) Legacy(items []string) {
	if p.opts.KeepLegacy {
		fmt.Fprintln(p.w, strings.Join(items, " <-> "))
	}
}

// RenderList prints an indexed view of items with head/tail markers.
func (p *Printer) RenderList(items []string) {
	if !p.opts.Pretty {
		return
	}
	st := p.st
	if len(items) == 0 {
		fmt.Fprintf(p.w, "%s(empty)%s\n", st.Gray, st.Reset)
		return
	}

	arrow := "<->"
	if p.opts.UTF8 {
		arrow = "⇄"
	}
	var b strings.Builder
	for i, item := range items {
		head, tail := i == 0, i == len(items)-1
		if head {
			b.WriteString(st.Magenta)
		}
		fmt.Fprintf(&b, "[%d]%s [", i, st.Reset)
		if head {
			b.WriteString(st.Underline)
		}
		fmt.Fprintf(&b, "%s%s]", item, st.Reset)
		if !tail {
			fmt.Fprintf(&b, " %s%s%s ", st.Magenta, arrow, st.Reset)
			continue
		}
		if head {
			fmt.Fprintf(&b, "   %s[HEAD|TAIL]%s", st.Gray, st.Reset)
		} else {
			fmt.Fprintf(&b, "   %s[TAIL]%s %s[HEAD @ 0]%s", st.Gray, st.Reset, st.Gray, st.Reset)
		}
	}
	fmt.Fprintf(p.w, "Current list: %s\n", b.String())
}

// Stats prints node count and endpoint values in pretty mode.
func (p *Printer) Stats(nodes int, head, tail string) {
	if !p.opts.Pretty {
		return
	}
	empty := "-"
	if p.opts.UTF8 {
		empty = "∅"
	}
	if head == "" {
		head = empty
	}
	if tail == "" {
		tail = empty
	}
	fmt.Fprintf(p.w, "%sStats: Nodes=%d, Head=%s, Tail=%s%s\n", p.st.Gray, nodes, head, tail, p.st.Reset)
}

// Size prints the element count.
func (p *Printer) Size(n int) {
	if p.opts.KeepLegacy || !p.opts.Pretty {
		fmt.Fprintln(p.w, n)
	}
	if p.opts.Pretty {
		fmt.Fprintf(p.w, "%sSize: %d%s\n", p.st.Cyan, n, p.st.Reset)
	}
}

// OK reports success.
func (p *Printer) OK(msg string) {
	if p.opts.Pretty {
		fmt.Fprintf(p.w, "%s✔ %s%s\n", p.st.Green, msg, p.st.Reset)
		return
	}
	fmt.Fprintln(p.w, msg)
}

// Fail reports failure.
func (p *Printer) Fail(msg string) {
	if p.opts.Pretty {
		fmt.Fprintf(p.w, "%s✘ %s%s\n", p.st.Red, msg, p.st.Reset)
		return
	}
	fmt.Fprintln(p.w, msg)
}

// Line prints one plain line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// DumpLinks prints an aligned table of node addresses and links.
func DumpLinks[T any](p *Printer, links []datastructures.LinkInfo[T]) {
	title := "Dump:"
	if p.opts.Pretty {
		title = p.st.Bold + title + p.st.Reset
	}
	fmt.Fprintln(p.w, title)
	for _, ln := range links {
		head := fmt.Sprintf("  Node[%d] %v", ln.Index, ln.Value)
		pad := 1
		if len(head) < 24 {
			pad = 24 - len(head)
		}
		fmt.Fprintf(p.w, "%s%sprev=%s  self=%s  next=%s\n", head, strings.Repeat(" ", pad), ln.Prev, ln.Self, ln.Next)
	}
}

// DumpLinksYAML prints the link table as a YAML document.
func DumpLinksYAML[T any](p *Printer, links []datastructures.LinkInfo[T]) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(links); err != nil {
		return err
	}
	return enc.Close()
}

// Pause waits for Enter when pauses are enabled.
func (p *Printer) Pause(msg string) {
	if !p.opts.Pause || p.in == nil {
		return
	}
	fmt.Fprintf(p.w, "%s%s%s", p.st.Dim, msg, p.st.Reset)
	_, _ = p.in.ReadString('\n')
}

// Paginate prints lines, pausing every page lines when pagination is on.
func (p *Printer) Paginate(lines []string) {
	for i, s := range lines {
		fmt.Fprintln(p.w, s)
		if p.opts.Paginate > 0 && (i+1)%p.opts.Paginate == 0 && i+1 < len(lines) && p.in != nil {
			fmt.Fprintf(p.w, "%sMore, press Enter...%s", p.st.Dim, p.st.Reset)
			_, _ = p.in.ReadString('\n')
		}
	}
}
