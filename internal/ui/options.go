package ui

import (
	"os"

	"golang.org/x/term"

	"github.com/vskvj3/dllist/internal/utils"
)

// Options holds every presentation toggle. It is built once from config and
// passed around; nothing in this package reads the environment.
type Options struct {
	Pretty     bool
	Color      bool
	ClearMenu  bool
	KeepLegacy bool
	UTF8       bool
	Pause      bool
	Paginate   int
	Teach      bool
}

// FromConfig resolves display config against the output file. Color "auto"
// turns color on only for pretty output on a terminal.
func FromConfig(cfg utils.DisplayConfig, out *os.File) Options {
	o := Options{
		Pretty:     cfg.Pretty,
		ClearMenu:  cfg.ClearMenu,
		KeepLegacy: cfg.KeepLegacy,
		UTF8:       !cfg.ASCII,
		Pause:      cfg.Pause,
		Paginate:   cfg.Paginate,
		Teach:      cfg.Teach,
	}
	switch cfg.Color {
	case "always":
		o.Color = o.Pretty
	case "never":
		o.Color = false
	default:
		o.Color = o.Pretty && out != nil && term.IsTerminal(int(out.Fd()))
	}
	return o
}

// Style carries ANSI sequences; all fields are empty when color is off.
type Style struct {
	Reset     string
	Bold      string
	Dim       string
	Underline string
	Green     string
	Cyan      string
	Red       string
	Magenta   string
	Gray      string
	Blue      string
	Yellow    string
}

func styles(enabled bool) Style {
	if !enabled {
		return Style{}
	}
	return Style{
		Reset:     "\x1b[0m",
		Bold:      "\x1b[1m",
		Dim:       "\x1b[2m",
		Underline: "\x1b[4m",
		Green:     "\x1b[32m",
		Cyan:      "\x1b[36m",
		Red:       "\x1b[31m",
		Magenta:   "\x1b[35m",
		Gray:      "\x1b[90m",
		Blue:      "\x1b[34m",
		Yellow:    "\x1b[33m",
	}
}
