package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vskvj3/dllist/internal/core"
	"github.com/vskvj3/dllist/internal/datastructures"
	"github.com/vskvj3/dllist/internal/ui"
	"github.com/vskvj3/dllist/internal/utils"
)

func main() {
	// Parse command-line arguments
	configPtr := flag.String("config", utils.DefaultConfigPath(), "Path to the YAML config file")
	checksPtr := flag.Bool("checks", false, "Verify node membership on every node-level operation")
	debugPtr := flag.Bool("debug", false, "Start with debug mode on (validation and dumps)")
	logPtr := flag.String("log", "", "Log file path (overrides config)")
	flag.Parse()

	// Load configurations
	config, err := utils.LoadConfig(*configPtr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration: "+err.Error())
		os.Exit(1)
	}
	if *logPtr != "" {
		config.LogFile = *logPtr
	}
	debug := config.Debug || *debugPtr

	logger := utils.NewLogger(config.LogFile, debug)
	logger.Info("Loaded configurations from " + *configPtr)

	session := core.NewSession(config.MembershipChecks || *checksPtr, config.HistorySize)
	session.SetDebug(debug)
	handler := core.NewCommandHandler(session)

	in := bufio.NewReader(os.Stdin)
	printer := ui.NewPrinter(os.Stdout, in, ui.FromConfig(config.Display, os.Stdout))

	for {
		switch promptMenu(in, os.Stdout, printer) {
		case 1:
			runIntDemo(printer)
		case 2:
			runStringDemo(printer)
		case 3:
			runREPL(in, os.Stdout, handler, printer)
		default:
			logger.Info("Exiting")
			return
		}
	}
}

// promptMenu prints the main menu and reads a choice in [1, 4].
// EOF selects Quit.
func promptMenu(in *bufio.Reader, out io.Writer, p *ui.Printer) int {
	const lo, hi = 1, 4
	p.ClearScreen()
	opts := p.Options()
	st := p.Style()

	if opts.Pretty {
		p.MenuBox("Doubly Linked List: Main Menu", []string{
			"[1] Integer demo   (1,2,3)",
			"[2] String demo    (A,B,C)",
			"[3] Interactive REPL (strings)",
			"[4] Quit",
		})
	} else {
		fmt.Fprintf(out, "\n%s%s==============================\n Doubly Linked List: Demo\n==============================%s\n", st.Cyan, st.Bold, st.Reset)
		fmt.Fprintf(out, "%s 1 %s Integer demo (1,2,3)\n", st.Yellow, st.Reset)
		fmt.Fprintf(out, "%s 2 %s String demo (A,B,C)\n", st.Yellow, st.Reset)
		fmt.Fprintf(out, "%s 3 %s Interactive REPL (strings)\n", st.Yellow, st.Reset)
		fmt.Fprintf(out, "%s 4 %s Quit\n", st.Yellow, st.Reset)
	}

	for {
		if opts.Pretty {
			fmt.Fprintf(out, "%s➤ Select an option [%d–%d]: %s", st.Green, lo, hi, st.Reset)
		} else {
			fmt.Fprintf(out, "Select (%d-%d): ", lo, hi)
		}
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return hi
		}
		if v, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil && v >= lo && v <= hi {
			return v
		}
		p.Fail("Invalid choice.")
		if err != nil {
			return hi
		}
	}
}

// runIntDemo builds 1 <-> 2 <-> 3 with push_back and insert_before.
func runIntDemo(p *ui.Printer) {
	p.Banner("=== Integer Demo ===")

	l := datastructures.NewList[int]()
	l.PushBack(1)
	l.PushBack(3)
	if err := l.InsertBefore(l.Back(), datastructures.NewNode(2)); err != nil {
		p.Fail("fail: " + err.Error())
		return
	}

	var forward, backward []string
	for v := range l.All() {
		forward = append(forward, strconv.Itoa(v))
	}
	for v := range l.Backward() {
		backward = append(backward, strconv.Itoa(v))
	}
	showDemo(p, forward, backward)
}

// runStringDemo builds A <-> B <-> C with push_front and insert_after.
func runStringDemo(p *ui.Printer) {
	p.Banner("=== String Demo ===")

	l := datastructures.NewList[string]()
	l.PushFront("C")
	l.PushFront("A")
	if err := l.InsertAfter(l.Front(), datastructures.NewNode("B")); err != nil {
		p.Fail("fail: " + err.Error())
		return
	}
	showDemo(p, l.Values(), l.ValuesBackward())
}

func showDemo(p *ui.Printer, forward, backward []string) {
	p.Legacy(forward)
	p.Legacy(backward)
	if p.Options().Pretty {
		p.RenderList(forward)
		var head, tail string
		if len(forward) > 0 {
			head, tail = forward[0], forward[len(forward)-1]
		}
		p.Stats(len(forward), head, tail)
	}
	p.Pause("Press Enter to continue...")
}
