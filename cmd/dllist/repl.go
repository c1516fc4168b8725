package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vskvj3/dllist/internal/core"
	"github.com/vskvj3/dllist/internal/datastructures"
	"github.com/vskvj3/dllist/internal/ui"
	"github.com/vskvj3/dllist/internal/utils"
)

// runREPL reads commands until EOF or a menu/quit command.
func runREPL(in *bufio.Reader, out io.Writer, handler *core.CommandHandler, p *ui.Printer) {
	logger := utils.GetLogger()
	st := p.Style()

	p.Banner("=== Interactive REPL ===")
	fmt.Fprintf(out, "\n%s%sInteractive REPL (strings)%s: type 'help' for commands, 'menu' to return to main menu.\n", st.Blue, st.Bold, st.Reset)

	for {
		fmt.Fprintf(out, "%s> %s", st.Green, st.Reset)
		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if !errors.Is(err, io.EOF) {
				logger.Error("Error reading input: " + err.Error())
			}
			fmt.Fprintln(out)
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		request, perr := argParser(line)
		if perr != nil {
			p.Fail("fail: " + perr.Error())
			continue
		}

		switch request["command"] {
		case localMenu:
			return
		case localHelp:
			p.Banner("Commands")
			p.Paginate(helpLines)
			continue
		case localCls:
			fmt.Fprint(out, "\x1b[2J\x1b[H")
			continue
		}

		response, herr := handler.HandleCommand(request)
		if herr != nil {
			p.Fail("fail: " + herr.Error())
			continue
		}
		render(p, request["command"].(string), request, response)
	}
}

// render prints a successful response for the given command.
func render(p *ui.Printer, command string, request, response map[string]interface{}) {
	opts := p.Options()

	switch command {
	case "FIND":
		if idx, ok := response["index"].(int); ok {
			p.Line("found at %d", idx)
		} else {
			p.Line("not found")
		}

	case "PRINT", "PRINT_REV":
		items, _ := response["items"].([]string)
		p.Legacy(items)
		p.RenderList(items)

	case "SIZE":
		n, _ := response["value"].(int)
		p.Size(n)

	case "STATUS":
		onOff := func(b bool) string {
			if b {
				return "on"
			}
			return "off"
		}
		empty := "-"
		if opts.UTF8 {
			empty = "∅"
		}
		head, _ := response["head"].(string)
		tail, _ := response["tail"].(string)
		if head == "" {
			head = empty
		}
		if tail == "" {
			tail = empty
		}
		p.Line("Size: %v", response["size"])
		p.Line("Head: %s", head)
		p.Line("Tail: %s", tail)
		p.Line("Detached held: %v", response["detached"])
		p.Line("Journal entries: %v (%v bytes)", response["journal"], response["bytes"])
		p.Line("Membership checks: %s", onOff(response["checks"] == true))
		p.Line("PRETTY_UI: %s", onOff(opts.Pretty))
		p.Line("KEEP_LEGACY: %s", onOff(opts.KeepLegacy))
		p.Line("PAUSE_AFTER: %s", onOff(opts.Pause))
		p.Line("CLEAR_MENU: %s", onOff(opts.ClearMenu))
		p.Line("UTF8: %s", onOff(opts.UTF8))
		p.Line("debug: %s", onOff(response["debug"] == true))

	case "DEBUG":
		p.OK("ok")

	case "DUMP":
		links, _ := response["links"].([]datastructures.LinkInfo[string])
		if response["format"] == "yaml" {
			if err := ui.DumpLinksYAML(p, links); err != nil {
				p.Fail("fail: " + err.Error())
			}
		} else {
			ui.DumpLinks(p, links)
		}
		p.Pause("Press Enter to continue...")

	case "HISTORY":
		items, _ := response["items"].([]string)
		for i, item := range items {
			p.Line("%3d  %s", i+1, item)
		}
		p.Line("(%d kept, capacity %v)", len(items), response["capacity"])

	default:
		// mutations, undo and replay all answer with list state
		p.OK("ok")
		items, _ := response["items"].([]string)
		before, _ := response["before"].([]string)
		if opts.Teach && core.IsMutating(command) {
			p.Line("Before:  %s", strings.Join(before, " ⇄ "))
			p.Line("Command: %s", describeRequest(request))
			p.Line("After:   %s", strings.Join(items, " ⇄ "))
		}
		if opts.Pretty {
			p.RenderList(items)
			size, _ := response["size"].(int)
			head, _ := response["head"].(string)
			tail, _ := response["tail"].(string)
			p.Stats(size, head, tail)
		}
	}
}

func describeRequest(request map[string]interface{}) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(request["command"].(string)))
	if idx, ok := request["index"]; ok {
		fmt.Fprintf(&b, " at index %v", idx)
	}
	if v, ok := request["value"].(string); ok {
		fmt.Fprintf(&b, " %q", v)
	}
	return b.String()
}
