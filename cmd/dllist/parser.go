package main

import (
	"fmt"
	"strings"

	"github.com/vskvj3/dllist/internal/core"
	"github.com/vskvj3/dllist/internal/utils"
)

// local commands handled by the REPL itself
const (
	localHelp = "help"
	localCls  = "cls"
	localMenu = "menu"
)

// argParser parses and validates the command and its arguments
func argParser(input string) (map[string]interface{}, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("no command entered")
	}

	name, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "help", "commands":
		return map[string]interface{}{"command": localHelp}, nil
	case "cls":
		return map[string]interface{}{"command": localCls}, nil
	case "menu", "m", "quit", "q":
		return map[string]interface{}{"command": localMenu}, nil
	}

	command := core.Canonical(name)
	request := map[string]interface{}{
		"command": command,
	}

	switch command {
	case "PUSH_FRONT", "PUSH_BACK", "FIND":
		// VALUE is the rest of the line, spaces included
		if rest == "" {
			return nil, fmt.Errorf("missing VALUE")
		}
		request["value"] = rest

	case "INSERT_AFTER", "INSERT_BEFORE":
		// INDEX VALUE, or VALUE alone to insert at the tail/head
		if rest == "" {
			return nil, fmt.Errorf("usage: %s INDEX VALUE | %s VALUE", strings.ToLower(command), strings.ToLower(command))
		}
		first, value, _ := strings.Cut(rest, " ")
		if utils.IsIndex(first) {
			idx, err := utils.ToIndex(first)
			if err != nil {
				return nil, err
			}
			value = strings.TrimSpace(value)
			if value == "" {
				return nil, fmt.Errorf("missing VALUE")
			}
			request["index"] = idx
			request["value"] = value
		} else {
			request["value"] = rest
		}

	case "REMOVE_AT", "DETACH_AT":
		if rest == "" {
			return nil, fmt.Errorf("usage: %s INDEX", strings.ToLower(command))
		}
		idx, err := utils.ToIndex(rest)
		if err != nil {
			return nil, err
		}
		request["index"] = idx

	case "ATTACH_AFTER", "ATTACH_BEFORE":
		if rest != "" {
			idx, err := utils.ToIndex(rest)
			if err != nil {
				return nil, err
			}
			request["index"] = idx
		}

	case "DEBUG":
		rest = strings.ToLower(rest)
		if rest != "" && rest != "on" && rest != "off" {
			return nil, fmt.Errorf("usage: debug on|off")
		}
		request["mode"] = rest

	case "DUMP":
		if rest != "" && rest != "yaml" && rest != "text" {
			return nil, fmt.Errorf("usage: dump [text|yaml]")
		}
		request["format"] = rest

	case "CLEAR", "PRINT", "PRINT_REV", "SIZE", "STATUS", "UNDO", "REPLAY", "HISTORY", "RESET":
		if rest != "" {
			return nil, fmt.Errorf("%s does not take arguments", strings.ToLower(command))
		}

	default:
		return nil, fmt.Errorf("unknown command: %s (type 'help')", name)
	}

	return request, nil
}

var helpLines = []string{
	"Insert:",
	"  push_front VALUE",
	"  push_back VALUE",
	"  insert_after [INDEX] VALUE   (no INDEX: after tail)",
	"  insert_before [INDEX] VALUE  (no INDEX: before head)",
	"",
	"Remove:",
	"  remove_at INDEX",
	"  detach_at INDEX",
	"  clear",
	"",
	"Reattach:",
	"  attach_after [INDEX]   (last detached node)",
	"  attach_before [INDEX]",
	"",
	"Inspect:",
	"  find VALUE",
	"  print",
	"  print_rev",
	"  size",
	"  status",
	"  dump [text|yaml]  (pointers)",
	"  history",
	"",
	"Journal:",
	"  undo",
	"  replay",
	"  reset   (forget list, journal and history)",
	"",
	"System:",
	"  debug on|off",
	"  cls     (clear screen)",
	"  menu    (return to main menu)",
	"  quit    (also returns to menu)",
	"",
	"Aliases: pf=push_front, pb=push_back, rm=remove_at, q=quit, m=menu",
	"Note: 'dump' requires 'debug on'",
}
