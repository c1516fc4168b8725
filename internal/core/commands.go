package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vskvj3/dllist/internal/datastructures"
	"github.com/vskvj3/dllist/internal/utils"
)

type CommandHandler struct {
	Session *Session
}

// Create a new CommandHandler instance
func NewCommandHandler(s *Session) *CommandHandler {
	return &CommandHandler{Session: s}
}

var aliases = map[string]string{
	"PF": "PUSH_FRONT",
	"PB": "PUSH_BACK",
	"RM": "REMOVE_AT",
}

// mutating commands are journaled and validated in debug mode
var mutating = map[string]bool{
	"PUSH_FRONT":    true,
	"PUSH_BACK":     true,
	"INSERT_AFTER":  true,
	"INSERT_BEFORE": true,
	"REMOVE_AT":     true,
	"DETACH_AT":     true,
	"ATTACH_AFTER":  true,
	"ATTACH_BEFORE": true,
	"CLEAR":         true,
}

// Canonical resolves aliases and case.
func Canonical(command string) string {
	command = strings.ToUpper(command)
	if full, ok := aliases[command]; ok {
		return full
	}
	return command
}

// IsMutating reports whether command changes the list.
func IsMutating(command string) bool {
	return mutating[Canonical(command)]
}

// HandleCommand processes one request and returns the response map.
// A failed command returns an error and leaves the list unchanged.
func (h *CommandHandler) HandleCommand(request map[string]interface{}) (map[string]interface{}, error) {
	s := h.Session
	s.mu.Lock()
	defer s.mu.Unlock()

	command, ok := request["command"].(string)
	if !ok {
		return nil, errors.New("invalid or missing 'command' field")
	}
	s.history.Push(describe(request))

	response, err := h.apply(request, true)
	logger := utils.GetLogger()
	if err != nil {
		logger.Debug(fmt.Sprintf("%s failed: %v", Canonical(command), err))
		return nil, err
	}
	logger.Debug(Canonical(command) + " ok")
	return response, nil
}

// apply runs a request against the session; the caller holds the lock.
func (h *CommandHandler) apply(request map[string]interface{}, record bool) (map[string]interface{}, error) {
	s := h.Session
	command := Canonical(request["command"].(string))
	before := s.list.Values()

	var err error

	switch command {
	case "PUSH_FRONT", "PUSH_BACK":
		value, verr := requireValue(command, request)
		if verr != nil {
			return nil, verr
		}
		if command == "PUSH_FRONT" {
			s.list.PushFront(value)
		} else {
			s.list.PushBack(value)
		}

	case "INSERT_AFTER", "INSERT_BEFORE":
		value, verr := requireValue(command, request)
		if verr != nil {
			return nil, verr
		}
		idx, hasIndex, ierr := optionalIndex(request)
		if ierr != nil {
			return nil, ierr
		}
		n := datastructures.NewNode(value)
		if command == "INSERT_AFTER" {
			err = s.list.InsertAfter(s.anchorAt(idx, hasIndex, s.list.Back()), n)
		} else {
			err = s.list.InsertBefore(s.anchorAt(idx, hasIndex, s.list.Front()), n)
		}

	case "REMOVE_AT", "DETACH_AT":
		idx, ierr := utils.ToIndex(request["index"])
		if ierr != nil {
			return nil, fmt.Errorf("%s: %w", command, ierr)
		}
		target := s.list.NodeAt(idx)
		if command == "REMOVE_AT" {
			err = s.list.Remove(target)
		} else if err = s.list.Detach(target); err == nil {
			s.hold(target)
		}

	case "ATTACH_AFTER", "ATTACH_BEFORE":
		idx, hasIndex, ierr := optionalIndex(request)
		if ierr != nil {
			return nil, ierr
		}
		n, derr := s.takeDetached()
		if derr != nil {
			return nil, derr
		}
		if command == "ATTACH_AFTER" {
			err = s.list.InsertAfter(s.anchorAt(idx, hasIndex, s.list.Back()), n)
		} else {
			err = s.list.InsertBefore(s.anchorAt(idx, hasIndex, s.list.Front()), n)
		}
		if err != nil {
			s.hold(n)
		}

	case "CLEAR":
		s.list.Clear()

	case "FIND":
		value, verr := requireValue(command, request)
		if verr != nil {
			return nil, verr
		}
		if _, idx := datastructures.Find(s.list, value); idx >= 0 {
			return map[string]interface{}{"status": "OK", "index": idx}, nil
		}
		return map[string]interface{}{"status": "NOT_FOUND"}, nil

	case "PRINT":
		return map[string]interface{}{"status": "OK", "items": s.list.Values()}, nil

	case "PRINT_REV":
		return map[string]interface{}{"status": "OK", "items": s.list.ValuesBackward()}, nil

	case "SIZE":
		return map[string]interface{}{"status": "OK", "value": s.list.Len()}, nil

	case "STATUS":
		head, tail := s.endpoints()
		return map[string]interface{}{
			"status":   "OK",
			"size":     s.list.Len(),
			"head":     head,
			"tail":     tail,
			"debug":    s.debug,
			"checks":   s.list.MembershipChecks(),
			"journal":  s.journal.Len(),
			"bytes":    s.journal.Size(),
			"detached": len(s.detached),
		}, nil

	case "DEBUG":
		mode, _ := request["mode"].(string)
		switch strings.ToLower(mode) {
		case "", "on":
			s.debug = true
		case "off":
			s.debug = false
		default:
			return nil, errors.New("usage: debug on|off")
		}
		return map[string]interface{}{"status": "OK", "debug": s.debug}, nil

	case "DUMP":
		if !s.debug {
			return nil, errors.New("debug is off (use 'debug on')")
		}
		format, _ := request["format"].(string)
		return map[string]interface{}{"status": "OK", "links": s.list.Links(), "format": format}, nil

	case "UNDO":
		if _, derr := s.journal.DropLast(); derr != nil {
			return nil, fmt.Errorf("nothing to undo: %w", derr)
		}
		if rerr := s.rebuild(h); rerr != nil {
			return nil, rerr
		}
		return h.stateResponse(before), nil

	case "REPLAY":
		if rerr := s.rebuild(h); rerr != nil {
			return nil, rerr
		}
		return h.stateResponse(before), nil

	case "RESET":
		s.reset()
		return h.stateResponse(before), nil

	case "HISTORY":
		return map[string]interface{}{"status": "OK", "items": slices.Collect(s.history.All()), "capacity": s.history.Cap()}, nil

	default:
		return nil, errors.New("unknown command (type 'help')")
	}

	if err != nil {
		return nil, err
	}

	if s.debug {
		if verr := s.list.Validate(); verr != nil {
			utils.GetLogger().Error("invariant violation after " + command + ": " + verr.Error())
		}
	}
	if record {
		if jerr := s.journal.Append(normalize(command, request)); jerr != nil {
			utils.GetLogger().Warn("Request logging to journal failed: " + jerr.Error())
		}
	}
	return h.stateResponse(before), nil
}

func (h *CommandHandler) stateResponse(before []string) map[string]interface{} {
	s := h.Session
	head, tail := s.endpoints()
	return map[string]interface{}{
		"status": "OK",
		"before": before,
		"items":  s.list.Values(),
		"size":   s.list.Len(),
		"head":   head,
		"tail":   tail,
	}
}

func requireValue(command string, request map[string]interface{}) (string, error) {
	value, ok := request["value"].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s requires a 'value' field", command)
	}
	return value, nil
}

func optionalIndex(request map[string]interface{}) (int, bool, error) {
	raw, ok := request["index"]
	if !ok || raw == nil {
		return 0, false, nil
	}
	idx, err := utils.ToIndex(raw)
	if err != nil {
		return 0, false, err
	}
	return idx, true, nil
}

// normalize keeps only the fields replay needs.
func normalize(command string, request map[string]interface{}) map[string]interface{} {
	out := map[string]interface{}{"command": command}
	if v, ok := request["value"].(string); ok {
		out["value"] = v
	}
	if idx, ok := request["index"]; ok && idx != nil {
		if n, err := utils.ToIndex(idx); err == nil {
			out["index"] = n
		}
	}
	return out
}

func describe(request map[string]interface{}) string {
	parts := []string{strings.ToLower(fmt.Sprint(request["command"]))}
	for _, key := range []string{"index", "value", "mode", "format"} {
		if v, ok := request[key]; ok && v != nil && v != "" {
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return strings.Join(parts, " ")
}
