package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vskvj3/dllist/internal/core"
	"github.com/vskvj3/dllist/internal/ui"
	"github.com/vskvj3/dllist/internal/utils"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "dllist-cmd")
	if err != nil {
		panic(err)
	}
	utils.NewLogger(filepath.Join(dir, "test.log"), false)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func runScript(t *testing.T, opts ui.Options, script string) string {
	t.Helper()
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(script))
	handler := core.NewCommandHandler(core.NewSession(true, 32))
	runREPL(in, &out, handler, ui.NewPrinter(&out, in, opts))
	return out.String()
}

func TestREPLSession(t *testing.T) {
	out := runScript(t, ui.Options{KeepLegacy: true}, strings.Join([]string{
		"push_back C",
		"push_front A",
		"insert_after 0 B",
		"print",
		"print_rev",
		"find B",
		"find Z",
		"size",
		"insert_after 9 Q",
		"remove_at 1",
		"print",
		"quit",
		"print",
	}, "\n")+"\n")

	assert.Contains(t, out, "A <-> B <-> C\n")
	assert.Contains(t, out, "C <-> B <-> A\n")
	assert.Contains(t, out, "found at 1\n")
	assert.Contains(t, out, "not found\n")
	assert.Contains(t, out, "> 3\n")
	assert.Contains(t, out, "fail: insert after: invalid argument: anchor is nil for non-empty list\n")
	assert.Contains(t, out, "A <-> C\n")
	assert.Equal(t, 2, strings.Count(out, "A <-> "), "nothing runs after quit")
}

func TestREPLDebugDump(t *testing.T) {
	out := runScript(t, ui.Options{}, "pb A\ndump\ndebug on\ndump\n")
	assert.Contains(t, out, "fail: debug is off (use 'debug on')\n")
	assert.Contains(t, out, "Dump:\n  Node[0] A")
}

func TestREPLDetachAttachUndo(t *testing.T) {
	out := runScript(t, ui.Options{KeepLegacy: true}, strings.Join([]string{
		"pb A", "pb B", "pb C",
		"detach_at 0",
		"attach_after",
		"print",
		"undo",
		"print",
		"history",
	}, "\n"))

	assert.Contains(t, out, "B <-> C <-> A\n")
	assert.Contains(t, out, "> B <-> C\n")
	assert.Contains(t, out, "  9  history\n")
	assert.Contains(t, out, "(9 kept, capacity ")
}

func TestREPLTeachMode(t *testing.T) {
	out := runScript(t, ui.Options{Teach: true}, "pb A\ninsert_before 0 Z\n")
	assert.Contains(t, out, "Before:  A\n")
	assert.Contains(t, out, "Command: insert_before at index 0 \"Z\"\n")
	assert.Contains(t, out, "After:   Z ⇄ A\n")
}

func TestREPLHelpAndErrors(t *testing.T) {
	out := runScript(t, ui.Options{}, "help\nbogus\nremove_at\n")
	assert.Contains(t, out, "  push_front VALUE\n")
	assert.Contains(t, out, "fail: unknown command: bogus (type 'help')\n")
	assert.Contains(t, out, "fail: usage: remove_at INDEX\n")
}

func TestPromptMenu(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("7\nx\n2\n"))
	p := ui.NewPrinter(&out, in, ui.Options{})
	assert.Equal(t, 2, promptMenu(in, &out, p))
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid choice."))

	in = bufio.NewReader(strings.NewReader(""))
	assert.Equal(t, 4, promptMenu(in, &out, ui.NewPrinter(&out, in, ui.Options{})))
}

func TestDemos(t *testing.T) {
	var out bytes.Buffer
	p := ui.NewPrinter(&out, nil, ui.Options{KeepLegacy: true})
	runIntDemo(p)
	runStringDemo(p)
	assert.Equal(t, "1 <-> 2 <-> 3\n3 <-> 2 <-> 1\nA <-> B <-> C\nC <-> B <-> A\n", out.String())
}
