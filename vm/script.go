package vm

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/betazetadev/zork1-web/glk"
)

// ScriptMachine runs a Starlark story script against a glk session. The
// script must define start() and resume(line); between those calls all
// state lives in the script's globals. The adapter surface is exposed as
// predeclared builtins, so a script is a complete (if small) interpreter:
//
//	def start():
//	    put_string("You are standing in an open field.\n")
//	    request_line(80)
//
//	def resume(line):
//	    put_string("I don't know the word \"" + line + "\".\n")
//	    request_line(80)
type ScriptMachine struct {
	Session *glk.Session
	Verbose bool

	// OnExit fires when the script calls quit().
	OnExit func()

	thread  *starlark.Thread
	startFn starlark.Callable
	resume  starlark.Callable

	lineBuf []byte
	event   glk.Event
}

var _ Machine = (*ScriptMachine)(nil)

// NewScriptMachine loads and executes a story script's top level. The
// src argument follows starlark.ExecFileOptions: nil to read filename,
// or a string/[]byte/io.Reader with the program text.
func NewScriptMachine(sess *glk.Session, filename string, src any) (m *ScriptMachine, err error) {
	m = &ScriptMachine{
		Session: sess,
	}
	m.thread = &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			if m.Verbose {
				log.Printf("zork1-web: script: %s", msg)
			}
		},
	}

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, m.thread, filename, src, m.builtins())
	if err != nil {
		m = nil
		return
	}

	startFn, ok := globals["start"].(starlark.Callable)
	if !ok {
		m = nil
		err = ErrNoStart
		return
	}
	resumeFn, ok := globals["resume"].(starlark.Callable)
	if !ok {
		m = nil
		err = ErrNoResume
		return
	}
	m.startFn = startFn
	m.resume = resumeFn

	return
}

// Start runs the script's start() entry. It returns once the script has
// issued an input request (or declined to and is done).
func (m *ScriptMachine) Start() (err error) {
	_, err = starlark.Call(m.thread, m.startFn, nil, nil)

	return
}

// Resume re-enters the script after line input. The first length
// characters of the machine's line buffer are the received text; the
// adapter wrote them before publishing the length.
func (m *ScriptMachine) Resume(length uint32) (err error) {
	if int(length) > len(m.lineBuf) {
		length = uint32(len(m.lineBuf))
	}

	runes := make([]rune, length)
	for n := range runes {
		runes[n] = rune(m.lineBuf[n])
	}

	_, err = starlark.Call(m.thread, m.resume, starlark.Tuple{starlark.String(string(runes))}, nil)

	return
}

func (m *ScriptMachine) builtins() (pred starlark.StringDict) {
	pred = starlark.StringDict{
		"put_string":   starlark.NewBuiltin("put_string", m.putString),
		"request_line": starlark.NewBuiltin("request_line", m.requestLine),
		"flush":        starlark.NewBuiltin("flush", m.flush),
		"clear":        starlark.NewBuiltin("clear", m.clear),
		"gestalt":      starlark.NewBuiltin("gestalt", m.gestalt),
		"save":         starlark.NewBuiltin("save", m.save),
		"restore":      starlark.NewBuiltin("restore", m.restore),
		"file_exists":  starlark.NewBuiltin("file_exists", m.fileExists),
		"delete_file":  starlark.NewBuiltin("delete_file", m.deleteFile),
		"quit":         starlark.NewBuiltin("quit", m.quit),
	}

	return
}

func (m *ScriptMachine) putString(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text); err != nil {
		return nil, err
	}
	m.Session.PutString(text)
	return starlark.None, nil
}

func (m *ScriptMachine) requestLine(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	maxLength := 80
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0, &maxLength); err != nil {
		return nil, err
	}
	if maxLength < 1 {
		maxLength = 1
	}

	m.lineBuf = make([]byte, maxLength)
	m.Session.RequestLineEvent(nil, m.lineBuf, 0)
	m.Session.Select(&m.event)
	return starlark.None, nil
}

func (m *ScriptMachine) flush(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	m.Session.FlushOutput()
	return starlark.None, nil
}

func (m *ScriptMachine) clear(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	m.Session.WindowClear(m.Session.MainWindow)
	return starlark.None, nil
}

func (m *ScriptMachine) gestalt(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var selector int
	value := 0
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &selector, &value); err != nil {
		return nil, err
	}
	answer := m.Session.Gestalt(glk.Selector(selector), uint32(value))
	return starlark.MakeInt(int(answer)), nil
}

func (m *ScriptMachine) save(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var values *starlark.List
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &name, &values); err != nil {
		return nil, err
	}

	data := make([]uint32, values.Len())
	for n := range data {
		item, ok := values.Index(n).(starlark.Int)
		if !ok {
			return nil, ErrBadSaveValue
		}
		value64, ok := item.Int64()
		if !ok || value64 < 0 {
			return nil, ErrBadSaveValue
		}
		data[n] = uint32(value64)
	}

	fref := m.Session.FilerefCreateByName(glk.FILEUSAGE_SAVED_GAME, name, 0)
	defer m.Session.FilerefDestroy(fref)
	str, err := m.Session.StreamOpenFileUni(fref, glk.FILEMODE_WRITE, 0)
	if err != nil {
		return starlark.Bool(false), nil
	}
	m.Session.PutBufferStreamUni(str, data)
	m.Session.StreamClose(str, nil)
	return starlark.Bool(true), nil
}

func (m *ScriptMachine) restore(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name); err != nil {
		return nil, err
	}

	fref := m.Session.FilerefCreateByName(glk.FILEUSAGE_SAVED_GAME, name, 0)
	defer m.Session.FilerefDestroy(fref)
	if !m.Session.FilerefDoesFileExist(fref) {
		return starlark.None, nil
	}

	str, err := m.Session.StreamOpenFileUni(fref, glk.FILEMODE_READ, 0)
	if err != nil {
		return starlark.None, nil
	}
	values := starlark.NewList(nil)
	for {
		code := m.Session.GetCharStreamUni(str)
		if code == glk.EOF {
			break
		}
		values.Append(starlark.MakeInt(int(code)))
	}
	m.Session.StreamClose(str, nil)
	return values, nil
}

func (m *ScriptMachine) fileExists(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name); err != nil {
		return nil, err
	}
	fref := m.Session.FilerefCreateByName(glk.FILEUSAGE_SAVED_GAME, name, 0)
	defer m.Session.FilerefDestroy(fref)
	return starlark.Bool(m.Session.FilerefDoesFileExist(fref)), nil
}

func (m *ScriptMachine) deleteFile(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name); err != nil {
		return nil, err
	}
	fref := m.Session.FilerefCreateByName(glk.FILEUSAGE_SAVED_GAME, name, 0)
	defer m.Session.FilerefDestroy(fref)
	m.Session.FilerefDeleteFile(fref)
	return starlark.None, nil
}

func (m *ScriptMachine) quit(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	m.Session.Exit()
	if m.OnExit != nil {
		m.OnExit()
	}
	return starlark.None, nil
}
