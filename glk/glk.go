package glk

import (
	"strings"

	"github.com/betazetadev/zork1-web/storage"
)

// Presentation is the host capability the adapter renders through. Print
// and Clear affect the visible text region, HandleError displays a fatal
// message, and WaitForInput registers a one-shot handler invoked with the
// user's next submitted line.
type Presentation interface {
	Print(text string)
	Clear()
	HandleError(text string)
	WaitForInput(handler func(line string))
}

// Session is the adapter facade: the complete call surface the interpreter
// uses, composing the window/stream model, the output buffer, the input
// bridge, the capability negotiator, and the storage bridge. One Session
// serves one interpreter instance; sessions never share state.
type Session struct {
	Out   Presentation
	Files *storage.Bridge

	// LineInput receives the completion message after a host-delivered
	// line has been copied into the interpreter's buffer. The session
	// owner consumes it to re-enter the interpreter; the adapter assumes
	// nothing about when or whether that happens.
	LineInput func(length uint32)

	MainWindow *Window

	windows  []*Window
	streams  []*Stream
	filerefs []*Fileref
	current  *Stream

	outbuf   strings.Builder
	request  lineRequest
	selected *Event

	dead   bool
	lastID uint32
}

// NewSession creates an adapter session with its main text-buffer window
// already open and selected. The storage bridge may be nil, in which case
// every file is absent and saves are dropped.
func NewSession(out Presentation, files *storage.Bridge) (sess *Session) {
	sess = &Session{
		Out:   out,
		Files: files,
	}
	sess.MainWindow = sess.newWindow(WINDOW_TEXT_BUFFER, 0)
	sess.current = sess.MainWindow.Stream

	return
}

func (sess *Session) nextID() (id uint32) {
	sess.lastID++
	id = sess.lastID

	return
}

// displayed reports whether writes to the stream route through the shared
// output buffer.
func (sess *Session) displayed(str *Stream) (visible bool) {
	visible = str == sess.MainWindow.Stream || str == sess.current

	return
}

// SetCurrentStream selects the stream that unaddressed output goes to.
// Selecting nil reverts to the main window's stream.
func (sess *Session) SetCurrentStream(str *Stream) {
	if str == nil {
		str = sess.MainWindow.Stream
	}
	sess.current = str
}

// GetCurrentStream reports the currently selected stream.
func (sess *Session) GetCurrentStream() (str *Stream) {
	str = sess.current

	return
}

// SetWindow selects a window's stream for unaddressed output.
func (sess *Session) SetWindow(win *Window) {
	if win == nil {
		win = sess.MainWindow
	}
	sess.current = win.Stream
}

// PutChar writes one Latin-1 character to the current stream.
func (sess *Session) PutChar(ch byte) {
	sess.current.putCode(uint32(ch))
}

// PutCharUni writes one code point to the current stream.
func (sess *Session) PutCharUni(code uint32) {
	sess.current.putCode(code)
}

// PutString writes every character of text to the current stream.
func (sess *Session) PutString(text string) {
	sess.PutStringStream(sess.current, text)
}

// PutJString is the raw-text convenience form of PutString; the host's
// native strings need no conversion before printing.
func (sess *Session) PutJString(text string) {
	sess.PutString(text)
}

// PutBuffer writes a buffer of Latin-1 characters to the current stream.
func (sess *Session) PutBuffer(buf []byte) {
	sess.PutBufferStream(sess.current, buf)
}

// PutBufferUni writes a buffer of code points to the current stream.
func (sess *Session) PutBufferUni(buf []uint32) {
	sess.PutBufferStreamUni(sess.current, buf)
}

// PutCharStream writes one Latin-1 character to a specific stream.
func (sess *Session) PutCharStream(str *Stream, ch byte) {
	if str == nil {
		return
	}
	str.putCode(uint32(ch))
}

// PutCharStreamUni writes one code point to a specific stream.
func (sess *Session) PutCharStreamUni(str *Stream, code uint32) {
	if str == nil {
		return
	}
	str.putCode(code)
}

// PutStringStream writes every character of text to a specific stream.
func (sess *Session) PutStringStream(str *Stream, text string) {
	if str == nil {
		return
	}
	for _, r := range text {
		str.putCode(uint32(r))
	}
}

// PutBufferStream writes a buffer of Latin-1 characters to a specific
// stream.
func (sess *Session) PutBufferStream(str *Stream, buf []byte) {
	if str == nil {
		return
	}
	for _, ch := range buf {
		str.putCode(uint32(ch))
	}
}

// PutBufferStreamUni writes a buffer of code points to a specific stream.
func (sess *Session) PutBufferStreamUni(str *Stream, buf []uint32) {
	if str == nil {
		return
	}
	for _, code := range buf {
		str.putCode(code)
	}
}

// GetCharStream reads one character from a stream as Latin-1, or EOF past
// the end of data.
func (sess *Session) GetCharStream(str *Stream) (code int32) {
	code = EOF
	if str == nil {
		return
	}
	code = str.getCode()
	if code > 0xff {
		code = int32('?')
	}

	return
}

// GetCharStreamUni reads one code point from a stream, or EOF past the end
// of data.
func (sess *Session) GetCharStreamUni(str *Stream) (code int32) {
	code = EOF
	if str == nil {
		return
	}
	code = str.getCode()

	return
}

// GetBufferStream fills buf with Latin-1 characters from a stream and
// reports how many were read. A short count means end of data.
func (sess *Session) GetBufferStream(str *Stream, buf []byte) (count uint32) {
	if str == nil {
		return
	}
	for n := range buf {
		code := str.getCode()
		if code == EOF {
			return
		}
		buf[n] = latin1(uint32(code))
		count++
	}

	return
}

// GetBufferStreamUni fills buf with code points from a stream and reports
// how many were read.
func (sess *Session) GetBufferStreamUni(str *Stream, buf []uint32) (count uint32) {
	if str == nil {
		return
	}
	for n := range buf {
		code := str.getCode()
		if code == EOF {
			return
		}
		buf[n] = uint32(code)
		count++
	}

	return
}

// GetLineStream reads characters into buf up to and including a newline,
// leaving room for a terminating NUL. The count excludes the NUL.
func (sess *Session) GetLineStream(str *Stream, buf []byte) (count uint32) {
	if str == nil || len(buf) == 0 {
		return
	}

	n := 0
	for n < len(buf)-1 {
		code := str.getCode()
		if code == EOF {
			break
		}
		buf[n] = latin1(uint32(code))
		n++
		if code == int32('\n') {
			break
		}
	}
	buf[n] = 0
	count = uint32(n)

	return
}

// StreamSetPosition moves a stream's cursor.
func (sess *Session) StreamSetPosition(str *Stream, offset int32, mode SeekMode) {
	if str == nil {
		return
	}
	str.SetPosition(offset, mode)
}

// StreamGetPosition reports a stream's cursor position.
func (sess *Session) StreamGetPosition(str *Stream) (pos uint32) {
	if str == nil {
		return
	}
	pos = str.Position()

	return
}

// Tick is the interpreter's liveness call; nothing to do here.
func (sess *Session) Tick() {
}

// Dead reports whether the session has been terminated by Exit or a fatal
// error.
func (sess *Session) Dead() (dead bool) {
	dead = sess.dead

	return
}
