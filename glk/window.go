package glk

import (
	"iter"
)

// WindowKind identifies the flavor of an output surface. Only text-buffer
// semantics are load-bearing here; text-grid windows exist so interpreters
// that open a status grid keep working, but their display is not managed.
type WindowKind uint32

const (
	WINDOW_TEXT_BUFFER = WindowKind(3)
	WINDOW_TEXT_GRID   = WindowKind(4)
)

// InputKind records which kind of input, if any, a window is waiting for.
type InputKind int

const (
	INPUT_NONE = InputKind(0)
	INPUT_CHAR = InputKind(1)
	INPUT_LINE = InputKind(2)
)

const (
	// WINDOW_WIDTH and WINDOW_HEIGHT are the fixed dimensions reported
	// for every window; the presentation layer reflows as it sees fit.
	WINDOW_WIDTH  = uint32(80)
	WINDOW_HEIGHT = uint32(24)
)

// Window is a named output surface. It owns exactly one Stream for its
// lifetime and holds at most one pending input request at a time.
type Window struct {
	Kind   WindowKind
	Rock   uint32
	ID     uint32
	Stream *Stream

	// Pending is the kind of input this window is waiting for. While a
	// line request is outstanding, LineBuf or LineBufUni holds the
	// interpreter-owned buffer the received text will be copied into.
	Pending    InputKind
	LineBuf    []byte
	LineBufUni []uint32

	parent *Window
	sess   *Session
}

func (sess *Session) newWindow(kind WindowKind, rock uint32) (win *Window) {
	win = &Window{
		Kind: kind,
		Rock: rock,
		ID:   sess.nextID(),
		sess: sess,
	}
	win.Stream = sess.newStream(STREAM_WINDOW, 0)
	win.Stream.Win = win
	sess.windows = append(sess.windows, win)

	return
}

// WindowOpen opens an additional window. The split method and size are
// recorded nowhere: the single-surface layout ignores arrangement, exactly
// as WindowSetArrangement does.
func (sess *Session) WindowOpen(parent *Window, method uint32, size uint32, kind WindowKind, rock uint32) (win *Window) {
	win = sess.newWindow(kind, rock)
	win.parent = parent

	return
}

// WindowClose closes a window, forwarding the final transfer counters from
// its owned stream. The main window is never destroyed while the session
// is alive; closing it is ignored.
func (sess *Session) WindowClose(win *Window, result *StreamResult) {
	if win == nil || win == sess.MainWindow {
		return
	}

	if result != nil {
		result.ReadCount = uint32(win.Stream.ReadCount)
		result.WriteCount = uint32(win.Stream.WriteCount)
	}

	if sess.current == win.Stream {
		sess.current = sess.MainWindow.Stream
	}

	for n, known := range sess.windows {
		if known == win {
			sess.windows = append(sess.windows[:n], sess.windows[n+1:]...)
			break
		}
	}
}

// WindowClear clears a text-buffer window's display region. Clearing a
// text-grid window is a no-op. Buffered output is not flushed: it appears
// after the clear, at the next checkpoint.
func (sess *Session) WindowClear(win *Window) {
	if win == nil || win.Kind != WINDOW_TEXT_BUFFER {
		return
	}
	if sess.Out != nil {
		sess.Out.Clear()
	}
}

// WindowGetSize reports the fixed window dimensions.
func (sess *Session) WindowGetSize(win *Window) (width uint32, height uint32) {
	width = WINDOW_WIDTH
	height = WINDOW_HEIGHT

	return
}

// WindowGetParent returns the window this one was split from, nil for the
// main window.
func (sess *Session) WindowGetParent(win *Window) (parent *Window) {
	if win != nil {
		parent = win.parent
	}

	return
}

// WindowSetArrangement is accepted and ignored; the layout is fixed.
func (sess *Session) WindowSetArrangement(win *Window, method uint32, size uint32, key *Window) {
}

// Windows returns an iterator over all open windows.
func (sess *Session) Windows() iter.Seq[*Window] {
	return func(yield func(win *Window) bool) {
		for _, win := range sess.windows {
			if !yield(win) {
				return
			}
		}
	}
}
