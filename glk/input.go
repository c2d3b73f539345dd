package glk

// The input bridge converts a call-and-return input request into a
// registered host callback. The request records the interpreter-owned
// buffer; when the presentation layer delivers a line, the bridge copies
// the text into that buffer, patches the captured event-result, and emits
// a completion message. The bridge itself never blocks and never calls
// back into the interpreter.

// lineRequest is the single pending-input slot. There is no queue: a new
// request overwrites this state.
type lineRequest struct {
	win     *Window
	buf     []byte
	ubuf    []uint32
	max     int
	pending bool
}

// RequestLineEvent asks for a line of input into an interpreter-owned
// byte buffer. Pending output is flushed first, then a one-shot handler
// is registered with the presentation capability; the call returns
// immediately. Last request wins: issuing a new line request while one is
// outstanding silently abandons the earlier one, and only the newer
// buffer is ever populated. initLength characters of pre-existing buffer
// content are accepted for contract compatibility and not redisplayed.
func (sess *Session) RequestLineEvent(win *Window, buf []byte, initLength uint32) {
	if win == nil {
		win = sess.MainWindow
	}

	sess.FlushOutput()

	if old := sess.request.win; old != nil && old != win {
		old.Pending = INPUT_NONE
		old.LineBuf = nil
		old.LineBufUni = nil
	}

	sess.request = lineRequest{
		win:     win,
		buf:     buf,
		max:     len(buf),
		pending: true,
	}
	win.Pending = INPUT_LINE
	win.LineBuf = buf
	win.LineBufUni = nil

	if sess.Out != nil {
		sess.Out.WaitForInput(sess.acceptLine)
	}
}

// RequestLineEventUni is RequestLineEvent for a code-point buffer.
func (sess *Session) RequestLineEventUni(win *Window, buf []uint32, initLength uint32) {
	if win == nil {
		win = sess.MainWindow
	}

	sess.FlushOutput()

	if old := sess.request.win; old != nil && old != win {
		old.Pending = INPUT_NONE
		old.LineBuf = nil
		old.LineBufUni = nil
	}

	sess.request = lineRequest{
		win:     win,
		ubuf:    buf,
		max:     len(buf),
		pending: true,
	}
	win.Pending = INPUT_LINE
	win.LineBuf = nil
	win.LineBufUni = buf

	if sess.Out != nil {
		sess.Out.WaitForInput(sess.acceptLine)
	}
}

// acceptLine is the host input callback. With no request pending it is a
// no-op, so a stale callback from an abandoned request cannot touch a
// buffer the interpreter no longer offers.
func (sess *Session) acceptLine(line string) {
	req := &sess.request
	if !req.pending {
		return
	}

	runes := []rune(line)
	if len(runes) > req.max {
		runes = runes[:req.max]
	}
	for n, r := range runes {
		if req.ubuf != nil {
			req.ubuf[n] = uint32(r)
		} else if req.buf != nil {
			req.buf[n] = latin1(uint32(r))
		}
	}
	length := uint32(len(runes))

	// The length becomes visible only after the buffer is fully written:
	// the interpreter reads it as proof the buffer is populated.
	if sess.selected != nil {
		sess.selected.Val1 = length
		sess.selected = nil
	}

	req.pending = false
	if req.win != nil {
		req.win.Pending = INPUT_NONE
		req.win.LineBuf = nil
		req.win.LineBufUni = nil
	}

	if sess.LineInput != nil {
		sess.LineInput(length)
	}
}

// CancelLineEvent withdraws a pending line request. If a result structure
// is given it reports a line event of length zero.
func (sess *Session) CancelLineEvent(win *Window, ev *Event) {
	if win == nil {
		win = sess.MainWindow
	}

	if win.Pending == INPUT_LINE {
		win.Pending = INPUT_NONE
		win.LineBuf = nil
		win.LineBufUni = nil
		if sess.request.win == win {
			sess.request.pending = false
		}
	}

	if ev != nil {
		*ev = Event{Type: EVTYPE_LINE_INPUT, Win: win}
	}
}

// RequestCharEvent records that the window waits for a single character.
// Char requests are advisory in this adapter: the pending kind is tracked
// so cancellation and window state stay honest, but no completion is ever
// driven; the presentation layer owns single-key handling.
func (sess *Session) RequestCharEvent(win *Window) {
	if win == nil {
		win = sess.MainWindow
	}
	win.Pending = INPUT_CHAR
}

// RequestCharEventUni is RequestCharEvent; code-point width changes
// nothing for an advisory request.
func (sess *Session) RequestCharEventUni(win *Window) {
	sess.RequestCharEvent(win)
}

// CancelCharEvent withdraws a pending char request.
func (sess *Session) CancelCharEvent(win *Window) {
	if win == nil {
		win = sess.MainWindow
	}
	if win.Pending == INPUT_CHAR {
		win.Pending = INPUT_NONE
	}
}

// Select captures the event-result structure and immediately publishes a
// synthetic line-input event addressed to the main window with length 0
// and terminator 0. Readiness is reported optimistically; the length is
// patched in asynchronously once the host's input callback fires, and the
// caller must not trust it before then.
func (sess *Session) Select(ev *Event) {
	sess.selected = ev
	if ev == nil {
		return
	}

	*ev = Event{
		Type: EVTYPE_LINE_INPUT,
		Win:  sess.MainWindow,
	}
}

// SelectPoll reports that no event is ready. No non-blocking event
// sources exist in this adapter.
func (sess *Session) SelectPoll(ev *Event) {
	if ev == nil {
		return
	}

	*ev = Event{Type: EVTYPE_NONE}
}
