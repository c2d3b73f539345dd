package glk

// The output buffer accumulates text destined for the displayed stream and
// is emptied only at defined checkpoints: an explicit per-step flush, the
// start of a line-input request, and the fatal-error path. Nothing else
// flushes it.

// FlushOutput sends all accumulated output to the presentation capability
// and empties the buffer. Flushing an empty buffer does nothing.
func (sess *Session) FlushOutput() {
	if sess.outbuf.Len() == 0 {
		return
	}

	text := sess.outbuf.String()
	sess.outbuf.Reset()
	if sess.Out != nil {
		sess.Out.Print(text)
	}
}

// Buffered reports the text currently held in the output buffer.
func (sess *Session) Buffered() (text string) {
	text = sess.outbuf.String()

	return
}

// Fatal reports an unrecoverable interpreter error. Pending output is
// flushed first so no user-visible text is lost, then the error is
// displayed and the session is left terminated. Only the first fatal
// report is acted on.
func (sess *Session) Fatal(text string) {
	if sess.dead {
		return
	}

	sess.FlushOutput()
	if sess.Out != nil {
		sess.Out.HandleError(text)
	}
	sess.dead = true
}

// Exit is the interpreter's orderly end-of-session notification. Pending
// output is flushed; the session is left terminated.
func (sess *Session) Exit() {
	sess.FlushOutput()
	sess.dead = true
}
