package glk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/betazetadev/zork1-web/storage"
)

// fakeHost is a presentation capability double. Lines are delivered
// through the one-shot handler exactly as the real host does it.
type fakeHost struct {
	printed []string
	cleared int
	errors  []string
	handler func(line string)
}

func (h *fakeHost) Print(text string) {
	h.printed = append(h.printed, text)
}

func (h *fakeHost) Clear() {
	h.cleared++
}

func (h *fakeHost) HandleError(text string) {
	h.errors = append(h.errors, text)
}

func (h *fakeHost) WaitForInput(handler func(line string)) {
	h.handler = handler
}

func (h *fakeHost) deliver(line string) {
	handler := h.handler
	h.handler = nil
	if handler != nil {
		handler(line)
	}
}

func newTestSession() (sess *Session, host *fakeHost) {
	host = &fakeHost{}
	sess = NewSession(host, storage.NewBridge(&storage.MemStore{}))

	return
}

func TestNewSession(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	assert.NotNil(sess.MainWindow)
	assert.Equal(WINDOW_TEXT_BUFFER, sess.MainWindow.Kind)
	assert.NotNil(sess.MainWindow.Stream)
	assert.Equal(sess.MainWindow.Stream, sess.GetCurrentStream())
	assert.False(sess.Dead())
}

// The end-to-end session walk: capability query, buffered output, a full
// line-input round trip, and a save/load round trip.
func TestSession_Walkthrough(t *testing.T) {
	assert := assert.New(t)

	sess, host := newTestSession()

	assert.Equal(GESTALT_SUPPORTED, sess.Gestalt(GESTALT_UNICODE, 0))

	sess.PutString("Hello")
	assert.Empty(host.printed)
	sess.FlushOutput()
	assert.Equal([]string{"Hello"}, host.printed)

	buf := make([]byte, 10)
	var ev Event
	sess.RequestLineEvent(nil, buf, 0)
	sess.Select(&ev)
	assert.Equal(EVTYPE_LINE_INPUT, ev.Type)
	assert.Equal(uint32(0), ev.Val1)

	host.deliver("north")
	assert.Equal(uint32(5), ev.Val1)
	assert.Equal([]byte("north"), buf[:5])

	fref := sess.FilerefCreateByName(FILEUSAGE_SAVED_GAME, "slot1", 0)
	str, err := sess.StreamOpenFileUni(fref, FILEMODE_WRITE, 0)
	assert.NoError(err)
	sess.PutBufferStreamUni(str, []uint32{1, 2, 3})
	sess.StreamClose(str, nil)

	str, err = sess.StreamOpenFileUni(fref, FILEMODE_READ, 0)
	assert.NoError(err)
	assert.Equal([]uint32{1, 2, 3}, str.Data)
	sess.StreamClose(str, nil)

	other := sess.FilerefCreateByName(FILEUSAGE_SAVED_GAME, "slot2", 0)
	assert.False(sess.FilerefDoesFileExist(other))
}

func TestSession_CurrentStream(t *testing.T) {
	assert := assert.New(t)

	sess, host := newTestSession()

	str := sess.StreamOpenInternal(7)
	sess.SetCurrentStream(str)
	assert.Equal(str, sess.GetCurrentStream())

	// Unaddressed output goes to the selected data stream, not the
	// display buffer.
	sess.PutString("log")
	sess.FlushOutput()
	assert.Empty(host.printed)
	assert.Equal([]uint32{'l', 'o', 'g'}, str.Data)

	sess.SetCurrentStream(nil)
	assert.Equal(sess.MainWindow.Stream, sess.GetCurrentStream())

	sess.SetWindow(nil)
	assert.Equal(sess.MainWindow.Stream, sess.GetCurrentStream())
}

func TestSession_PutForms(t *testing.T) {
	assert := assert.New(t)

	sess, host := newTestSession()

	sess.PutChar('H')
	sess.PutCharUni(uint32('i'))
	sess.PutJString("!")
	sess.PutBuffer([]byte(" 1"))
	sess.PutBufferUni([]uint32{' ', '2'})
	sess.FlushOutput()

	assert.Equal([]string{"Hi! 1 2"}, host.printed)
}

func TestSession_Filerefs(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	fref := sess.FilerefCreateByName(FILEUSAGE_DATA, "scratch", 3)
	assert.Equal(uint32(3), fref.Rock)
	assert.False(sess.FilerefDoesFileExist(fref))

	str, err := sess.StreamOpenFile(fref, FILEMODE_WRITE, 0)
	assert.NoError(err)
	sess.PutCharStream(str, 'x')
	sess.StreamClose(str, nil)
	assert.True(sess.FilerefDoesFileExist(fref))

	sess.FilerefDeleteFile(fref)
	assert.False(sess.FilerefDoesFileExist(fref))

	var found []*Fileref
	for known := range sess.Filerefs() {
		found = append(found, known)
	}
	assert.Equal([]*Fileref{fref}, found)

	sess.FilerefDestroy(fref)
	count := 0
	for range sess.Filerefs() {
		count++
	}
	assert.Equal(0, count)
}

func TestSession_NoStorageBridge(t *testing.T) {
	assert := assert.New(t)

	host := &fakeHost{}
	sess := NewSession(host, nil)

	fref := sess.FilerefCreateByName(FILEUSAGE_SAVED_GAME, "slot1", 0)
	assert.False(sess.FilerefDoesFileExist(fref))
	sess.FilerefDeleteFile(fref)

	// Saving without a store is dropped, never an error.
	str, err := sess.StreamOpenFile(fref, FILEMODE_WRITE, 0)
	assert.NoError(err)
	sess.PutCharStream(str, 'x')
	sess.StreamClose(str, nil)
	assert.False(sess.FilerefDoesFileExist(fref))
}
