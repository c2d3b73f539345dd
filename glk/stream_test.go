package glk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_MemoryCapacity(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	buf := make([]byte, 3)
	str := sess.StreamOpenMemory(buf, FILEMODE_WRITE, 0)

	sess.PutStringStream(str, "hello")

	// Bytes beyond capacity are dropped; the cursor never exceeds
	// capacity; the write counter still counts every write.
	assert.Equal([]byte("hel"), buf)
	assert.Equal(3, str.Pos)
	assert.Equal(5, str.WriteCount)
}

func TestStream_MemoryUniCapacity(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	buf := make([]uint32, 2)
	str := sess.StreamOpenMemoryUni(buf, FILEMODE_WRITE, 0)

	sess.PutBufferStreamUni(str, []uint32{0x2603, 'x', 'y'})

	assert.Equal([]uint32{0x2603, 'x'}, buf)
	assert.Equal(2, str.Pos)
	assert.Equal(3, str.WriteCount)
}

func TestStream_ByteClamp(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	buf := make([]byte, 4)
	str := sess.StreamOpenMemory(buf, FILEMODE_WRITE, 0)

	sess.PutCharStreamUni(str, uint32('a'))
	sess.PutCharStreamUni(str, 0x2603)
	sess.PutCharStreamUni(str, 0xff)

	assert.Equal([]byte{'a', '?', 0xff, 0}, buf)
}

func TestStream_ReadEOFSentinel(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	buf := []byte{'a', 'b'}
	str := sess.StreamOpenMemory(buf, FILEMODE_READ, 0)

	assert.Equal(int32('a'), sess.GetCharStream(str))
	assert.Equal(int32('b'), sess.GetCharStream(str))
	assert.Equal(EOF, sess.GetCharStream(str))
	assert.Equal(EOF, sess.GetCharStream(str))

	// Reads past the end advance nothing.
	assert.Equal(2, str.ReadCount)
	assert.Equal(2, str.Pos)
}

func TestStream_GetBuffer(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	str := sess.StreamOpenInternal(0)
	sess.PutStringStream(str, "north\n")
	str.SetPosition(0, SEEKMODE_START)

	out := make([]byte, 4)
	assert.Equal(uint32(4), sess.GetBufferStream(str, out))
	assert.Equal([]byte("nort"), out)

	// Short count at end of data.
	out = make([]byte, 8)
	assert.Equal(uint32(2), sess.GetBufferStream(str, out))
	assert.Equal([]byte("h\n"), out[:2])
}

func TestStream_GetLine(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	str := sess.StreamOpenInternal(0)
	sess.PutStringStream(str, "go north\nthen east")
	str.SetPosition(0, SEEKMODE_START)

	buf := make([]byte, 32)
	count := sess.GetLineStream(str, buf)
	assert.Equal(uint32(9), count)
	assert.Equal("go north\n", string(buf[:count]))
	assert.Equal(byte(0), buf[count])

	count = sess.GetLineStream(str, buf)
	assert.Equal("then east", string(buf[:count]))
}

func TestStream_SeekModes(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	str := sess.StreamOpenInternal(0)
	sess.PutStringStream(str, "abcdef")

	str.SetPosition(2, SEEKMODE_START)
	assert.Equal(uint32(2), str.Position())

	str.SetPosition(2, SEEKMODE_CURRENT)
	assert.Equal(uint32(4), str.Position())

	str.SetPosition(-1, SEEKMODE_END)
	assert.Equal(uint32(5), str.Position())

	// Clamped at both bounds.
	str.SetPosition(-100, SEEKMODE_CURRENT)
	assert.Equal(uint32(0), str.Position())
	str.SetPosition(100, SEEKMODE_START)
	assert.Equal(uint32(6), str.Position())

	// Unknown seek modes are ignored.
	str.SetPosition(3, SEEKMODE_START)
	str.SetPosition(1, SeekMode(9))
	assert.Equal(uint32(3), str.Position())
}

func TestStream_OverwriteAtCursor(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	str := sess.StreamOpenInternal(0)
	sess.PutStringStream(str, "abcdef")
	str.SetPosition(2, SEEKMODE_START)
	sess.PutStringStream(str, "XYZZY!")

	assert.Equal([]uint32{'a', 'b', 'X', 'Y', 'Z', 'Z', 'Y', '!'}, str.Data)
	assert.Equal(8, str.Pos)
}

func TestStream_FileRoundTrip(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	fref := sess.FilerefCreateByName(FILEUSAGE_DATA, "journal", 0)
	str, err := sess.StreamOpenFile(fref, FILEMODE_WRITE, 0)
	assert.NoError(err)
	sess.PutStringStream(str, "day one")

	var result StreamResult
	sess.StreamClose(str, &result)
	assert.Equal(uint32(0), result.ReadCount)
	assert.Equal(uint32(7), result.WriteCount)

	str, err = sess.StreamOpenFile(fref, FILEMODE_READ, 0)
	assert.NoError(err)
	buf := make([]byte, 16)
	assert.Equal(uint32(7), sess.GetBufferStream(str, buf))
	assert.Equal("day one", string(buf[:7]))
	sess.StreamClose(str, &result)
	assert.Equal(uint32(7), result.ReadCount)
}

func TestStream_FileAppend(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	fref := sess.FilerefCreateByName(FILEUSAGE_DATA, "journal", 0)
	str, _ := sess.StreamOpenFile(fref, FILEMODE_WRITE, 0)
	sess.PutStringStream(str, "one")
	sess.StreamClose(str, nil)

	str, _ = sess.StreamOpenFile(fref, FILEMODE_WRITE_APPEND, 0)
	assert.Equal(3, str.Pos)
	sess.PutStringStream(str, " two")
	sess.StreamClose(str, nil)

	str, _ = sess.StreamOpenFile(fref, FILEMODE_READ, 0)
	assert.Equal([]uint32{'o', 'n', 'e', ' ', 't', 'w', 'o'}, str.Data)
	sess.StreamClose(str, nil)
}

func TestStream_FileWriteTruncates(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	fref := sess.FilerefCreateByName(FILEUSAGE_DATA, "journal", 0)
	str, _ := sess.StreamOpenFile(fref, FILEMODE_WRITE, 0)
	sess.PutStringStream(str, "a long first version")
	sess.StreamClose(str, nil)

	str, _ = sess.StreamOpenFile(fref, FILEMODE_WRITE, 0)
	sess.PutStringStream(str, "v2")
	sess.StreamClose(str, nil)

	str, _ = sess.StreamOpenFile(fref, FILEMODE_READ, 0)
	assert.Equal([]uint32{'v', '2'}, str.Data)
	sess.StreamClose(str, nil)
}

func TestStream_ReadOnlyCloseDoesNotSave(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	fref := sess.FilerefCreateByName(FILEUSAGE_DATA, "journal", 0)
	str, _ := sess.StreamOpenFile(fref, FILEMODE_READ, 0)
	sess.StreamClose(str, nil)

	assert.False(sess.FilerefDoesFileExist(fref))
}

func TestStream_OpenFileNilFileref(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	str, err := sess.StreamOpenFile(nil, FILEMODE_READ, 0)
	assert.Nil(str)
	assert.Equal(ErrNoFileref, err)
}

func TestStream_MalformedStoredDataLoadsEmpty(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()
	sess.Files.Store.Set("corrupt", "not a blob")

	fref := sess.FilerefCreateByName(FILEUSAGE_DATA, "corrupt", 0)
	str, err := sess.StreamOpenFile(fref, FILEMODE_READ, 0)
	assert.NoError(err)
	assert.Empty(str.Data)
	assert.Equal(EOF, sess.GetCharStream(str))
}

func TestStream_CloseSelectedRevertsToMain(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	str := sess.StreamOpenInternal(0)
	sess.SetCurrentStream(str)
	sess.StreamClose(str, nil)

	assert.Equal(sess.MainWindow.Stream, sess.GetCurrentStream())
}

func TestStreams_Iterate(t *testing.T) {
	assert := assert.New(t)

	sess, _ := newTestSession()

	one := sess.StreamOpenInternal(1)
	two := sess.StreamOpenMemory(make([]byte, 4), FILEMODE_WRITE, 2)

	var found []*Stream
	for str := range sess.Streams() {
		found = append(found, str)
	}

	// Window streams come first, then the independently opened ones.
	assert.Equal([]*Stream{sess.MainWindow.Stream, one, two}, found)

	sess.StreamClose(one, nil)
	found = nil
	for str := range sess.Streams() {
		found = append(found, str)
	}
	assert.Equal([]*Stream{sess.MainWindow.Stream, two}, found)
}
