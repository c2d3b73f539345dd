package glk

import (
	"iter"

	"github.com/betazetadev/zork1-web/internal"
)

// StreamKind identifies what backs a stream.
type StreamKind int

const (
	// STREAM_WINDOW streams belong to a window and have no storage of
	// their own: visible writes go through the session's output buffer.
	STREAM_WINDOW = StreamKind(0)
	// STREAM_INTERNAL streams are general growable data sequences.
	STREAM_INTERNAL = StreamKind(1)
	// STREAM_MEMORY streams are bound to an interpreter-owned buffer of
	// fixed capacity.
	STREAM_MEMORY = StreamKind(2)
	// STREAM_FILE streams are bound to a file reference and persist
	// through the storage bridge on close.
	STREAM_FILE = StreamKind(3)
)

// FileMode describes the open intent of a file or memory stream.
type FileMode uint32

const (
	FILEMODE_WRITE        = FileMode(0x01)
	FILEMODE_READ         = FileMode(0x02)
	FILEMODE_READ_WRITE   = FileMode(0x03)
	FILEMODE_WRITE_APPEND = FileMode(0x05)
)

// SeekMode selects the base of a position change.
type SeekMode uint32

const (
	SEEKMODE_START   = SeekMode(0)
	SEEKMODE_CURRENT = SeekMode(1)
	SEEKMODE_END     = SeekMode(2)
)

// EOF is the sentinel returned when reading past the end of a stream.
// Callers must check for it; reading past the end never fails.
const EOF = int32(-1)

// Stream is an addressable sequence of character codes with a cursor and
// transfer counters. Byte-flavor streams clamp codes to Latin-1 on write,
// storing '?' for anything above 0xFF; unicode-flavor streams pass code
// points through unchanged.
type Stream struct {
	Kind    StreamKind
	Rock    uint32
	ID      uint32
	Unicode bool
	Mode    FileMode

	// Data backs internal and file streams, and records writes addressed
	// directly to a window stream that is not routed to the display.
	Data []uint32
	Pos  int

	// Buf or UBuf is the bound fixed-capacity buffer of a memory stream.
	Buf  []byte
	UBuf []uint32

	Fileref *Fileref
	Win     *Window

	ReadCount  int
	WriteCount int

	sess *Session
}

func (sess *Session) newStream(kind StreamKind, rock uint32) (str *Stream) {
	str = &Stream{
		Kind: kind,
		Rock: rock,
		ID:   sess.nextID(),
		sess: sess,
	}
	if kind != STREAM_WINDOW {
		sess.streams = append(sess.streams, str)
	}

	return
}

// StreamOpenInternal opens a growable general data stream.
func (sess *Session) StreamOpenInternal(rock uint32) (str *Stream) {
	str = sess.newStream(STREAM_INTERNAL, rock)

	return
}

// StreamOpenMemory opens a byte stream over an interpreter-owned buffer.
// The buffer's length is the fixed capacity; writes beyond it are dropped.
func (sess *Session) StreamOpenMemory(buf []byte, mode FileMode, rock uint32) (str *Stream) {
	str = sess.newStream(STREAM_MEMORY, rock)
	str.Mode = mode
	str.Buf = buf

	return
}

// StreamOpenMemoryUni opens a unicode stream over an interpreter-owned
// code-point buffer.
func (sess *Session) StreamOpenMemoryUni(buf []uint32, mode FileMode, rock uint32) (str *Stream) {
	str = sess.newStream(STREAM_MEMORY, rock)
	str.Mode = mode
	str.Unicode = true
	str.UBuf = buf

	return
}

// StreamOpenFile opens a stream over the named logical file. Read intents
// load the current contents through the storage bridge; a missing or
// malformed file loads as empty, never as an error. FILEMODE_WRITE starts
// empty, FILEMODE_WRITE_APPEND positions the cursor after existing data.
func (sess *Session) StreamOpenFile(fref *Fileref, mode FileMode, rock uint32) (str *Stream, err error) {
	if fref == nil {
		err = ErrNoFileref
		return
	}

	str = sess.newStream(STREAM_FILE, rock)
	str.Mode = mode
	str.Fileref = fref

	if mode != FILEMODE_WRITE && sess.Files != nil {
		if data, ok := sess.Files.Load(fref.Name); ok {
			str.Data = data
		}
	}
	if mode == FILEMODE_WRITE_APPEND {
		str.Pos = len(str.Data)
	}

	return
}

// StreamOpenFileUni is StreamOpenFile for code-point data.
func (sess *Session) StreamOpenFileUni(fref *Fileref, mode FileMode, rock uint32) (str *Stream, err error) {
	str, err = sess.StreamOpenFile(fref, mode, rock)
	if str != nil {
		str.Unicode = true
	}

	return
}

// StreamClose closes a stream. A file stream opened with write intent
// serializes its full data sequence to the storage bridge under the file's
// logical name; a failed save is logged by the bridge and never halts the
// session. Final counters are reported through result if supplied.
func (sess *Session) StreamClose(str *Stream, result *StreamResult) {
	if str == nil {
		return
	}

	if str.Kind == STREAM_FILE && str.Mode != FILEMODE_READ &&
		str.Fileref != nil && sess.Files != nil {
		sess.Files.Save(str.Fileref.Name, str.Data)
	}

	if result != nil {
		result.ReadCount = uint32(str.ReadCount)
		result.WriteCount = uint32(str.WriteCount)
	}

	if sess.current == str {
		sess.current = sess.MainWindow.Stream
	}

	for n, known := range sess.streams {
		if known == str {
			sess.streams = append(sess.streams[:n], sess.streams[n+1:]...)
			break
		}
	}
}

// Streams returns an iterator over all live streams: every window's owned
// stream first, then the independently opened ones.
func (sess *Session) Streams() iter.Seq[*Stream] {
	windowStreams := func(yield func(str *Stream) bool) {
		for _, win := range sess.windows {
			if !yield(win.Stream) {
				return
			}
		}
	}
	openStreams := func(yield func(str *Stream) bool) {
		for _, str := range sess.streams {
			if !yield(str) {
				return
			}
		}
	}

	return internal.IterSeqConcat(windowStreams, openStreams)
}

// capacity is the cursor's upper bound.
func (str *Stream) capacity() (limit int) {
	switch str.Kind {
	case STREAM_MEMORY:
		if str.Unicode {
			limit = len(str.UBuf)
		} else {
			limit = len(str.Buf)
		}
	default:
		limit = len(str.Data)
	}

	return
}

// SetPosition moves the cursor relative to the start, the current
// position, or the end. The result is clamped to [0, capacity]; unknown
// seek modes are ignored.
func (str *Stream) SetPosition(offset int32, mode SeekMode) {
	var base int
	switch mode {
	case SEEKMODE_START:
		base = 0
	case SEEKMODE_CURRENT:
		base = str.Pos
	case SEEKMODE_END:
		base = str.capacity()
	default:
		return
	}

	pos := base + int(offset)
	if pos < 0 {
		pos = 0
	}
	if limit := str.capacity(); pos > limit {
		pos = limit
	}
	str.Pos = pos
}

// Position reports the current cursor position.
func (str *Stream) Position() (pos uint32) {
	pos = uint32(str.Pos)

	return
}

// latin1 clamps a code point for a byte-flavor target.
func latin1(code uint32) (ch byte) {
	if code > 0xff {
		ch = '?'
	} else {
		ch = byte(code)
	}

	return
}

// putCode writes one character code to the stream. Writes addressed to the
// main window's stream or to the currently selected stream append to the
// session's output buffer; writes to any other stream go to that stream's
// own storage. Memory streams truncate silently at capacity: the write
// counter still advances, the cursor never does.
func (str *Stream) putCode(code uint32) {
	str.WriteCount++

	switch str.Kind {
	case STREAM_WINDOW:
		if str.sess.displayed(str) {
			str.sess.outbuf.WriteRune(rune(code))
		} else {
			str.Data = append(str.Data, code)
		}
	case STREAM_MEMORY:
		if !str.Unicode {
			if str.Pos < len(str.Buf) {
				str.Buf[str.Pos] = latin1(code)
				str.Pos++
			}
		} else {
			if str.Pos < len(str.UBuf) {
				str.UBuf[str.Pos] = code
				str.Pos++
			}
		}
	case STREAM_INTERNAL, STREAM_FILE:
		if !str.Unicode && code > 0xff {
			code = uint32('?')
		}
		if str.Pos < len(str.Data) {
			str.Data[str.Pos] = code
		} else {
			str.Data = append(str.Data, code)
		}
		str.Pos++
	}
}

// getCode reads one character code, advancing the cursor and the read
// counter. Past the end of data it reports EOF. Window streams have
// nothing to read.
func (str *Stream) getCode() (code int32) {
	code = EOF

	switch str.Kind {
	case STREAM_MEMORY:
		if str.Unicode {
			if str.Pos < len(str.UBuf) {
				code = int32(str.UBuf[str.Pos])
			}
		} else {
			if str.Pos < len(str.Buf) {
				code = int32(str.Buf[str.Pos])
			}
		}
	case STREAM_INTERNAL, STREAM_FILE:
		if str.Pos < len(str.Data) {
			code = int32(str.Data[str.Pos])
		}
	}

	if code != EOF {
		str.Pos++
		str.ReadCount++
	}

	return
}
