package glk

// EventType identifies the kind of a completed event.
type EventType uint32

const (
	EVTYPE_NONE       = EventType(0)
	EVTYPE_CHAR_INPUT = EventType(2)
	EVTYPE_LINE_INPUT = EventType(3)
)

// Event is the fixed four-slot result record the interpreter reads after
// it regains control. Select populates it optimistically; the input length
// in Val1 is only trustworthy once the host's input callback has fired.
type Event struct {
	Type EventType // Slot 0: event kind.
	Win  *Window   // Slot 1: originating window.
	Val1 uint32    // Slot 2: received input length.
	Val2 uint32    // Slot 3: line terminator code.
}

// Field returns a slot by index, for interpreters that address the result
// record numerically. The window slot reads as the window's ID, 0 if unset.
// Out-of-range indexes read as 0.
func (ev *Event) Field(index int) (value uint32) {
	switch index {
	case 0:
		value = uint32(ev.Type)
	case 1:
		if ev.Win != nil {
			value = ev.Win.ID
		}
	case 2:
		value = ev.Val1
	case 3:
		value = ev.Val2
	}

	return
}

// StreamResult reports final transfer counters when a stream or window
// closes.
type StreamResult struct {
	ReadCount  uint32
	WriteCount uint32
}
